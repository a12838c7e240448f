package application

import (
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/storage"
)

type Services struct {
	Org        *OrgService
	User       *UserService
	Template   *TemplateService
	Window     *WindowService
	Submission *SubmissionService
	Bulk       *BulkService
	Flag       *FlagService
	Comment    *CommentService
	Attachment *AttachmentService
	Scope      *ScopeService
	Audit      *AuditService
}

func New(repos *repository.Repos, dispatcher notify.Dispatcher, blobs storage.BlobStore) *Services {
	scope := NewScopeService(repos)
	return &Services{
		Org:        NewOrgService(repos),
		User:       NewUserService(repos),
		Template:   NewTemplateService(repos),
		Window:     NewWindowService(repos, dispatcher),
		Submission: NewSubmissionService(repos, scope, dispatcher),
		Bulk:       NewBulkService(repos, scope, dispatcher),
		Flag:       NewFlagService(repos, scope, dispatcher),
		Comment:    NewCommentService(repos, scope, dispatcher),
		Attachment: NewAttachmentService(repos, scope, blobs),
		Scope:      scope,
		Audit:      NewAuditService(repos),
	}
}
