package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
)

type Handlers struct {
	User       *UserHandler
	Org        *OrgHandler
	Template   *TemplateHandler
	Window     *WindowHandler
	Submission *SubmissionHandler
	Flag       *FlagHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Audit      *AuditHandler
	Events     *EventsHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, hub *notify.Hub, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:       NewUserHandler(svc.User),
		Org:        NewOrgHandler(svc.Org),
		Template:   NewTemplateHandler(svc.Template, repos),
		Window:     NewWindowHandler(svc.Window, repos),
		Submission: NewSubmissionHandler(svc.Submission, svc.Bulk, repos),
		Flag:       NewFlagHandler(svc.Flag),
		Comment:    NewCommentHandler(svc.Comment),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Audit:      NewAuditHandler(svc.Audit),
		Events:     NewEventsHandler(hub),
		Router:     router,
	}
	return h
}
