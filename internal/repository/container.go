package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Org        OrgRepo
	User       UserRepo
	Template   TemplateRepo
	Window     WindowRepo
	Submission SubmissionRepo
	Flag       FlagRepo
	Comment    CommentRepo
	Attachment AttachmentRepo
	Audit      AuditRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Org:        NewOrgRepo(db),
		User:       NewUserRepo(db),
		Template:   NewTemplateRepo(db),
		Window:     NewWindowRepo(db),
		Submission: NewSubmissionRepo(db),
		Flag:       NewFlagRepo(db),
		Comment:    NewCommentRepo(db),
		Attachment: NewAttachmentRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Org:        r.Org.WithTx(tx),
		User:       r.User.WithTx(tx),
		Template:   r.Template.WithTx(tx),
		Window:     r.Window.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Flag:       r.Flag.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside one transaction; every state change of a command
// commits together or not at all.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// Composed repos without a backing db run fn directly.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
