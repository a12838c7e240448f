package application

import (
	"fmt"
	"strings"

	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// CommentService manages the one-level discussion thread on a submission.
// Replies to replies are a deliberate design limit, not an oversight.
type CommentService struct {
	Repos      *repository.Repos
	scope      *ScopeService
	dispatcher notify.Dispatcher
}

func NewCommentService(repos *repository.Repos, scope *ScopeService, dispatcher notify.Dispatcher) *CommentService {
	return &CommentService{Repos: repos, scope: scope, dispatcher: dispatcher}
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperr.Validation("content is required")
	}
	if len(content) > submission.MaxCommentLen {
		return "", apperr.Validation(fmt.Sprintf("content must be at most %d characters", submission.MaxCommentLen))
	}
	return content, nil
}

func (s *CommentService) Add(actor Actor, submissionID uint, input submission.AddCommentDTO) (*submission.SubmissionComment, error) {
	content, err := validateContent(input.Content)
	if err != nil {
		return nil, err
	}

	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	if err := s.checkReadable(actor, &sub); err != nil {
		return nil, err
	}

	var parent *submission.SubmissionComment
	if input.ParentID != nil {
		p, err := s.Repos.Comment.FindByID(*input.ParentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperr.NotFound("parent comment not found")
			}
			return nil, err
		}
		if p.SubmissionID != sub.ID {
			return nil, apperr.Validation("parent comment belongs to a different submission")
		}
		if p.IsDeleted {
			return nil, apperr.Validation("cannot reply to a deleted comment")
		}
		if p.ParentID != nil {
			return nil, apperr.Validation("replies cannot be nested further")
		}
		parent = &p
	}

	c := &submission.SubmissionComment{
		SubmissionID: sub.ID,
		ParentID:     input.ParentID,
		UserID:       actor.ID,
		AuthorName:   actor.Name,
		Content:      content,
	}
	if err := s.Repos.Comment.Create(c); err != nil {
		return nil, err
	}

	var recipients []notify.Recipient
	if sub.UserID != actor.ID {
		recipients = append(recipients, notify.Recipient{
			UserID: sub.UserID, Name: sub.SubmitterName, Email: sub.SubmitterEmail,
		})
	}
	if parent != nil && parent.UserID != actor.ID && parent.UserID != sub.UserID {
		recipients = append(recipients, notify.Recipient{
			UserID: parent.UserID, Name: parent.AuthorName,
		})
	}
	if len(recipients) > 0 {
		e := notify.NewEvent(notify.EventCommentAdded,
			fmt.Sprintf("New comment on report #%d", sub.ID),
			fmt.Sprintf("%s commented: %s", actor.Name, content))
		e.SubmissionID = &sub.ID
		e.Recipients = recipients
		notify.Publish(s.dispatcher, e)
	}
	return c, nil
}

// Update edits a comment in place. Only the original commenter may edit, and
// deleted comments stay frozen.
func (s *CommentService) Update(actor Actor, commentID uint, newContent string) (*submission.SubmissionComment, error) {
	c, err := s.Repos.Comment.FindByID(commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}
	if c.UserID != actor.ID {
		return nil, apperr.Authorization("only the author may edit a comment")
	}
	if c.IsDeleted {
		return nil, apperr.Conflict("comment is deleted")
	}

	content, err := validateContent(newContent)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	c.Content = content
	c.IsEdited = true
	c.EditedAt = &now
	return &c, s.Repos.Comment.Save(&c)
}

// Delete soft-deletes: readers see a placeholder, replies stay attached.
func (s *CommentService) Delete(actor Actor, commentID uint) error {
	c, err := s.Repos.Comment.FindByID(commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("comment not found")
		}
		return err
	}
	if c.UserID != actor.ID {
		return apperr.Authorization("only the author may delete a comment")
	}
	if c.IsDeleted {
		return apperr.Conflict("comment is already deleted")
	}

	now := nowFunc()
	c.IsDeleted = true
	c.DeletedAt = &now
	return s.Repos.Comment.Save(&c)
}

// List returns top-level comments newest-first with their replies
// oldest-first. Deleted comments are excluded unless asked for, in which
// case their content is masked.
func (s *CommentService) List(actor Actor, submissionID uint, includeDeleted bool) ([]submission.CommentView, error) {
	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	if err := s.checkReadable(actor, &sub); err != nil {
		return nil, err
	}

	comments, err := s.Repos.Comment.ListTopLevel(submissionID, includeDeleted)
	if err != nil {
		return nil, err
	}
	views := make([]submission.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, comments[i].View())
	}
	return views, nil
}

func (s *CommentService) checkReadable(actor Actor, sub *submission.ReportSubmission) error {
	if sub.UserID == actor.ID {
		return nil
	}
	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return err
	}
	if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
		return apperr.Authorization("submission is outside your scope")
	}
	return nil
}
