package application

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/storage"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// AttachmentService stores attachment payloads in object storage and their
// metadata in the database. Attach and remove are draft-only operations.
type AttachmentService struct {
	Repos *repository.Repos
	scope *ScopeService
	blobs storage.BlobStore
}

func NewAttachmentService(repos *repository.Repos, scope *ScopeService, blobs storage.BlobStore) *AttachmentService {
	return &AttachmentService{Repos: repos, scope: scope, blobs: blobs}
}

type UploadAttachmentInput struct {
	SubmissionID uint
	QuestionID   string
	FileName     string
	ContentType  string
	Size         int64
	Description  string
	Data         io.Reader
}

func (s *AttachmentService) Upload(ctx context.Context, actor Actor, input UploadAttachmentInput) (*submission.FileAttachment, error) {
	if input.QuestionID == "" {
		return nil, apperr.Validation("question id is required")
	}
	if input.FileName == "" {
		return nil, apperr.Validation("file name is required")
	}
	if input.Size <= 0 || input.Size > submission.MaxAttachmentSize {
		return nil, apperr.Validation(fmt.Sprintf("file size must be between 1 byte and %d bytes", submission.MaxAttachmentSize))
	}

	sub, err := s.Repos.Submission.FindByID(input.SubmissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	if sub.UserID != actor.ID {
		return nil, apperr.Authorization("only the submitter may attach files")
	}
	if sub.Status != submission.StatusDraft {
		return nil, apperr.Conflict("attachments can only be added while the submission is in draft")
	}

	key := uuid.NewString()
	if err := s.blobs.Put(ctx, key, input.Data, input.Size, input.ContentType); err != nil {
		return nil, err
	}

	a := &submission.FileAttachment{
		SubmissionID: sub.ID,
		QuestionID:   input.QuestionID,
		FileName:     input.FileName,
		ContentType:  input.ContentType,
		Size:         input.Size,
		ObjectKey:    key,
		Description:  input.Description,
	}
	if err := s.Repos.Attachment.Create(a); err != nil {
		// Orphaned object cleanup is best-effort.
		if rmErr := s.blobs.Remove(ctx, key); rmErr != nil {
			log.Printf("failed to remove orphaned object %s: %v", key, rmErr)
		}
		return nil, err
	}
	return a, nil
}

func (s *AttachmentService) Download(ctx context.Context, actor Actor, attachmentID uint) (*submission.FileAttachment, io.ReadCloser, error) {
	a, sub, err := s.load(attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if sub.UserID != actor.ID {
		scope, err := s.scope.ScopeFor(actor)
		if err != nil {
			return nil, nil, err
		}
		if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
			return nil, nil, apperr.Authorization("attachment is outside your scope")
		}
	}

	rc, err := s.blobs.Get(ctx, a.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return a, rc, nil
}

func (s *AttachmentService) Remove(ctx context.Context, actor Actor, attachmentID uint) error {
	a, sub, err := s.load(attachmentID)
	if err != nil {
		return err
	}
	if sub.UserID != actor.ID {
		return apperr.Authorization("only the submitter may remove attachments")
	}
	if sub.Status != submission.StatusDraft {
		return apperr.Conflict("attachments can only be removed while the submission is in draft")
	}

	if err := s.Repos.Attachment.Delete(a.ID); err != nil {
		return err
	}
	if err := s.blobs.Remove(ctx, a.ObjectKey); err != nil {
		log.Printf("failed to remove object %s: %v", a.ObjectKey, err)
	}
	return nil
}

func (s *AttachmentService) ListBySubmission(actor Actor, submissionID uint) ([]submission.FileAttachment, error) {
	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	if sub.UserID != actor.ID {
		scope, err := s.scope.ScopeFor(actor)
		if err != nil {
			return nil, err
		}
		if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
			return nil, apperr.Authorization("submission is outside your scope")
		}
	}
	return s.Repos.Attachment.ListBySubmission(submissionID)
}

func (s *AttachmentService) load(attachmentID uint) (*submission.FileAttachment, *submission.ReportSubmission, error) {
	a, err := s.Repos.Attachment.FindByID(attachmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, apperr.NotFound("attachment not found")
		}
		return nil, nil, err
	}
	sub, err := s.Repos.Submission.FindByID(a.SubmissionID)
	if err != nil {
		return nil, nil, err
	}
	return &a, &sub, nil
}
