package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	Create(a *submission.FileAttachment) error
	FindByID(id uint) (submission.FileAttachment, error)
	Delete(id uint) error
	ListBySubmission(submissionID uint) ([]submission.FileAttachment, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) Create(a *submission.FileAttachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) FindByID(id uint) (submission.FileAttachment, error) {
	var a submission.FileAttachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) Delete(id uint) error {
	return r.db.Delete(&submission.FileAttachment{}, id).Error
}

func (r *DBAttachmentRepo) ListBySubmission(submissionID uint) ([]submission.FileAttachment, error) {
	var as []submission.FileAttachment
	err := r.db.Where("submission_id = ?", submissionID).Order("created_at").Find(&as).Error
	return as, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
