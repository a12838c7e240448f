package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"gorm.io/gorm"
)

type FlagRepo interface {
	Create(f *submission.SubmissionFlag) error
	FindByID(id uint) (submission.SubmissionFlag, error)
	// FindActiveBySubmission returns the active flag, or nil when none.
	FindActiveBySubmission(submissionID uint) (*submission.SubmissionFlag, error)
	Save(f *submission.SubmissionFlag) error
	ListBySubmission(submissionID uint) ([]submission.SubmissionFlag, error)
	WithTx(tx *gorm.DB) FlagRepo
}

type DBFlagRepo struct {
	db *gorm.DB
}

func NewFlagRepo(db *gorm.DB) *DBFlagRepo {
	return &DBFlagRepo{db: db}
}

func (r *DBFlagRepo) Create(f *submission.SubmissionFlag) error {
	return r.db.Create(f).Error
}

func (r *DBFlagRepo) FindByID(id uint) (submission.SubmissionFlag, error) {
	var f submission.SubmissionFlag
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBFlagRepo) FindActiveBySubmission(submissionID uint) (*submission.SubmissionFlag, error) {
	var f submission.SubmissionFlag
	err := r.db.Where("submission_id = ? AND active = ?", submissionID, true).First(&f).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFlagRepo) Save(f *submission.SubmissionFlag) error {
	return r.db.Save(f).Error
}

func (r *DBFlagRepo) ListBySubmission(submissionID uint) ([]submission.SubmissionFlag, error) {
	var flags []submission.SubmissionFlag
	err := r.db.Where("submission_id = ?", submissionID).Order("created_at desc").Find(&flags).Error
	return flags, err
}

func (r *DBFlagRepo) WithTx(tx *gorm.DB) FlagRepo {
	if tx == nil {
		return r
	}
	return &DBFlagRepo{db: tx}
}
