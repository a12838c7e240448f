package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(s *submission.ReportSubmission) error
	Save(s *submission.ReportSubmission) error
	FindByID(id uint) (submission.ReportSubmission, error)
	// FindDraft returns the user's open draft for the template, if any.
	FindDraft(userID, templateID uint) (*submission.ReportSubmission, error)
	// FindLatest returns the user's most recent submission for the template
	// regardless of status, if any. Backs submit idempotency.
	FindLatest(userID, templateID uint) (*submission.ReportSubmission, error)
	List(filter submission.ListFilter, scope org.Scope) ([]submission.ReportSubmission, int64, error)
	CreateApproval(a *submission.SubmissionApproval) error
	ListApprovals(submissionID uint) ([]submission.SubmissionApproval, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) Create(s *submission.ReportSubmission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) Save(s *submission.ReportSubmission) error {
	return r.db.Save(s).Error
}

func (r *DBSubmissionRepo) FindByID(id uint) (submission.ReportSubmission, error) {
	var s submission.ReportSubmission
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBSubmissionRepo) FindDraft(userID, templateID uint) (*submission.ReportSubmission, error) {
	var s submission.ReportSubmission
	err := r.db.
		Where("user_id = ? AND template_id = ? AND status = ?", userID, templateID, submission.StatusDraft).
		First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSubmissionRepo) FindLatest(userID, templateID uint) (*submission.ReportSubmission, error) {
	var s submission.ReportSubmission
	err := r.db.
		Where("user_id = ? AND template_id = ?", userID, templateID).
		Order("created_at desc").
		First(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSubmissionRepo) List(filter submission.ListFilter, scope org.Scope) ([]submission.ReportSubmission, int64, error) {
	q := r.db.Model(&submission.ReportSubmission{})

	if filter.TemplateID != nil {
		q = q.Where("template_id = ?", *filter.TemplateID)
	}
	if filter.WindowID != nil {
		q = q.Where("window_id = ?", *filter.WindowID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	q = scope.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	var subs []submission.ReportSubmission
	err := q.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subs).Error
	return subs, total, err
}

func (r *DBSubmissionRepo) CreateApproval(a *submission.SubmissionApproval) error {
	return r.db.Create(a).Error
}

func (r *DBSubmissionRepo) ListApprovals(submissionID uint) ([]submission.SubmissionApproval, error) {
	var entries []submission.SubmissionApproval
	err := r.db.Where("submission_id = ?", submissionID).Order("created_at").Find(&entries).Error
	return entries, err
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{db: tx}
}
