package repository

import (
	"time"

	"github.com/tanzeemhub/reports-go/internal/domain/window"
	"gorm.io/gorm"
)

type WindowRepo interface {
	Create(w *window.SubmissionWindow) error
	FindByID(id uint) (window.SubmissionWindow, error)
	Save(w *window.SubmissionWindow) error
	List() ([]window.SubmissionWindow, error)
	ListByTemplate(templateID uint) ([]window.SubmissionWindow, error)
	// ListActiveByTemplate returns active windows of the template, excluding
	// excludeID (0 to exclude none). Feeds the overlap check.
	ListActiveByTemplate(templateID, excludeID uint) ([]window.SubmissionWindow, error)
	CountActiveByTemplate(templateID uint) (int64, error)
	// ListExpiredActive returns active windows whose end date is before now.
	ListExpiredActive(now time.Time) ([]window.SubmissionWindow, error)
	CountSubmittedByWindow(windowID uint) (int64, error)
	WithTx(tx *gorm.DB) WindowRepo
}

type DBWindowRepo struct {
	db *gorm.DB
}

func NewWindowRepo(db *gorm.DB) *DBWindowRepo {
	return &DBWindowRepo{db: db}
}

func (r *DBWindowRepo) Create(w *window.SubmissionWindow) error {
	return r.db.Create(w).Error
}

func (r *DBWindowRepo) FindByID(id uint) (window.SubmissionWindow, error) {
	var w window.SubmissionWindow
	err := r.db.First(&w, id).Error
	return w, err
}

func (r *DBWindowRepo) Save(w *window.SubmissionWindow) error {
	return r.db.Save(w).Error
}

func (r *DBWindowRepo) List() ([]window.SubmissionWindow, error) {
	var ws []window.SubmissionWindow
	err := r.db.Order("start_date desc").Find(&ws).Error
	return ws, err
}

func (r *DBWindowRepo) ListByTemplate(templateID uint) ([]window.SubmissionWindow, error) {
	var ws []window.SubmissionWindow
	err := r.db.Where("template_id = ?", templateID).Order("start_date desc").Find(&ws).Error
	return ws, err
}

func (r *DBWindowRepo) ListActiveByTemplate(templateID, excludeID uint) ([]window.SubmissionWindow, error) {
	var ws []window.SubmissionWindow
	q := r.db.Where("template_id = ? AND active = ?", templateID, true)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Find(&ws).Error
	return ws, err
}

func (r *DBWindowRepo) CountActiveByTemplate(templateID uint) (int64, error) {
	var count int64
	err := r.db.Model(&window.SubmissionWindow{}).
		Where("template_id = ? AND active = ?", templateID, true).
		Count(&count).Error
	return count, err
}

func (r *DBWindowRepo) ListExpiredActive(now time.Time) ([]window.SubmissionWindow, error) {
	var ws []window.SubmissionWindow
	err := r.db.Where("active = ? AND end_date < ?", true, now).Order("end_date").Find(&ws).Error
	return ws, err
}

func (r *DBWindowRepo) CountSubmittedByWindow(windowID uint) (int64, error) {
	var count int64
	err := r.db.Table("report_submissions").
		Where("window_id = ? AND status IN ('submitted', 'approved')", windowID).
		Count(&count).Error
	return count, err
}

func (r *DBWindowRepo) WithTx(tx *gorm.DB) WindowRepo {
	if tx == nil {
		return r
	}
	return &DBWindowRepo{db: tx}
}
