package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	Create(t *template.ReportTemplate) error
	FindByID(id uint) (template.ReportTemplate, error)
	Save(t *template.ReportTemplate) error
	List() ([]template.ReportTemplate, error)
	ListActive() ([]template.ReportTemplate, error)
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{db: db}
}

func (r *DBTemplateRepo) Create(t *template.ReportTemplate) error {
	return r.db.Create(t).Error
}

func (r *DBTemplateRepo) FindByID(id uint) (template.ReportTemplate, error) {
	var t template.ReportTemplate
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBTemplateRepo) Save(t *template.ReportTemplate) error {
	return r.db.Save(t).Error
}

func (r *DBTemplateRepo) List() ([]template.ReportTemplate, error) {
	var ts []template.ReportTemplate
	err := r.db.Order("created_at desc").Find(&ts).Error
	return ts, err
}

func (r *DBTemplateRepo) ListActive() ([]template.ReportTemplate, error) {
	var ts []template.ReportTemplate
	err := r.db.Where("active = ?", true).Order("created_at desc").Find(&ts).Error
	return ts, err
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{db: tx}
}
