package application

import (
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

type TemplateService struct {
	Repos *repository.Repos
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{Repos: repos}
}

func (s *TemplateService) Create(actor Actor, input template.CreateTemplateDTO) (*template.ReportTemplate, error) {
	t := &template.ReportTemplate{
		Title:       input.Title,
		Description: input.Description,
		Questions:   input.Questions,
		CreatedByID: actor.ID,
	}
	return t, s.Repos.Template.Create(t)
}

func (s *TemplateService) Update(id uint, input template.UpdateTemplateDTO) (*template.ReportTemplate, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Questions != nil {
		t.Questions = *input.Questions
	}
	return t, s.Repos.Template.Save(t)
}

// Activate turns the template on for submissions.
func (s *TemplateService) Activate(id uint) (*template.ReportTemplate, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if t.Active {
		return nil, apperr.Conflict("template is already active")
	}
	t.Active = true
	return t, s.Repos.Template.Save(t)
}

// Deactivate refuses while the template still has active windows; the
// operator must close windows first so no open window points at a template
// that no longer collects responses.
func (s *TemplateService) Deactivate(id uint) (*template.ReportTemplate, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, apperr.Conflict("template is already inactive")
	}

	active, err := s.Repos.Window.CountActiveByTemplate(t.ID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, apperr.Conflict("template has active submission windows; close them first")
	}

	t.Active = false
	return t, s.Repos.Template.Save(t)
}

func (s *TemplateService) Get(id uint) (*template.ReportTemplate, error) {
	return s.find(id)
}

func (s *TemplateService) List() ([]template.ReportTemplate, error) {
	return s.Repos.Template.List()
}

func (s *TemplateService) find(id uint) (*template.ReportTemplate, error) {
	t, err := s.Repos.Template.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("template not found")
		}
		return nil, err
	}
	return &t, nil
}
