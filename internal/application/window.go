package application

import (
	"fmt"
	"log"
	"time"

	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/window"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// nowFunc is swapped in tests to pin time-dependent checks.
var nowFunc = time.Now

type WindowService struct {
	Repos      *repository.Repos
	dispatcher notify.Dispatcher
}

func NewWindowService(repos *repository.Repos, dispatcher notify.Dispatcher) *WindowService {
	return &WindowService{Repos: repos, dispatcher: dispatcher}
}

// Open creates a submission window for a template. Active windows of one
// template must not overlap on [start, end).
func (s *WindowService) Open(actor Actor, templateID uint, input window.OpenWindowDTO) (*window.SubmissionWindow, error) {
	tmpl, err := s.Repos.Template.FindByID(templateID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("template not found")
		}
		return nil, err
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, apperr.Validation("end date must be after start date")
	}

	existing, err := s.Repos.Window.ListActiveByTemplate(tmpl.ID, 0)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if window.Overlaps(input.StartDate, input.EndDate, existing[i].StartDate, existing[i].EndDate) {
			return nil, apperr.Conflict(fmt.Sprintf(
				"window dates overlap active window %q", existing[i].Name))
		}
	}

	w := &window.SubmissionWindow{
		TemplateID:  tmpl.ID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Active:      true,
		CreatedByID: actor.ID,
	}
	if err := s.Repos.Window.Create(w); err != nil {
		return nil, err
	}

	s.notifyEligible(notify.EventWindowOpened,
		fmt.Sprintf("Reporting window %q is open", w.Name),
		fmt.Sprintf("Template %q accepts submissions until %s.", tmpl.Title, w.EndDate.Format(time.RFC1123)),
		w)
	return w, nil
}

// Update edits name, dates and description. A window past its deadline may
// still be extended, but the end date can never be pulled below now.
func (s *WindowService) Update(windowID uint, input window.UpdateWindowDTO) (*window.SubmissionWindow, error) {
	w, err := s.Repos.Window.FindByID(windowID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("window not found")
		}
		return nil, err
	}

	prevEnd := w.EndDate
	if input.Name != nil {
		w.Name = *input.Name
	}
	if input.Description != nil {
		w.Description = *input.Description
	}
	if input.StartDate != nil {
		w.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		w.EndDate = *input.EndDate
	}

	if !w.EndDate.After(w.StartDate) {
		return nil, apperr.Validation("end date must be after start date")
	}
	if w.EndDate.Before(prevEnd) && w.EndDate.Before(nowFunc()) {
		return nil, apperr.Validation("end date cannot be shortened to a time in the past")
	}

	if w.Active {
		existing, err := s.Repos.Window.ListActiveByTemplate(w.TemplateID, w.ID)
		if err != nil {
			return nil, err
		}
		for i := range existing {
			if window.Overlaps(w.StartDate, w.EndDate, existing[i].StartDate, existing[i].EndDate) {
				return nil, apperr.Conflict(fmt.Sprintf(
					"window dates overlap active window %q", existing[i].Name))
			}
		}
	}

	if err := s.Repos.Window.Save(&w); err != nil {
		return nil, err
	}

	if w.EndDate.After(prevEnd) {
		s.notifyPending(notify.EventDeadlineExtended,
			fmt.Sprintf("Deadline extended for %q", w.Name),
			fmt.Sprintf("The submission deadline moved to %s.", w.EndDate.Format(time.RFC1123)),
			&w)
	}
	return &w, nil
}

// Deactivate closes the window without deleting it.
func (s *WindowService) Deactivate(windowID uint) (*window.SubmissionWindow, error) {
	w, err := s.Repos.Window.FindByID(windowID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("window not found")
		}
		return nil, err
	}
	if !w.Active {
		return nil, apperr.Conflict("window is already inactive")
	}
	w.Active = false
	if err := s.Repos.Window.Save(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *WindowService) Get(id uint) (*window.SubmissionWindow, error) {
	w, err := s.Repos.Window.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("window not found")
		}
		return nil, err
	}
	return &w, nil
}

func (s *WindowService) List() ([]window.SubmissionWindow, error) {
	return s.Repos.Window.List()
}

func (s *WindowService) ListByTemplate(templateID uint) ([]window.SubmissionWindow, error) {
	return s.Repos.Window.ListByTemplate(templateID)
}

// ListOverdue returns active windows past their end date whose submitted
// count is below the expected submitter count.
func (s *WindowService) ListOverdue() ([]window.OverdueWindow, error) {
	expired, err := s.Repos.Window.ListExpiredActive(nowFunc())
	if err != nil {
		return nil, err
	}

	expected, err := s.Repos.User.CountEligibleSubmitters()
	if err != nil {
		return nil, err
	}

	var overdue []window.OverdueWindow
	for i := range expired {
		submitted, err := s.Repos.Window.CountSubmittedByWindow(expired[i].ID)
		if err != nil {
			return nil, err
		}
		if submitted < expected {
			overdue = append(overdue, window.OverdueWindow{
				Window:         expired[i],
				ExpectedCount:  expected,
				SubmittedCount: submitted,
			})
		}
	}
	return overdue, nil
}

func (s *WindowService) notifyEligible(t notify.EventType, title, body string, w *window.SubmissionWindow) {
	users, err := s.Repos.User.ListEligibleSubmitters(org.Scope{Unrestricted: true})
	if err != nil {
		// Delivery is best-effort; the window change already committed. An
		// event without its recipients would broadcast, so skip it instead.
		log.Printf("window notify: listing recipients: %v", err)
		return
	}
	if len(users) == 0 {
		return
	}
	e := notify.NewEvent(t, title, body)
	e.WindowID = &w.ID
	e.TemplateID = &w.TemplateID
	for i := range users {
		e.Recipients = append(e.Recipients, notify.Recipient{
			UserID: users[i].ID, Name: users[i].FullName, Email: users[i].Email,
		})
	}
	notify.Publish(s.dispatcher, e)
}

func (s *WindowService) notifyPending(t notify.EventType, title, body string, w *window.SubmissionWindow) {
	users, err := s.Repos.User.ListSubmittersWithoutSubmission(w.TemplateID)
	if err != nil {
		log.Printf("window notify: listing pending submitters: %v", err)
		return
	}
	if len(users) == 0 {
		return
	}
	e := notify.NewEvent(t, title, body)
	e.WindowID = &w.ID
	e.TemplateID = &w.TemplateID
	for i := range users {
		e.Recipients = append(e.Recipients, notify.Recipient{
			UserID: users[i].ID, Name: users[i].FullName, Email: users[i].Email,
		})
	}
	notify.Publish(s.dispatcher, e)
}
