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

// FlagService keeps at most one active "needs attention" flag per
// submission. Follow-up concerns go into comments, not additional flags.
type FlagService struct {
	Repos      *repository.Repos
	scope      *ScopeService
	dispatcher notify.Dispatcher
}

func NewFlagService(repos *repository.Repos, scope *ScopeService, dispatcher notify.Dispatcher) *FlagService {
	return &FlagService{Repos: repos, scope: scope, dispatcher: dispatcher}
}

func (s *FlagService) Raise(actor Actor, submissionID uint, reason string) (*submission.SubmissionFlag, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("flag reason is required")
	}
	if len(reason) > submission.MaxFlagReasonLen {
		return nil, apperr.Validation(fmt.Sprintf("flag reason must be at most %d characters", submission.MaxFlagReasonLen))
	}

	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}

	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
		return nil, apperr.Authorization("submission is outside your scope")
	}

	existing, err := s.Repos.Flag.FindActiveBySubmission(sub.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("submission already has an active flag")
	}

	f := &submission.SubmissionFlag{
		SubmissionID: sub.ID,
		RaisedByID:   actor.ID,
		RaisedByName: actor.Name,
		Reason:       reason,
		Active:       true,
	}
	if err := s.Repos.Flag.Create(f); err != nil {
		return nil, err
	}

	e := notify.NewEvent(notify.EventFlagRaised,
		fmt.Sprintf("Report #%d flagged", sub.ID),
		fmt.Sprintf("%s flagged report #%d: %s", actor.Name, sub.ID, reason))
	e.Priority = notify.PriorityHigh
	e.SubmissionID = &sub.ID
	e.Recipients = []notify.Recipient{{Admins: true}}
	notify.Publish(s.dispatcher, e)
	return f, nil
}

func (s *FlagService) Resolve(actor Actor, flagID uint, notes string) (*submission.SubmissionFlag, error) {
	f, err := s.Repos.Flag.FindByID(flagID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("flag not found")
		}
		return nil, err
	}
	if !f.Active {
		return nil, apperr.Conflict("flag is already resolved")
	}

	now := nowFunc()
	f.Active = false
	f.ResolvedByID = &actor.ID
	f.ResolvedByName = actor.Name
	f.ResolutionNotes = notes
	f.ResolvedAt = &now
	if err := s.Repos.Flag.Save(&f); err != nil {
		return nil, err
	}

	e := notify.NewEvent(notify.EventFlagResolved,
		fmt.Sprintf("Flag on report #%d resolved", f.SubmissionID),
		fmt.Sprintf("%s resolved the flag you raised.", actor.Name))
	e.SubmissionID = &f.SubmissionID
	e.Recipients = []notify.Recipient{{UserID: f.RaisedByID, Name: f.RaisedByName}}
	notify.Publish(s.dispatcher, e)
	return &f, nil
}

func (s *FlagService) ListBySubmission(submissionID uint) ([]submission.SubmissionFlag, error) {
	return s.Repos.Flag.ListBySubmission(submissionID)
}
