package application

import (
	"fmt"

	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// SubmissionService owns the per-submission lifecycle:
// draft -> submitted -> {approved, rejected}, with rejected -> draft as the
// single backward edge. No other transitions exist.
type SubmissionService struct {
	Repos      *repository.Repos
	scope      *ScopeService
	dispatcher notify.Dispatcher
}

func NewSubmissionService(repos *repository.Repos, scope *ScopeService, dispatcher notify.Dispatcher) *SubmissionService {
	return &SubmissionService{Repos: repos, scope: scope, dispatcher: dispatcher}
}

// SaveDraft creates the caller's draft for a template, or overwrites the
// response payload of the existing one. At most one open draft per submitter
// per template.
func (s *SubmissionService) SaveDraft(actor Actor, input submission.SaveDraftDTO) (*submission.ReportSubmission, error) {
	if _, err := s.Repos.Template.FindByID(input.TemplateID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("template not found")
		}
		return nil, err
	}

	draft, err := s.Repos.Submission.FindDraft(actor.ID, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		draft.Responses = input.Responses
		if input.WindowID != nil {
			draft.WindowID = input.WindowID
		}
		return draft, s.Repos.Submission.Save(draft)
	}

	usr, err := s.Repos.User.GetUserByID(actor.ID)
	if err != nil {
		return nil, err
	}
	sub := &submission.ReportSubmission{
		TemplateID:     input.TemplateID,
		WindowID:       input.WindowID,
		UserID:         usr.ID,
		SubmitterName:  usr.FullName,
		MembershipNo:   usr.MembershipNo,
		SubmitterEmail: usr.Email,
		Level:          usr.Level,
		MuqamID:        usr.MuqamID,
		DilaID:         usr.DilaID,
		ZoneID:         usr.ZoneID,
		Responses:      input.Responses,
		Status:         submission.StatusDraft,
	}
	return sub, s.Repos.Submission.Create(sub)
}

// Submit saves the caller's answers and moves the draft to submitted. The
// template must be active; when a window is referenced it must be open.
// Calling Submit on an already-submitted report is a harmless no-op.
func (s *SubmissionService) Submit(actor Actor, input submission.SubmitDTO) (*submission.ReportSubmission, error) {
	tmpl, err := s.Repos.Template.FindByID(input.TemplateID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("template not found")
		}
		return nil, err
	}

	latest, err := s.Repos.Submission.FindLatest(actor.ID, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status != submission.StatusDraft {
		// Double-submit: no error, no re-timestamp.
		return latest, nil
	}

	if !tmpl.Active {
		return nil, apperr.Conflict("template is not accepting submissions")
	}
	if input.WindowID != nil {
		w, err := s.Repos.Window.FindByID(*input.WindowID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperr.NotFound("window not found")
			}
			return nil, err
		}
		if w.TemplateID != tmpl.ID {
			return nil, apperr.Validation("window does not belong to the template")
		}
		if !w.IsOpen(nowFunc()) {
			return nil, apperr.Validation("window not open")
		}
	}

	draft, err := s.SaveDraft(actor, submission.SaveDraftDTO(input))
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	draft.Status = submission.StatusSubmitted
	draft.SubmittedAt = &now
	return draft, s.Repos.Submission.Save(draft)
}

// Approve appends an approved ledger entry and marks the submission
// approved. Only legal from submitted.
func (s *SubmissionService) Approve(actor Actor, submissionID uint, comments string) (*submission.ReportSubmission, error) {
	sub, err := s.authorize(actor, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != submission.StatusSubmitted {
		return nil, apperr.Conflict(fmt.Sprintf("submission is %s, only submitted reports can be approved", sub.Status))
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.CreateApproval(&submission.SubmissionApproval{
			SubmissionID: sub.ID,
			ApproverID:   actor.ID,
			ApproverName: actor.Name,
			Decision:     submission.DecisionApproved,
			Comments:     comments,
		}); err != nil {
			return err
		}
		sub.Status = submission.StatusApproved
		return tx.Submission.Save(sub)
	})
	if err != nil {
		return nil, err
	}

	e := notify.NewEvent(notify.EventSubmissionApproved,
		"Your report was approved",
		fmt.Sprintf("Report #%d was approved by %s.", sub.ID, actor.Name))
	e.SubmissionID = &sub.ID
	e.Recipients = []notify.Recipient{{UserID: sub.UserID, Name: sub.SubmitterName, Email: sub.SubmitterEmail}}
	notify.Publish(s.dispatcher, e)
	return sub, nil
}

// Reject appends a rejected ledger entry, marks the submission rejected and
// stores the reason. Only legal from submitted; the reason is required.
func (s *SubmissionService) Reject(actor Actor, submissionID uint, reason string) (*submission.ReportSubmission, error) {
	if reason == "" {
		return nil, apperr.Validation("rejection reason is required")
	}
	sub, err := s.authorize(actor, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != submission.StatusSubmitted {
		return nil, apperr.Conflict(fmt.Sprintf("submission is %s, only submitted reports can be rejected", sub.Status))
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.CreateApproval(&submission.SubmissionApproval{
			SubmissionID: sub.ID,
			ApproverID:   actor.ID,
			ApproverName: actor.Name,
			Decision:     submission.DecisionRejected,
			Comments:     reason,
		}); err != nil {
			return err
		}
		sub.Status = submission.StatusRejected
		sub.RejectionReason = reason
		return tx.Submission.Save(sub)
	})
	if err != nil {
		return nil, err
	}

	e := notify.NewEvent(notify.EventSubmissionRejected,
		"Your report was rejected",
		fmt.Sprintf("Report #%d was rejected: %s", sub.ID, reason))
	e.Priority = notify.PriorityHigh
	e.SubmissionID = &sub.ID
	e.Recipients = []notify.Recipient{{UserID: sub.UserID, Name: sub.SubmitterName, Email: sub.SubmitterEmail}}
	notify.Publish(s.dispatcher, e)
	return sub, nil
}

// ReturnToDraft reopens a rejected submission for editing. The rejection
// ledger entry stays as history; only the submission row is reset.
func (s *SubmissionService) ReturnToDraft(actor Actor, submissionID uint) (*submission.ReportSubmission, error) {
	sub, err := s.find(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != actor.ID && !actor.IsAdmin {
		return nil, apperr.Authorization("only the submitter may return a report to draft")
	}
	if sub.Status != submission.StatusRejected {
		return nil, apperr.Conflict(fmt.Sprintf("submission is %s, only rejected reports can return to draft", sub.Status))
	}

	sub.Status = submission.StatusDraft
	sub.SubmittedAt = nil
	sub.RejectionReason = ""
	return sub, s.Repos.Submission.Save(sub)
}

// List returns submissions matching the filter, always intersected with the
// caller's resolved scope.
func (s *SubmissionService) List(actor Actor, filter submission.ListFilter) ([]submission.ReportSubmission, int64, error) {
	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return nil, 0, err
	}
	return s.Repos.Submission.List(filter, scope)
}

// Get returns a single submission when the caller owns it or it falls inside
// their scope.
func (s *SubmissionService) Get(actor Actor, submissionID uint) (*submission.ReportSubmission, error) {
	sub, err := s.find(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID == actor.ID {
		return sub, nil
	}
	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
		return nil, apperr.Authorization("submission is outside your scope")
	}
	return sub, nil
}

// Ledger returns the append-only approval history of a submission.
func (s *SubmissionService) Ledger(actor Actor, submissionID uint) ([]submission.SubmissionApproval, error) {
	if _, err := s.Get(actor, submissionID); err != nil {
		return nil, err
	}
	return s.Repos.Submission.ListApprovals(submissionID)
}

// authorize loads a submission and checks the actor's scope covers it.
func (s *SubmissionService) authorize(actor Actor, submissionID uint) (*submission.ReportSubmission, error) {
	sub, err := s.find(submissionID)
	if err != nil {
		return nil, err
	}
	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
		return nil, apperr.Authorization("submission is outside your scope")
	}
	return sub, nil
}

func (s *SubmissionService) find(submissionID uint) (*submission.ReportSubmission, error) {
	sub, err := s.Repos.Submission.FindByID(submissionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	return &sub, nil
}
