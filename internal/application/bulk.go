package application

import (
	"fmt"

	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// BulkService applies one approve/reject decision to a batch of submissions.
// Items are processed sequentially with per-item failure isolation: one bad
// submission never aborts the batch, and every successful transition commits
// together in a single transaction.
type BulkService struct {
	Repos      *repository.Repos
	scope      *ScopeService
	dispatcher notify.Dispatcher
}

func NewBulkService(repos *repository.Repos, scope *ScopeService, dispatcher notify.Dispatcher) *BulkService {
	return &BulkService{Repos: repos, scope: scope, dispatcher: dispatcher}
}

func (s *BulkService) BulkApprove(actor Actor, ids []uint, comments string) (*submission.BulkResult, error) {
	return s.decide(actor, ids, submission.DecisionApproved, comments)
}

func (s *BulkService) BulkReject(actor Actor, ids []uint, reason string) (*submission.BulkResult, error) {
	if reason == "" {
		return nil, apperr.Validation("rejection reason is required")
	}
	return s.decide(actor, ids, submission.DecisionRejected, reason)
}

func (s *BulkService) decide(actor Actor, ids []uint, decision submission.Decision, text string) (*submission.BulkResult, error) {
	if len(ids) == 0 {
		return nil, apperr.Validation("no submissions given")
	}
	if len(ids) > submission.MaxBulkItems {
		return nil, apperr.Validation(fmt.Sprintf("at most %d submissions per bulk call", submission.MaxBulkItems))
	}

	scope, err := s.scope.ScopeFor(actor)
	if err != nil {
		return nil, err
	}

	result := &submission.BulkResult{Requested: len(ids)}

	// Check every item before touching the database for writes, so one bad
	// item can never poison the transaction the good ones commit in.
	var decided []submission.ReportSubmission
	for _, id := range ids {
		sub, err := s.Repos.Submission.FindByID(id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				result.Errors = append(result.Errors, fmt.Sprintf("%d: submission not found", id))
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%d: %v", id, err))
			continue
		}
		if !scope.Contains(sub.MuqamID, sub.DilaID, sub.ZoneID) {
			result.Errors = append(result.Errors, fmt.Sprintf("%d: outside your scope", id))
			continue
		}
		if sub.Status != submission.StatusSubmitted {
			result.Errors = append(result.Errors, fmt.Sprintf("%d: not in submitted status", id))
			continue
		}

		if decision == submission.DecisionApproved {
			sub.Status = submission.StatusApproved
		} else {
			sub.Status = submission.StatusRejected
			sub.RejectionReason = text
		}
		decided = append(decided, sub)
	}
	result.Failed = len(result.Errors)

	var recipients []notify.Recipient
	if len(decided) > 0 {
		err = s.Repos.ExecTx(func(tx *repository.Repos) error {
			for i := range decided {
				if err := tx.Submission.CreateApproval(&submission.SubmissionApproval{
					SubmissionID: decided[i].ID,
					ApproverID:   actor.ID,
					ApproverName: actor.Name,
					Decision:     decision,
					Comments:     text,
				}); err != nil {
					return err
				}
				if err := tx.Submission.Save(&decided[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		result.Success = len(decided)
		for i := range decided {
			recipients = append(recipients, notify.Recipient{
				UserID: decided[i].UserID, Name: decided[i].SubmitterName, Email: decided[i].SubmitterEmail,
			})
		}
	}

	if len(recipients) > 0 {
		// One bulk notification rather than N individual ones.
		e := notify.NewEvent(notify.EventBulkDecision,
			fmt.Sprintf("Reports %s", decision),
			fmt.Sprintf("%d report(s) were %s by %s.", result.Success, decision, actor.Name))
		if decision == submission.DecisionRejected {
			e.Priority = notify.PriorityHigh
		}
		e.Recipients = recipients
		notify.Publish(s.dispatcher, e)
	}
	return result, nil
}
