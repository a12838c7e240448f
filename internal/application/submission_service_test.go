package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"github.com/tanzeemhub/reports-go/internal/domain/window"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/repository/mock"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type submissionMocks struct {
	submission *mock.MockSubmissionRepo
	template   *mock.MockTemplateRepo
	window     *mock.MockWindowRepo
	user       *mock.MockUserRepo
	org        *mock.MockOrgRepo
}

func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, submissionMocks, *captureDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := submissionMocks{
		submission: mock.NewMockSubmissionRepo(ctrl),
		template:   mock.NewMockTemplateRepo(ctrl),
		window:     mock.NewMockWindowRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
		org:        mock.NewMockOrgRepo(ctrl),
	}
	repos := &repository.Repos{
		Submission: m.submission,
		Template:   m.template,
		Window:     m.window,
		User:       m.user,
		Org:        m.org,
	}
	dispatcher := &captureDispatcher{}
	svc := NewSubmissionService(repos, NewScopeService(repos), dispatcher)
	return svc, m, dispatcher
}

var responses = datatypes.JSON([]byte(`{"q1": "yes"}`))

func submitter() Actor {
	return Actor{ID: 10, Name: "Alice", Level: org.LevelMuqam, MuqamID: ptrUint(5)}
}

func adminActor() Actor {
	return Actor{ID: 1, Name: "Nazim", IsAdmin: true}
}

// --------------------- SaveDraft ---------------------
func TestSaveDraft_CreatesNew(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1}, nil)
	m.submission.EXPECT().FindDraft(uint(10), uint(1)).Return(nil, nil)
	m.user.EXPECT().GetUserByID(uint(10)).Return(user.User{
		ID: 10, FullName: "Alice", Email: "a@test.com", MembershipNo: "M-001",
		Level: org.LevelMuqam, MuqamID: ptrUint(5),
	}, nil)
	m.submission.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *submission.ReportSubmission) error {
		assert.Equal(t, submission.StatusDraft, s.Status)
		assert.Equal(t, "Alice", s.SubmitterName)
		assert.Equal(t, "M-001", s.MembershipNo)
		assert.Equal(t, uint(5), *s.MuqamID)
		return nil
	})

	sub, err := svc.SaveDraft(submitter(), submission.SaveDraftDTO{TemplateID: 1, Responses: responses})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, sub.Status)
}

func TestSaveDraft_OverwritesExisting(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	existing := &submission.ReportSubmission{
		ID: 3, TemplateID: 1, UserID: 10, Status: submission.StatusDraft,
		Responses: datatypes.JSON([]byte(`{"q1": "old"}`)),
	}
	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1}, nil)
	m.submission.EXPECT().FindDraft(uint(10), uint(1)).Return(existing, nil)
	m.submission.EXPECT().Save(existing).Return(nil)

	sub, err := svc.SaveDraft(submitter(), submission.SaveDraftDTO{TemplateID: 1, Responses: responses})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), sub.ID)
	assert.Equal(t, responses, sub.Responses)
}

func TestSaveDraft_TemplateNotFound(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.template.EXPECT().FindByID(uint(9)).Return(template.ReportTemplate{}, gorm.ErrRecordNotFound)

	_, err := svc.SaveDraft(submitter(), submission.SaveDraftDTO{TemplateID: 9, Responses: responses})
	assert.True(t, apperr.IsNotFound(err))
}

// --------------------- Submit ---------------------
func TestSubmit_Success(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	pinNow(t, now)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: true}, nil).Times(2)
	m.submission.EXPECT().FindLatest(uint(10), uint(1)).Return(nil, nil)
	draft := &submission.ReportSubmission{ID: 3, TemplateID: 1, UserID: 10, Status: submission.StatusDraft}
	m.submission.EXPECT().FindDraft(uint(10), uint(1)).Return(draft, nil)
	m.submission.EXPECT().Save(draft).Return(nil).Times(2)

	sub, err := svc.Submit(submitter(), submission.SubmitDTO{TemplateID: 1, Responses: responses})
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)
	assert.Equal(t, now, *sub.SubmittedAt)
}

func TestSubmit_DoubleSubmitIsNoop(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	submittedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	latest := &submission.ReportSubmission{
		ID: 3, TemplateID: 1, UserID: 10,
		Status: submission.StatusSubmitted, SubmittedAt: &submittedAt,
	}
	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: true}, nil)
	m.submission.EXPECT().FindLatest(uint(10), uint(1)).Return(latest, nil)

	sub, err := svc.Submit(submitter(), submission.SubmitDTO{TemplateID: 1, Responses: responses})
	assert.NoError(t, err)
	assert.Equal(t, submittedAt, *sub.SubmittedAt)
}

func TestSubmit_InactiveTemplate(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: false}, nil)
	m.submission.EXPECT().FindLatest(uint(10), uint(1)).Return(nil, nil)

	_, err := svc.Submit(submitter(), submission.SubmitDTO{TemplateID: 1, Responses: responses})
	assert.True(t, apperr.IsConflict(err))
}

func TestSubmit_WindowNotOpen(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)
	pinNow(t, q1End.AddDate(0, 1, 0))

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: true}, nil)
	m.submission.EXPECT().FindLatest(uint(10), uint(1)).Return(nil, nil)
	m.window.EXPECT().FindByID(uint(7)).Return(window.SubmissionWindow{
		ID: 7, TemplateID: 1, StartDate: q1Start, EndDate: q1End, Active: true,
	}, nil)

	_, err := svc.Submit(submitter(), submission.SubmitDTO{
		TemplateID: 1, WindowID: ptrUint(7), Responses: responses,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestSubmit_WindowTemplateMismatch(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: true}, nil)
	m.submission.EXPECT().FindLatest(uint(10), uint(1)).Return(nil, nil)
	m.window.EXPECT().FindByID(uint(7)).Return(window.SubmissionWindow{ID: 7, TemplateID: 2}, nil)

	_, err := svc.Submit(submitter(), submission.SubmitDTO{
		TemplateID: 1, WindowID: ptrUint(7), Responses: responses,
	})
	assert.True(t, apperr.IsValidation(err))
}

// --------------------- Approve ---------------------
func TestApprove_Success(t *testing.T) {
	svc, m, dispatcher := setupSubmissionServiceMocks(t)

	sub := submission.ReportSubmission{
		ID: 3, UserID: 10, SubmitterName: "Alice", SubmitterEmail: "a@test.com",
		Status: submission.StatusSubmitted, MuqamID: ptrUint(5),
	}
	m.submission.EXPECT().FindByID(uint(3)).Return(sub, nil)
	m.submission.EXPECT().CreateApproval(gomock.Any()).DoAndReturn(func(a *submission.SubmissionApproval) error {
		assert.Equal(t, submission.DecisionApproved, a.Decision)
		assert.Equal(t, uint(1), a.ApproverID)
		return nil
	})
	m.submission.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *submission.ReportSubmission) error {
		assert.Equal(t, submission.StatusApproved, s.Status)
		return nil
	})

	out, err := svc.Approve(adminActor(), 3, "well done")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, out.Status)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.EventSubmissionApproved, dispatcher.events[0].Type)
	assert.Equal(t, uint(10), dispatcher.events[0].Recipients[0].UserID)
}

func TestApprove_OnlyFromSubmitted(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	for _, status := range []submission.Status{submission.StatusDraft, submission.StatusApproved, submission.StatusRejected} {
		m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
			ID: 3, Status: status, MuqamID: ptrUint(5),
		}, nil)

		_, err := svc.Approve(adminActor(), 3, "")
		assert.True(t, apperr.IsConflict(err), "status %s", status)
	}
}

func TestApprove_OutsideScope(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	// Dila reviewer for dila 7; the submission belongs to dila 8.
	reviewer := Actor{ID: 2, Name: "Rafiq", Level: org.LevelDila, DilaID: ptrUint(7)}
	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
		ID: 3, Status: submission.StatusSubmitted, MuqamID: ptrUint(99), DilaID: ptrUint(8),
	}, nil)
	m.org.EXPECT().ListMuqamIDsByDilas([]uint{7}).Return([]uint{70, 71}, nil)
	m.org.EXPECT().ListJamaatIDsByMuqams([]uint{70, 71}).Return(nil, nil)

	_, err := svc.Approve(reviewer, 3, "")
	assert.True(t, apperr.IsAuthorization(err))
}

// --------------------- Reject ---------------------
func TestReject_Success(t *testing.T) {
	svc, m, dispatcher := setupSubmissionServiceMocks(t)

	sub := submission.ReportSubmission{
		ID: 3, UserID: 10, SubmitterName: "Alice",
		Status: submission.StatusSubmitted, MuqamID: ptrUint(5),
	}
	m.submission.EXPECT().FindByID(uint(3)).Return(sub, nil)
	m.submission.EXPECT().CreateApproval(gomock.Any()).DoAndReturn(func(a *submission.SubmissionApproval) error {
		assert.Equal(t, submission.DecisionRejected, a.Decision)
		assert.Equal(t, "numbers missing", a.Comments)
		return nil
	})
	m.submission.EXPECT().Save(gomock.Any()).Return(nil)

	out, err := svc.Reject(adminActor(), 3, "numbers missing")
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, out.Status)
	assert.Equal(t, "numbers missing", out.RejectionReason)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.PriorityHigh, dispatcher.events[0].Priority)
}

func TestReject_ReasonRequired(t *testing.T) {
	svc, _, _ := setupSubmissionServiceMocks(t)

	_, err := svc.Reject(adminActor(), 3, "")
	assert.True(t, apperr.IsValidation(err))
}

// --------------------- ReturnToDraft ---------------------
func TestReturnToDraft_Success(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	submittedAt := time.Now()
	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
		ID: 3, UserID: 10, Status: submission.StatusRejected,
		SubmittedAt: &submittedAt, RejectionReason: "numbers missing",
	}, nil)
	m.submission.EXPECT().Save(gomock.Any()).Return(nil)

	out, err := svc.ReturnToDraft(submitter(), 3)
	assert.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, out.Status)
	assert.Nil(t, out.SubmittedAt)
	assert.Empty(t, out.RejectionReason)
}

func TestReturnToDraft_OnlyRejected(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
		ID: 3, UserID: 10, Status: submission.StatusApproved,
	}, nil)

	_, err := svc.ReturnToDraft(submitter(), 3)
	assert.True(t, apperr.IsConflict(err))
}

func TestReturnToDraft_OnlySubmitter(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
		ID: 3, UserID: 99, Status: submission.StatusRejected,
	}, nil)

	_, err := svc.ReturnToDraft(submitter(), 3)
	assert.True(t, apperr.IsAuthorization(err))
}

// --------------------- Get / Ledger ---------------------
func TestGet_OwnerBypassesScope(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{ID: 3, UserID: 10}, nil)

	sub, err := svc.Get(submitter(), 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), sub.ID)
}

func TestGet_OutsideScope(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	viewer := Actor{ID: 2, Level: org.LevelMuqam, MuqamID: ptrUint(5)}
	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{
		ID: 3, UserID: 99, MuqamID: ptrUint(6),
	}, nil)
	m.org.EXPECT().ListJamaatIDsByMuqams([]uint{5}).Return(nil, nil)

	_, err := svc.Get(viewer, 3)
	assert.True(t, apperr.IsAuthorization(err))
}

func TestLedger(t *testing.T) {
	svc, m, _ := setupSubmissionServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{ID: 3, UserID: 10}, nil)
	m.submission.EXPECT().ListApprovals(uint(3)).Return([]submission.SubmissionApproval{
		{ID: 1, Decision: submission.DecisionRejected},
		{ID: 2, Decision: submission.DecisionApproved},
	}, nil)

	ledger, err := svc.Ledger(submitter(), 3)
	assert.NoError(t, err)
	assert.Len(t, ledger, 2)
}
