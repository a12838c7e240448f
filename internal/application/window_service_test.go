package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanzeemhub/reports-go/internal/domain/template"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"github.com/tanzeemhub/reports-go/internal/domain/window"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/repository/mock"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

type windowMocks struct {
	window   *mock.MockWindowRepo
	template *mock.MockTemplateRepo
	user     *mock.MockUserRepo
}

func setupWindowServiceMocks(t *testing.T) (*WindowService, windowMocks, *captureDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := windowMocks{
		window:   mock.NewMockWindowRepo(ctrl),
		template: mock.NewMockTemplateRepo(ctrl),
		user:     mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{
		Window:   m.window,
		Template: m.template,
		User:     m.user,
	}
	dispatcher := &captureDispatcher{}
	svc := NewWindowService(repos, dispatcher)
	return svc, m, dispatcher
}

func pinNow(t *testing.T, now time.Time) {
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })
}

var q1Start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
var q1End = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

// --------------------- Open ---------------------
func TestOpenWindow_Success(t *testing.T) {
	svc, m, dispatcher := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Title: "Monthly report", Active: true}, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(0)).Return(nil, nil)
	m.window.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *window.SubmissionWindow) error {
		w.ID = 42
		return nil
	})
	m.user.EXPECT().ListEligibleSubmitters(gomock.Any()).Return([]user.User{
		{ID: 10, FullName: "Alice", Email: "a@test.com"},
		{ID: 11, FullName: "Bob", Email: "b@test.com"},
	}, nil)

	w, err := svc.Open(Actor{ID: 1, Name: "admin", IsAdmin: true}, 1, window.OpenWindowDTO{
		Name:      "Q1",
		StartDate: q1Start,
		EndDate:   q1End,
	})
	assert.NoError(t, err)
	assert.True(t, w.Active)
	assert.Equal(t, uint(1), w.CreatedByID)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.EventWindowOpened, dispatcher.events[0].Type)
	assert.Len(t, dispatcher.events[0].Recipients, 2)
}

func TestOpenWindow_OverlapConflict(t *testing.T) {
	svc, m, dispatcher := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1}, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(0)).Return([]window.SubmissionWindow{
		{ID: 2, Name: "January", StartDate: q1Start, EndDate: q1Start.AddDate(0, 1, 0)},
	}, nil)

	_, err := svc.Open(Actor{ID: 1}, 1, window.OpenWindowDTO{
		Name:      "Overlapping",
		StartDate: q1Start.AddDate(0, 0, 15),
		EndDate:   q1End,
	})
	assert.True(t, apperr.IsConflict(err))
	assert.Empty(t, dispatcher.events)
}

// Back-to-back windows share a boundary instant; [start, end) means no
// overlap.
func TestOpenWindow_AdjacentWindowsAllowed(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1}, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(0)).Return([]window.SubmissionWindow{
		{ID: 2, Name: "Q1", StartDate: q1Start, EndDate: q1End},
	}, nil)
	m.window.EXPECT().Create(gomock.Any()).Return(nil)
	m.user.EXPECT().ListEligibleSubmitters(gomock.Any()).Return(nil, nil)

	_, err := svc.Open(Actor{ID: 1}, 1, window.OpenWindowDTO{
		Name:      "Q2",
		StartDate: q1End,
		EndDate:   q1End.AddDate(0, 3, 0),
	})
	assert.NoError(t, err)
}

func TestOpenWindow_EndBeforeStart(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1}, nil)

	_, err := svc.Open(Actor{ID: 1}, 1, window.OpenWindowDTO{
		Name:      "Backwards",
		StartDate: q1End,
		EndDate:   q1Start,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestOpenWindow_TemplateNotFound(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(9)).Return(template.ReportTemplate{}, gorm.ErrRecordNotFound)

	_, err := svc.Open(Actor{ID: 1}, 9, window.OpenWindowDTO{
		Name:      "Nope",
		StartDate: q1Start,
		EndDate:   q1End,
	})
	assert.True(t, apperr.IsNotFound(err))
}

// A failed recipient lookup must not publish an unaddressed event; the
// window itself still opens.
func TestOpenWindow_RecipientLookupFailureSkipsEvent(t *testing.T) {
	svc, m, dispatcher := setupWindowServiceMocks(t)

	m.template.EXPECT().FindByID(uint(1)).Return(template.ReportTemplate{ID: 1, Active: true}, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(0)).Return(nil, nil)
	m.window.EXPECT().Create(gomock.Any()).Return(nil)
	m.user.EXPECT().ListEligibleSubmitters(gomock.Any()).Return(nil, errors.New("db down"))

	w, err := svc.Open(Actor{ID: 1}, 1, window.OpenWindowDTO{
		Name:      "Q2",
		StartDate: q1End,
		EndDate:   q1End.AddDate(0, 3, 0),
	})
	assert.NoError(t, err)
	assert.NotNil(t, w)
	assert.Empty(t, dispatcher.events)
}

// --------------------- Update ---------------------
func TestUpdateWindow_ExtendDeadlineNotifiesPending(t *testing.T) {
	svc, m, dispatcher := setupWindowServiceMocks(t)
	pinNow(t, q1Start.AddDate(0, 1, 0))

	existing := window.SubmissionWindow{
		ID: 3, TemplateID: 1, Name: "Q1",
		StartDate: q1Start, EndDate: q1End, Active: true,
	}
	newEnd := q1End.AddDate(0, 0, 14)

	m.window.EXPECT().FindByID(uint(3)).Return(existing, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(3)).Return(nil, nil)
	m.window.EXPECT().Save(gomock.Any()).Return(nil)
	m.user.EXPECT().ListSubmittersWithoutSubmission(uint(1)).Return([]user.User{
		{ID: 20, FullName: "Carol"},
	}, nil)

	w, err := svc.Update(3, window.UpdateWindowDTO{EndDate: &newEnd})
	assert.NoError(t, err)
	assert.Equal(t, newEnd, w.EndDate)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.EventDeadlineExtended, dispatcher.events[0].Type)
	assert.Equal(t, uint(20), dispatcher.events[0].Recipients[0].UserID)
}

func TestUpdateWindow_PendingLookupFailureSkipsEvent(t *testing.T) {
	svc, m, dispatcher := setupWindowServiceMocks(t)
	pinNow(t, q1Start.AddDate(0, 1, 0))

	existing := window.SubmissionWindow{
		ID: 3, TemplateID: 1, Name: "Q1",
		StartDate: q1Start, EndDate: q1End, Active: true,
	}
	newEnd := q1End.AddDate(0, 0, 14)

	m.window.EXPECT().FindByID(uint(3)).Return(existing, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(3)).Return(nil, nil)
	m.window.EXPECT().Save(gomock.Any()).Return(nil)
	m.user.EXPECT().ListSubmittersWithoutSubmission(uint(1)).Return(nil, errors.New("db down"))

	w, err := svc.Update(3, window.UpdateWindowDTO{EndDate: &newEnd})
	assert.NoError(t, err)
	assert.Equal(t, newEnd, w.EndDate)
	assert.Empty(t, dispatcher.events)
}

func TestUpdateWindow_CannotShortenIntoPast(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)
	pinNow(t, q1End.AddDate(0, 0, -1))

	existing := window.SubmissionWindow{
		ID: 3, TemplateID: 1,
		StartDate: q1Start, EndDate: q1End, Active: true,
	}
	pastEnd := q1End.AddDate(0, -1, 0)

	m.window.EXPECT().FindByID(uint(3)).Return(existing, nil)

	_, err := svc.Update(3, window.UpdateWindowDTO{EndDate: &pastEnd})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateWindow_OverlapConflict(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)
	pinNow(t, q1Start)

	existing := window.SubmissionWindow{
		ID: 3, TemplateID: 1,
		StartDate: q1Start, EndDate: q1End, Active: true,
	}
	newEnd := q1End.AddDate(0, 2, 0)

	m.window.EXPECT().FindByID(uint(3)).Return(existing, nil)
	m.window.EXPECT().ListActiveByTemplate(uint(1), uint(3)).Return([]window.SubmissionWindow{
		{ID: 4, Name: "Q2", StartDate: q1End, EndDate: q1End.AddDate(0, 3, 0)},
	}, nil)

	_, err := svc.Update(3, window.UpdateWindowDTO{EndDate: &newEnd})
	assert.True(t, apperr.IsConflict(err))
}

// --------------------- Deactivate ---------------------
func TestDeactivateWindow(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)

	m.window.EXPECT().FindByID(uint(3)).Return(window.SubmissionWindow{ID: 3, Active: true}, nil)
	m.window.EXPECT().Save(gomock.Any()).Return(nil)

	w, err := svc.Deactivate(3)
	assert.NoError(t, err)
	assert.False(t, w.Active)
}

func TestDeactivateWindow_AlreadyInactive(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)

	m.window.EXPECT().FindByID(uint(3)).Return(window.SubmissionWindow{ID: 3, Active: false}, nil)

	_, err := svc.Deactivate(3)
	assert.True(t, apperr.IsConflict(err))
}

// --------------------- ListOverdue ---------------------
func TestListOverdue(t *testing.T) {
	svc, m, _ := setupWindowServiceMocks(t)
	now := q1End.AddDate(0, 0, 5)
	pinNow(t, now)

	m.window.EXPECT().ListExpiredActive(now).Return([]window.SubmissionWindow{
		{ID: 1, Name: "met"},
		{ID: 2, Name: "unmet"},
	}, nil)
	m.user.EXPECT().CountEligibleSubmitters().Return(int64(10), nil)
	m.window.EXPECT().CountSubmittedByWindow(uint(1)).Return(int64(10), nil)
	m.window.EXPECT().CountSubmittedByWindow(uint(2)).Return(int64(4), nil)

	overdue, err := svc.ListOverdue()
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.Equal(t, uint(2), overdue[0].Window.ID)
	assert.Equal(t, int64(10), overdue[0].ExpectedCount)
	assert.Equal(t, int64(4), overdue[0].SubmittedCount)
}
