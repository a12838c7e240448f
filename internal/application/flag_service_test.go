package application

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanzeemhub/reports-go/internal/domain/submission"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/repository/mock"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

type flagMocks struct {
	flag       *mock.MockFlagRepo
	submission *mock.MockSubmissionRepo
}

func setupFlagServiceMocks(t *testing.T) (*FlagService, flagMocks, *captureDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := flagMocks{
		flag:       mock.NewMockFlagRepo(ctrl),
		submission: mock.NewMockSubmissionRepo(ctrl),
	}
	repos := &repository.Repos{
		Flag:       m.flag,
		Submission: m.submission,
		Org:        mock.NewMockOrgRepo(ctrl),
	}
	dispatcher := &captureDispatcher{}
	svc := NewFlagService(repos, NewScopeService(repos), dispatcher)
	return svc, m, dispatcher
}

func TestRaiseFlag_Success(t *testing.T) {
	svc, m, dispatcher := setupFlagServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{ID: 3, UserID: 10}, nil)
	m.flag.EXPECT().FindActiveBySubmission(uint(3)).Return(nil, nil)
	m.flag.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *submission.SubmissionFlag) error {
		assert.True(t, f.Active)
		assert.Equal(t, "figures look inflated", f.Reason)
		return nil
	})

	f, err := svc.Raise(adminActor(), 3, "  figures look inflated  ")
	assert.NoError(t, err)
	assert.True(t, f.Active)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.EventFlagRaised, dispatcher.events[0].Type)
	assert.True(t, dispatcher.events[0].Recipients[0].Admins)
}

func TestRaiseFlag_SecondActiveFlagConflicts(t *testing.T) {
	svc, m, dispatcher := setupFlagServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(3)).Return(submission.ReportSubmission{ID: 3}, nil)
	m.flag.EXPECT().FindActiveBySubmission(uint(3)).Return(&submission.SubmissionFlag{ID: 1, Active: true}, nil)

	_, err := svc.Raise(adminActor(), 3, "another concern")
	assert.True(t, apperr.IsConflict(err))
	assert.Empty(t, dispatcher.events)
}

func TestRaiseFlag_ReasonRequired(t *testing.T) {
	svc, _, _ := setupFlagServiceMocks(t)

	_, err := svc.Raise(adminActor(), 3, "   ")
	assert.True(t, apperr.IsValidation(err))
}

func TestRaiseFlag_ReasonTooLong(t *testing.T) {
	svc, _, _ := setupFlagServiceMocks(t)

	_, err := svc.Raise(adminActor(), 3, strings.Repeat("x", submission.MaxFlagReasonLen+1))
	assert.True(t, apperr.IsValidation(err))
}

func TestRaiseFlag_SubmissionNotFound(t *testing.T) {
	svc, m, _ := setupFlagServiceMocks(t)

	m.submission.EXPECT().FindByID(uint(9)).Return(submission.ReportSubmission{}, gorm.ErrRecordNotFound)

	_, err := svc.Raise(adminActor(), 9, "reason")
	assert.True(t, apperr.IsNotFound(err))
}

func TestResolveFlag_Success(t *testing.T) {
	svc, m, dispatcher := setupFlagServiceMocks(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	pinNow(t, now)

	m.flag.EXPECT().FindByID(uint(1)).Return(submission.SubmissionFlag{
		ID: 1, SubmissionID: 3, RaisedByID: 2, RaisedByName: "Rafiq", Active: true,
	}, nil)
	m.flag.EXPECT().Save(gomock.Any()).DoAndReturn(func(f *submission.SubmissionFlag) error {
		assert.False(t, f.Active)
		assert.Equal(t, now, *f.ResolvedAt)
		assert.Equal(t, "clarified in person", f.ResolutionNotes)
		return nil
	})

	f, err := svc.Resolve(adminActor(), 1, "clarified in person")
	assert.NoError(t, err)
	assert.False(t, f.Active)

	assert.Len(t, dispatcher.events, 1)
	assert.Equal(t, notify.EventFlagResolved, dispatcher.events[0].Type)
	assert.Equal(t, uint(2), dispatcher.events[0].Recipients[0].UserID)
}

func TestResolveFlag_AlreadyResolved(t *testing.T) {
	svc, m, _ := setupFlagServiceMocks(t)

	m.flag.EXPECT().FindByID(uint(1)).Return(submission.SubmissionFlag{ID: 1, Active: false}, nil)

	_, err := svc.Resolve(adminActor(), 1, "")
	assert.True(t, apperr.IsConflict(err))
}
