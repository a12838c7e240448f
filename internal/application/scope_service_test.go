package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/repository/mock"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
)

func setupScopeServiceMocks(t *testing.T) (*ScopeService, *mock.MockOrgRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockOrg := mock.NewMockOrgRepo(ctrl)
	repos := &repository.Repos{
		Org: mockOrg,
	}
	return NewScopeService(repos), mockOrg
}

func TestResolve_National(t *testing.T) {
	svc, _ := setupScopeServiceMocks(t)

	scope, err := svc.Resolve(org.LevelNational, nil, nil, nil)
	assert.NoError(t, err)
	assert.True(t, scope.Unrestricted)
}

func TestResolve_Zone(t *testing.T) {
	svc, mockOrg := setupScopeServiceMocks(t)

	mockOrg.EXPECT().ListDilaIDsByZone(uint(1)).Return([]uint{10, 11}, nil)
	mockOrg.EXPECT().ListMuqamIDsByDilas([]uint{10, 11}).Return([]uint{20, 21, 22}, nil)
	mockOrg.EXPECT().ListJamaatIDsByMuqams([]uint{20, 21, 22}).Return([]uint{30}, nil)

	scope, err := svc.Resolve(org.LevelZone, nil, nil, ptrUint(1))
	assert.NoError(t, err)
	assert.False(t, scope.Unrestricted)
	assert.Equal(t, []uint{1}, scope.ZoneIDs)
	assert.Equal(t, []uint{10, 11}, scope.DilaIDs)
	assert.Equal(t, []uint{20, 21, 22}, scope.MuqamIDs)
	assert.Equal(t, []uint{30}, scope.JamaatIDs)
}

func TestResolve_Dila(t *testing.T) {
	svc, mockOrg := setupScopeServiceMocks(t)

	mockOrg.EXPECT().ListMuqamIDsByDilas([]uint{7}).Return([]uint{70, 71}, nil)
	mockOrg.EXPECT().ListJamaatIDsByMuqams([]uint{70, 71}).Return([]uint{700}, nil)

	scope, err := svc.Resolve(org.LevelDila, nil, ptrUint(7), nil)
	assert.NoError(t, err)
	assert.Equal(t, []uint{7}, scope.DilaIDs)
	assert.Equal(t, []uint{70, 71}, scope.MuqamIDs)
	assert.Empty(t, scope.ZoneIDs)
}

func TestResolve_Muqam(t *testing.T) {
	svc, mockOrg := setupScopeServiceMocks(t)

	mockOrg.EXPECT().ListJamaatIDsByMuqams([]uint{5}).Return([]uint{50, 51}, nil)

	scope, err := svc.Resolve(org.LevelMuqam, ptrUint(5), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []uint{5}, scope.MuqamIDs)
	assert.Equal(t, []uint{50, 51}, scope.JamaatIDs)
}

// A caller missing their anchor id collapses to the empty scope, never to
// unrestricted.
func TestResolve_MissingAnchorIsEmpty(t *testing.T) {
	svc, _ := setupScopeServiceMocks(t)

	for _, level := range []org.Level{org.LevelZone, org.LevelDila, org.LevelMuqam} {
		scope, err := svc.Resolve(level, nil, nil, nil)
		assert.NoError(t, err)
		assert.True(t, scope.Empty())
		assert.False(t, scope.Unrestricted)
	}
}

func TestResolve_UnknownLevel(t *testing.T) {
	svc, _ := setupScopeServiceMocks(t)

	_, err := svc.Resolve(org.Level("galaxy"), nil, nil, nil)
	assert.True(t, apperr.IsValidation(err))
}

func TestScopeFor_AdminIsUnrestricted(t *testing.T) {
	svc, _ := setupScopeServiceMocks(t)

	scope, err := svc.ScopeFor(Actor{ID: 1, Level: org.LevelMuqam, IsAdmin: true})
	assert.NoError(t, err)
	assert.True(t, scope.Unrestricted)
}
