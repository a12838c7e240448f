package application

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
)

// ScopeService derives the set of organizational entities a caller may see
// or act upon. Every list and act path consults it before touching data so
// the muqam/dila/zone cascade lives in exactly one place.
type ScopeService struct {
	Repos *repository.Repos
}

func NewScopeService(repos *repository.Repos) *ScopeService {
	return &ScopeService{Repos: repos}
}

// Resolve computes the scope for a caller at the given level anchored at the
// matching id. A national caller is unrestricted. A caller whose anchor id is
// missing resolves to the empty scope, never to unrestricted.
func (s *ScopeService) Resolve(level org.Level, muqamID, dilaID, zoneID *uint) (org.Scope, error) {
	switch level {
	case org.LevelNational:
		return org.Scope{Unrestricted: true}, nil

	case org.LevelZone:
		if zoneID == nil {
			return org.Scope{}, nil
		}
		dilaIDs, err := s.Repos.Org.ListDilaIDsByZone(*zoneID)
		if err != nil {
			return org.Scope{}, err
		}
		muqamIDs, err := s.Repos.Org.ListMuqamIDsByDilas(dilaIDs)
		if err != nil {
			return org.Scope{}, err
		}
		jamaatIDs, err := s.Repos.Org.ListJamaatIDsByMuqams(muqamIDs)
		if err != nil {
			return org.Scope{}, err
		}
		return org.Scope{
			ZoneIDs:   []uint{*zoneID},
			DilaIDs:   dilaIDs,
			MuqamIDs:  muqamIDs,
			JamaatIDs: jamaatIDs,
		}, nil

	case org.LevelDila:
		if dilaID == nil {
			return org.Scope{}, nil
		}
		muqamIDs, err := s.Repos.Org.ListMuqamIDsByDilas([]uint{*dilaID})
		if err != nil {
			return org.Scope{}, err
		}
		jamaatIDs, err := s.Repos.Org.ListJamaatIDsByMuqams(muqamIDs)
		if err != nil {
			return org.Scope{}, err
		}
		return org.Scope{
			DilaIDs:   []uint{*dilaID},
			MuqamIDs:  muqamIDs,
			JamaatIDs: jamaatIDs,
		}, nil

	case org.LevelMuqam:
		if muqamID == nil {
			return org.Scope{}, nil
		}
		jamaatIDs, err := s.Repos.Org.ListJamaatIDsByMuqams([]uint{*muqamID})
		if err != nil {
			return org.Scope{}, err
		}
		return org.Scope{
			MuqamIDs:  []uint{*muqamID},
			JamaatIDs: jamaatIDs,
		}, nil
	}

	return org.Scope{}, apperr.Validation("unknown organization level")
}
