package application

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"gorm.io/gorm"
)

// OrgService is thin directory CRUD for the hierarchy; the interesting logic
// lives in ScopeService.
type OrgService struct {
	Repos *repository.Repos
}

func NewOrgService(repos *repository.Repos) *OrgService {
	return &OrgService{Repos: repos}
}

func (s *OrgService) CreateZone(input org.CreateZoneDTO) (*org.Zone, error) {
	z := &org.Zone{Name: input.Name, Code: input.Code}
	return z, s.Repos.Org.CreateZone(z)
}

func (s *OrgService) CreateDila(input org.CreateDilaDTO) (*org.Dila, error) {
	if _, err := s.Repos.Org.GetZoneByID(input.ZoneID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("zone not found")
		}
		return nil, err
	}
	d := &org.Dila{ZoneID: input.ZoneID, Name: input.Name, Code: input.Code}
	return d, s.Repos.Org.CreateDila(d)
}

func (s *OrgService) CreateMuqam(input org.CreateMuqamDTO) (*org.Muqam, error) {
	if _, err := s.Repos.Org.GetDilaByID(input.DilaID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("dila not found")
		}
		return nil, err
	}
	m := &org.Muqam{DilaID: input.DilaID, Name: input.Name, Code: input.Code}
	return m, s.Repos.Org.CreateMuqam(m)
}

func (s *OrgService) CreateJamaat(input org.CreateJamaatDTO) (*org.Jamaat, error) {
	if _, err := s.Repos.Org.GetMuqamByID(input.MuqamID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("muqam not found")
		}
		return nil, err
	}
	j := &org.Jamaat{MuqamID: input.MuqamID, Name: input.Name, Code: input.Code}
	return j, s.Repos.Org.CreateJamaat(j)
}

func (s *OrgService) ListZones() ([]org.Zone, error)     { return s.Repos.Org.ListZones() }
func (s *OrgService) ListDilas() ([]org.Dila, error)     { return s.Repos.Org.ListDilas() }
func (s *OrgService) ListMuqams() ([]org.Muqam, error)   { return s.Repos.Org.ListMuqams() }
func (s *OrgService) ListJamaats() ([]org.Jamaat, error) { return s.Repos.Org.ListJamaats() }
