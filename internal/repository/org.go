package repository

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"gorm.io/gorm"
)

type OrgRepo interface {
	CreateZone(z *org.Zone) error
	CreateDila(d *org.Dila) error
	CreateMuqam(m *org.Muqam) error
	CreateJamaat(j *org.Jamaat) error
	GetZoneByID(id uint) (org.Zone, error)
	GetDilaByID(id uint) (org.Dila, error)
	GetMuqamByID(id uint) (org.Muqam, error)
	ListZones() ([]org.Zone, error)
	ListDilas() ([]org.Dila, error)
	ListMuqams() ([]org.Muqam, error)
	ListJamaats() ([]org.Jamaat, error)
	ListDilaIDsByZone(zoneID uint) ([]uint, error)
	ListMuqamIDsByDilas(dilaIDs []uint) ([]uint, error)
	ListJamaatIDsByMuqams(muqamIDs []uint) ([]uint, error)
	WithTx(tx *gorm.DB) OrgRepo
}

type DBOrgRepo struct {
	db *gorm.DB
}

func NewOrgRepo(db *gorm.DB) *DBOrgRepo {
	return &DBOrgRepo{db: db}
}

func (r *DBOrgRepo) CreateZone(z *org.Zone) error   { return r.db.Create(z).Error }
func (r *DBOrgRepo) CreateDila(d *org.Dila) error   { return r.db.Create(d).Error }
func (r *DBOrgRepo) CreateMuqam(m *org.Muqam) error { return r.db.Create(m).Error }
func (r *DBOrgRepo) CreateJamaat(j *org.Jamaat) error {
	return r.db.Create(j).Error
}

func (r *DBOrgRepo) GetZoneByID(id uint) (org.Zone, error) {
	var z org.Zone
	err := r.db.First(&z, id).Error
	return z, err
}

func (r *DBOrgRepo) GetDilaByID(id uint) (org.Dila, error) {
	var d org.Dila
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBOrgRepo) GetMuqamByID(id uint) (org.Muqam, error) {
	var m org.Muqam
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBOrgRepo) ListZones() ([]org.Zone, error) {
	var zones []org.Zone
	err := r.db.Order("name").Find(&zones).Error
	return zones, err
}

func (r *DBOrgRepo) ListDilas() ([]org.Dila, error) {
	var dilas []org.Dila
	err := r.db.Order("name").Find(&dilas).Error
	return dilas, err
}

func (r *DBOrgRepo) ListMuqams() ([]org.Muqam, error) {
	var muqams []org.Muqam
	err := r.db.Order("name").Find(&muqams).Error
	return muqams, err
}

func (r *DBOrgRepo) ListJamaats() ([]org.Jamaat, error) {
	var jamaats []org.Jamaat
	err := r.db.Order("name").Find(&jamaats).Error
	return jamaats, err
}

func (r *DBOrgRepo) ListDilaIDsByZone(zoneID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&org.Dila{}).Where("zone_id = ?", zoneID).Pluck("id", &ids).Error
	return ids, err
}

func (r *DBOrgRepo) ListMuqamIDsByDilas(dilaIDs []uint) ([]uint, error) {
	if len(dilaIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&org.Muqam{}).Where("dila_id IN ?", dilaIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *DBOrgRepo) ListJamaatIDsByMuqams(muqamIDs []uint) ([]uint, error) {
	if len(muqamIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&org.Jamaat{}).Where("muqam_id IN ?", muqamIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *DBOrgRepo) WithTx(tx *gorm.DB) OrgRepo {
	if tx == nil {
		return r
	}
	return &DBOrgRepo{db: tx}
}
