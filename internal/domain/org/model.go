package org

import "time"

// Level is the position of a caller (or a submission) inside the hierarchy.
type Level string

const (
	LevelMuqam    Level = "muqam"
	LevelDila     Level = "dila"
	LevelZone     Level = "zone"
	LevelNational Level = "national"
)

func (l Level) Valid() bool {
	switch l {
	case LevelMuqam, LevelDila, LevelZone, LevelNational:
		return true
	}
	return false
}

// Zone is the top organizational unit.
type Zone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:20;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dila groups muqams under a zone.
type Dila struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ZoneID    uint      `gorm:"not null;index" json:"zone_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:20;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Muqam groups jamaats under a dila.
type Muqam struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DilaID    uint      `gorm:"not null;index" json:"dila_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:20;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Jamaat is the local unit mapped into a muqam.
type Jamaat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MuqamID   uint      `gorm:"not null;index" json:"muqam_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:20;uniqueIndex" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
