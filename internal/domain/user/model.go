package user

import (
	"time"

	"github.com/tanzeemhub/reports-go/internal/domain/org"
)

// User is a member account. Level plus the matching anchor id place the user
// inside the hierarchy; scope resolution starts from these fields.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	FullName     string    `gorm:"size:100" json:"full_name"`
	Email        string    `gorm:"size:100" json:"email"`
	MembershipNo string    `gorm:"size:30;index" json:"membership_no"`
	Level        org.Level `gorm:"size:20;not null;default:'muqam'" json:"level"`
	MuqamID      *uint     `gorm:"index" json:"muqam_id,omitempty"`
	DilaID       *uint     `gorm:"index" json:"dila_id,omitempty"`
	ZoneID       *uint     `gorm:"index" json:"zone_id,omitempty"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanReview reports whether the user may act on submissions (approve, reject,
// flag). Muqam-level members only submit.
func (u *User) CanReview() bool {
	return u.IsAdmin || u.Level != org.LevelMuqam
}
