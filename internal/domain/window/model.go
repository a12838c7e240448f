package window

import "time"

// SubmissionWindow is a half-open [StartDate, EndDate) range during which a
// template accepts submissions. Windows are deactivated, never deleted.
type SubmissionWindow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TemplateID  uint      `gorm:"not null;index" json:"template_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedByID uint      `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOpen reports whether the window accepts submissions at t.
func (w *SubmissionWindow) IsOpen(t time.Time) bool {
	return w.Active && !t.Before(w.StartDate) && t.Before(w.EndDate)
}

// Overlaps reports whether two half-open ranges intersect. Covers all three
// cases: either end inside the other range, or full containment.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
