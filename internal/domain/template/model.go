package template

import (
	"time"

	"gorm.io/datatypes"
)

// ReportTemplate defines the questions a periodic report collects. Windows
// reference a template; submissions answer its questions.
type ReportTemplate struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Questions   datatypes.JSON `gorm:"type:jsonb" json:"questions"`
	Active      bool           `gorm:"default:false" json:"active"`
	CreatedByID uint           `json:"created_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
