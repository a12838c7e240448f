package window

import "time"

type OpenWindowDTO struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

type UpdateWindowDTO struct {
	Name        *string    `json:"name" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// OverdueWindow pairs a closed-but-unmet window with its submission counts.
type OverdueWindow struct {
	Window         SubmissionWindow `json:"window"`
	ExpectedCount  int64            `json:"expected_count"`
	SubmittedCount int64            `json:"submitted_count"`
}
