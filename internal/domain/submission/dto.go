package submission

import (
	"time"

	"gorm.io/datatypes"
)

type SaveDraftDTO struct {
	TemplateID uint           `json:"template_id" binding:"required"`
	WindowID   *uint          `json:"window_id"`
	Responses  datatypes.JSON `json:"responses" binding:"required"`
}

type SubmitDTO struct {
	TemplateID uint           `json:"template_id" binding:"required"`
	WindowID   *uint          `json:"window_id"`
	Responses  datatypes.JSON `json:"responses" binding:"required"`
}

type ApproveDTO struct {
	Comments string `json:"comments"`
}

type RejectDTO struct {
	Reason string `json:"reason" binding:"required"`
}

type BulkDecisionDTO struct {
	SubmissionIDs []uint `json:"submission_ids" binding:"required,min=1"`
	Comments      string `json:"comments"`
	Reason        string `json:"reason"`
}

// BulkResult aggregates per-item outcomes of one bulk call. Failures never
// abort the batch; they are keyed by submission id in Errors.
type BulkResult struct {
	Requested int      `json:"requested"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

type RaiseFlagDTO struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ResolveFlagDTO struct {
	Notes string `json:"notes"`
}

type AddCommentDTO struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

type UpdateCommentDTO struct {
	Content string `json:"content" binding:"required"`
}

// ListFilter narrows submission listings. Scope intersection is applied on
// top of these by the service, never bypassed.
type ListFilter struct {
	TemplateID *uint
	WindowID   *uint
	Status     *Status
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type CommentView struct {
	ID           uint          `json:"id"`
	SubmissionID uint          `json:"submission_id"`
	ParentID     *uint         `json:"parent_id,omitempty"`
	UserID       uint          `json:"user_id"`
	AuthorName   string        `json:"author_name"`
	Content      string        `json:"content"`
	IsEdited     bool          `json:"is_edited"`
	EditedAt     *time.Time    `json:"edited_at,omitempty"`
	IsDeleted    bool          `json:"is_deleted"`
	CreatedAt    time.Time     `json:"created_at"`
	Replies      []CommentView `json:"replies,omitempty"`
}

// View renders a comment for callers, masking deleted content.
func (c *SubmissionComment) View() CommentView {
	v := CommentView{
		ID:           c.ID,
		SubmissionID: c.SubmissionID,
		ParentID:     c.ParentID,
		UserID:       c.UserID,
		AuthorName:   c.AuthorName,
		Content:      c.Content,
		IsEdited:     c.IsEdited,
		EditedAt:     c.EditedAt,
		IsDeleted:    c.IsDeleted,
		CreatedAt:    c.CreatedAt,
	}
	if c.IsDeleted {
		v.Content = DeletedPlaceholder
	}
	for i := range c.Replies {
		v.Replies = append(v.Replies, c.Replies[i].View())
	}
	return v
}
