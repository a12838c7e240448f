package submission

import (
	"time"

	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

const (
	// MaxFlagReasonLen bounds the flag reason text.
	MaxFlagReasonLen = 500
	// MaxCommentLen bounds comment content.
	MaxCommentLen = 2000
	// MaxAttachmentSize bounds a single attachment payload (10 MB).
	MaxAttachmentSize = 10 << 20
	// MaxBulkItems caps one bulk approve/reject call.
	MaxBulkItems = 100
)

// ReportSubmission is one member's answer set for a template. The submitter
// identity and org anchors are denormalized onto the row so scope filtering
// never needs a join.
type ReportSubmission struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	TemplateID      uint           `gorm:"not null;index" json:"template_id"`
	WindowID        *uint          `gorm:"index" json:"window_id,omitempty"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	SubmitterName   string         `gorm:"size:100" json:"submitter_name"`
	MembershipNo    string         `gorm:"size:30" json:"membership_no"`
	SubmitterEmail  string         `gorm:"size:100" json:"submitter_email"`
	Level           org.Level      `gorm:"size:20" json:"level"`
	MuqamID         *uint          `gorm:"index" json:"muqam_id,omitempty"`
	DilaID          *uint          `gorm:"index" json:"dila_id,omitempty"`
	ZoneID          *uint          `gorm:"index" json:"zone_id,omitempty"`
	Responses       datatypes.JSON `gorm:"type:jsonb" json:"responses"`
	Status          Status         `gorm:"size:20;not null;default:'draft';index" json:"status"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// SubmissionApproval is one immutable ledger entry. Rows are only ever
// appended; the submission's status is derived from the latest entry.
type SubmissionApproval struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	ApproverID   uint      `gorm:"not null" json:"approver_id"`
	ApproverName string    `gorm:"size:100" json:"approver_name"`
	Decision     Decision  `gorm:"size:20;not null" json:"decision"`
	Comments     string    `gorm:"type:text" json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubmissionFlag marks a submission as needing attention. A partial unique
// index keeps at most one active flag per submission.
type SubmissionFlag struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	SubmissionID    uint       `gorm:"not null;index" json:"submission_id"`
	RaisedByID      uint       `gorm:"not null" json:"raised_by_id"`
	RaisedByName    string     `gorm:"size:100" json:"raised_by_name"`
	Reason          string     `gorm:"size:500;not null" json:"reason"`
	Active          bool       `gorm:"default:true;index" json:"active"`
	ResolvedByID    *uint      `json:"resolved_by_id,omitempty"`
	ResolvedByName  string     `gorm:"size:100" json:"resolved_by_name,omitempty"`
	ResolutionNotes string     `gorm:"type:text" json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SubmissionComment is a threaded comment. Nesting is one level deep: a
// reply's ParentID must point at a top-level comment. Deletion is soft so the
// thread structure survives.
type SubmissionComment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubmissionID uint       `gorm:"not null;index" json:"submission_id"`
	ParentID     *uint      `gorm:"index" json:"parent_id,omitempty"`
	UserID       uint       `gorm:"not null" json:"user_id"`
	AuthorName   string     `gorm:"size:100" json:"author_name"`
	Content      string     `gorm:"size:2000;not null" json:"content"`
	IsEdited     bool       `gorm:"default:false" json:"is_edited"`
	EditedAt     *time.Time `json:"edited_at,omitempty"`
	IsDeleted    bool       `gorm:"default:false" json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	Replies      []SubmissionComment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

// DeletedPlaceholder replaces the content of soft-deleted comments in read
// responses.
const DeletedPlaceholder = "[comment deleted]"

// FileAttachment stores attachment metadata; the payload lives in object
// storage under ObjectKey. Attach and remove are draft-only operations.
type FileAttachment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	QuestionID   string    `gorm:"size:100;not null" json:"question_id"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	ContentType  string    `gorm:"size:100" json:"content_type"`
	Size         int64     `gorm:"not null" json:"size"`
	ObjectKey    string    `gorm:"size:100;uniqueIndex;not null" json:"-"`
	Description  string    `gorm:"size:500" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
