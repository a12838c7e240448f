package notify

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventWindowOpened       EventType = "window.opened"
	EventDeadlineExtended   EventType = "window.deadline_extended"
	EventWindowOverdue      EventType = "window.overdue"
	EventSubmissionApproved EventType = "submission.approved"
	EventSubmissionRejected EventType = "submission.rejected"
	EventBulkDecision       EventType = "submission.bulk_decision"
	EventFlagRaised         EventType = "flag.raised"
	EventFlagResolved       EventType = "flag.resolved"
	EventCommentAdded       EventType = "comment.added"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Recipient identifies a delivery target. Admin recipients are addressed by
// role rather than id.
type Recipient struct {
	UserID uint   `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Admins bool   `json:"admins,omitempty"`
}

// Event is one workflow occurrence handed to the dispatcher after the state
// change that produced it has committed.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	Priority     Priority    `json:"priority"`
	Title        string      `json:"title"`
	Body         string      `json:"body"`
	SubmissionID *uint       `json:"submission_id,omitempty"`
	WindowID     *uint       `json:"window_id,omitempty"`
	TemplateID   *uint       `json:"template_id,omitempty"`
	Recipients   []Recipient `json:"recipients,omitempty"`
	OccurredAt   time.Time   `json:"occurred_at"`
}

// NewEvent stamps id, priority default and time.
func NewEvent(t EventType, title, body string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		Priority:   PriorityNormal,
		Title:      title,
		Body:       body,
		OccurredAt: time.Now(),
	}
}
