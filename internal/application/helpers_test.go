package application

import (
	"context"
	"time"

	"github.com/tanzeemhub/reports-go/internal/notify"
)

func ptrString(s string) *string { return &s }
func ptrUint(v uint) *uint       { return &v }
func ptrTime(t time.Time) *time.Time { return &t }

// captureDispatcher records dispatched events for assertions.
type captureDispatcher struct {
	events []notify.Event
}

func (d *captureDispatcher) Dispatch(_ context.Context, e notify.Event) error {
	d.events = append(d.events, e)
	return nil
}
