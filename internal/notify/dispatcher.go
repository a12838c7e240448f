package notify

import (
	"context"
	"log"
)

// Dispatcher delivers workflow events. Implementations run after the
// triggering transaction has committed; their failures must never surface as
// operation failures to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Event) error
}

// LogDispatcher writes events to the process log. It is the default delivery
// path and the fallback when no push channel is configured.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, e Event) error {
	log.Printf("[notify] %s priority=%s recipients=%d %s", e.Type, e.Priority, len(e.Recipients), e.Title)
	return nil
}

// Multi fans out to several dispatchers, collecting nothing: a failing
// channel is logged and skipped so the others still deliver.
type Multi []Dispatcher

func (m Multi) Dispatch(ctx context.Context, e Event) error {
	for _, d := range m {
		if err := d.Dispatch(ctx, e); err != nil {
			log.Printf("[notify] dispatch %s failed: %v", e.Type, err)
		}
	}
	return nil
}

// Publish is the helper services call after commit. Any dispatch error is
// logged and swallowed here so callers never see it.
func Publish(d Dispatcher, e Event) {
	if d == nil {
		return
	}
	if err := d.Dispatch(context.Background(), e); err != nil {
		log.Printf("[notify] dropping %s event: %v", e.Type, err)
	}
}
