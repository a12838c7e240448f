package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
)

// Reminder periodically sweeps for overdue submission windows and nudges the
// members who have not submitted yet. Delivery is best-effort.
type Reminder struct {
	windows    *application.WindowService
	repos      *repository.Repos
	dispatcher notify.Dispatcher
	interval   time.Duration
}

func New(windows *application.WindowService, repos *repository.Repos, dispatcher notify.Dispatcher, interval time.Duration) *Reminder {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Reminder{
		windows:    windows,
		repos:      repos,
		dispatcher: dispatcher,
		interval:   interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. The first sweep runs
// immediately.
func (r *Reminder) Start(ctx context.Context) error {
	log.Printf("Reminder started (interval: %s)", r.interval)

	r.sweep()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder stopped")
			return ctx.Err()
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Reminder) sweep() {
	overdue, err := r.windows.ListOverdue()
	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}

	for i := range overdue {
		w := overdue[i].Window
		missing := overdue[i].ExpectedCount - overdue[i].SubmittedCount

		pending, err := r.repos.User.ListSubmittersWithoutSubmission(w.TemplateID)
		if err != nil {
			log.Printf("Reminder: listing pending submitters for window %d: %v", w.ID, err)
			continue
		}

		e := notify.NewEvent(notify.EventWindowOverdue,
			fmt.Sprintf("Reporting window %q has closed", w.Name),
			fmt.Sprintf("%d expected report(s) were not submitted before %s.",
				missing, w.EndDate.Format(time.RFC1123)))
		e.Priority = notify.PriorityHigh
		e.WindowID = &w.ID
		e.TemplateID = &w.TemplateID
		e.Recipients = append(e.Recipients, notify.Recipient{Admins: true})
		for j := range pending {
			e.Recipients = append(e.Recipients, notify.Recipient{
				UserID: pending[j].ID, Name: pending[j].FullName, Email: pending[j].Email,
			})
		}
		notify.Publish(r.dispatcher, e)
	}

	if len(overdue) > 0 {
		log.Printf("Reminder: %d overdue window(s) notified", len(overdue))
	}
}
