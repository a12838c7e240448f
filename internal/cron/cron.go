package cron

import (
	"log"
	"time"

	"github.com/tanzeemhub/reports-go/internal/application"
)

// StartCleanupTask prunes old audit rows once at startup and then daily.
func StartCleanupTask(auditService *application.AuditService, retentionDays int) {
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", retentionDays)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(retentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(retentionDays); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}
