package utils

import (
	"errors"
	"lms/database"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeProgressScheduler sets up the nightly progress reconciliation job
func InitializeProgressScheduler() {
	log.Println("[PROGRESS-SCHEDULER] Initializing progress scheduler...")

	c := cron.New()

	// Run daily at 3 AM to reconcile stored progress with derived truth
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PROGRESS-SCHEDULER] Running daily progress reconciliation...")
		ReconcileEnrollmentProgress()
	})

	c.Start()
	log.Println("[PROGRESS-SCHEDULER] Progress scheduler started - runs daily at 3 AM")
}

// ReconcileEnrollmentProgress recomputes the stored percentage for every
// active enrollment. The recompute is an idempotent overwrite, so rerunning
// it here repairs any drift from courses publishing or unpublishing lessons
// without risking double effects.
func ReconcileEnrollmentProgress() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = ?", false).Find(&enrollments).Error; err != nil {
		log.Printf("[PROGRESS-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	log.Printf("[PROGRESS-SCHEDULER] Reconciling %d enrollments", len(enrollments))

	reconciled := 0
	for _, enrollment := range enrollments {
		if _, err := courseService.RecalculateProgress(db, enrollment.UserID, enrollment.CourseID); err != nil {
			// An enrollment deleted mid-run is not worth logging
			if errors.Is(err, courseService.ErrPreconditionFailed) {
				continue
			}
			log.Printf("[PROGRESS-SCHEDULER] Error reconciling enrollment %d: %v", enrollment.ID, err)
			continue
		}
		reconciled++
	}

	log.Printf("[PROGRESS-SCHEDULER] Reconciliation finished: %d/%d enrollments", reconciled, len(enrollments))
}
