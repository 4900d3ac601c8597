package courseService

import (
	"errors"
	"fmt"
	courseModels "lms/models/course"
	"time"

	"gorm.io/gorm"
)

// RecordTimeSpent adds deltaSeconds to the accumulated time a user has
// spent on a lesson, creating the progress row on first interaction.
func RecordTimeSpent(db *gorm.DB, userID, lessonID uint, deltaSeconds int64) error {
	if deltaSeconds < 0 {
		return fmt.Errorf("time spent delta must be non-negative, got %d: %w", deltaSeconds, ErrValidation)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
		}
		return err
	}

	progress, err := findOrCreateLessonProgress(db, userID, lessonID)
	if err != nil {
		return err
	}

	return db.Model(&courseModels.LessonProgress{}).
		Where("id = ?", progress.ID).
		UpdateColumn("time_spent", gorm.Expr("time_spent + ?", deltaSeconds)).Error
}

// MarkLessonCompleted marks a lesson as completed for a user and recomputes
// the enrollment progress for the lesson's course. Re-completing an already
// completed lesson is a no-op.
func MarkLessonCompleted(db *gorm.DB, userID, lessonID uint) (*ProgressSummary, error) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", lessonID, false, true).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
		}
		return nil, err
	}

	progress, err := findOrCreateLessonProgress(db, userID, lessonID)
	if err != nil {
		return nil, err
	}

	if !progress.Completed {
		now := time.Now()
		err := db.Model(&courseModels.LessonProgress{}).
			Where("id = ? AND completed = ?", progress.ID, false).
			Updates(map[string]interface{}{"completed": true, "completed_at": now}).Error
		if err != nil {
			return nil, err
		}
	}

	// Recomputing is idempotent, so rerunning it for a repeated completion
	// call is harmless.
	return RecalculateProgress(db, userID, lesson.CourseID)
}

// findOrCreateLessonProgress returns the progress row for (user, lesson),
// creating it lazily. A concurrent create losing the unique-index race falls
// back to reading the winner's row.
func findOrCreateLessonProgress(db *gorm.DB, userID, lessonID uint) (*courseModels.LessonProgress, error) {
	var progress courseModels.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = courseModels.LessonProgress{UserID: userID, LessonID: lessonID}
	if err := db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error; err != nil {
				return nil, err
			}
			return &progress, nil
		}
		return nil, err
	}
	return &progress, nil
}
