package courseService

import (
	"errors"
	"fmt"
	courseModels "lms/models/course"
	"time"

	"gorm.io/gorm"
)

// ProgressSummary describes the state of an enrollment after a recompute
type ProgressSummary struct {
	Progress          int                       `json:"progress"`
	CompletedLessons  int64                     `json:"completed_lessons"`
	TotalLessons      int64                     `json:"total_lessons"`
	Certificate       *courseModels.Certificate `json:"certificate,omitempty"`
	CertificateIssued bool                      `json:"certificate_issued"` // true when this call created the certificate
}

// RecalculateProgress recomputes the completion percentage for the user's
// enrollment from durable state and overwrites the stored value. The
// computation is a pure function of its inputs, so concurrent recomputes
// converge and redundant calls are safe. Reaching 100 triggers certificate
// issuance.
func RecalculateProgress(db *gorm.DB, userID, courseID uint) (*ProgressSummary, error) {
	var totalLessons int64
	err := db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Count(&totalLessons).Error
	if err != nil {
		return nil, err
	}

	// Only completions of currently published lessons count, so the
	// numerator and denominator always use the same lesson set.
	var completedLessons int64
	err = db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.completed = ?", userID, true).
		Where("lessons.course_id = ? AND lessons.is_deleted = ? AND lessons.is_published = ?", courseID, false, true).
		Count(&completedLessons).Error
	if err != nil {
		return nil, err
	}

	// Round half up in integer math. A course with no published lessons
	// has zero progress.
	progress := 0
	if totalLessons > 0 {
		progress = int((200*completedLessons + totalLessons) / (2 * totalLessons))
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no enrollment for user %d in course %d: %w", userID, courseID, ErrPreconditionFailed)
		}
		return nil, err
	}

	updates := map[string]interface{}{"progress": progress}
	if progress >= 100 {
		updates["status"] = "COMPLETED"
		if enrollment.CompletedAt == nil {
			updates["completed_at"] = time.Now()
		}
	} else if progress > 0 {
		updates["status"] = "IN_PROGRESS"
	}

	if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
		return nil, err
	}

	summary := &ProgressSummary{
		Progress:         progress,
		CompletedLessons: completedLessons,
		TotalLessons:     totalLessons,
	}

	if progress >= 100 {
		cert, issued, err := IssueCertificate(db, userID, courseID, 100)
		if err != nil {
			return nil, err
		}
		summary.Certificate = cert
		summary.CertificateIssued = issued
	}

	return summary, nil
}
