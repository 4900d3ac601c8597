package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	Status      string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress    int        `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
