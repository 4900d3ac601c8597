package course

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress tracks a user's completion and time spent on a lesson
type LessonProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_lesson_progress_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_lesson_progress_user_lesson;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	TimeSpent   int64      `json:"time_spent" gorm:"default:0"` // accumulated seconds
	IsDeleted   bool       `gorm:"default:false"`
}
