package course

import "gorm.io/gorm"

// Quiz represents a question attached to a lesson
type Quiz struct {
	gorm.Model
	LessonID      uint    `json:"lesson_id" gorm:"index;not null"`
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   *string `json:"explanation"`
	IsDeleted     bool    `gorm:"default:false"`
}

// QuizAttempt represents a student's attempt at answering a quiz.
// Attempts are append-only: rows are never updated or deleted.
type QuizAttempt struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Answer        string `json:"answer"`
	IsCorrect     bool   `json:"is_correct" gorm:"default:false"`
	AttemptNumber int    `json:"attempt_number" gorm:"default:1"`
}
