package courseService

import (
	"errors"
	"fmt"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// QuizResult is returned to the caller after grading an answer
type QuizResult struct {
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   *string `json:"explanation"`
}

// SubmitQuizAnswer grades a submitted answer against the quiz's stored
// correct answer and records the attempt. Every submission is appended to
// the attempt log, correct or not.
func SubmitQuizAnswer(db *gorm.DB, userID, quizID uint, answer string) (*QuizResult, error) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
		}
		return nil, err
	}

	// Exact equality only. No trimming, case folding or numeric coercion:
	// any normalization here would silently change pass/fail outcomes.
	isCorrect := answer == quiz.CorrectAnswer

	// Get attempt number
	var attemptCount int64
	if err := db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND quiz_id = ?", userID, quizID).Count(&attemptCount).Error; err != nil {
		return nil, err
	}

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quizID,
		Answer:        answer,
		IsCorrect:     isCorrect,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &QuizResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: quiz.CorrectAnswer,
		Explanation:   quiz.Explanation,
	}, nil
}
