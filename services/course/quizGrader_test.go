package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
)

func TestSubmitQuizAnswerCorrect(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)
	explanation := "Because 2+2=4."
	quiz := seedQuiz(t, db, lesson.ID, "4", &explanation)

	result, err := SubmitQuizAnswer(db, user.ID, quiz.ID, "4")
	require.NoError(t, err)
	require.True(t, result.IsCorrect)
	require.Equal(t, "4", result.CorrectAnswer)
	require.NotNil(t, result.Explanation)
	require.Equal(t, explanation, *result.Explanation)

	var attempts []courseModels.QuizAttempt
	require.NoError(t, db.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Find(&attempts).Error)
	require.Len(t, attempts, 1)
	require.True(t, attempts[0].IsCorrect)
	require.Equal(t, 1, attempts[0].AttemptNumber)
}

func TestSubmitQuizAnswerExactMatchOnly(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)
	quiz := seedQuiz(t, db, lesson.ID, "Paris", nil)

	// Near-misses are wrong: no case folding, trimming or coercion.
	for _, answer := range []string{"paris", " Paris", "Paris ", "PARIS", ""} {
		result, err := SubmitQuizAnswer(db, user.ID, quiz.ID, answer)
		require.NoError(t, err)
		require.False(t, result.IsCorrect, "answer %q should not match", answer)
	}

	result, err := SubmitQuizAnswer(db, user.ID, quiz.ID, "Paris")
	require.NoError(t, err)
	require.True(t, result.IsCorrect)
}

func TestSubmitQuizAnswerAppendsAttempts(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)
	quiz := seedQuiz(t, db, lesson.ID, "42", nil)

	// Repeated attempts at the same quiz are all retained.
	for _, answer := range []string{"41", "42", "42"} {
		_, err := SubmitQuizAnswer(db, user.ID, quiz.ID, answer)
		require.NoError(t, err)
	}

	var attempts []courseModels.QuizAttempt
	require.NoError(t, db.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).Order("attempt_number asc").Find(&attempts).Error)
	require.Len(t, attempts, 3)
	for i, attempt := range attempts {
		require.Equal(t, i+1, attempt.AttemptNumber)
	}
	require.False(t, attempts[0].IsCorrect)
	require.True(t, attempts[1].IsCorrect)
	require.True(t, attempts[2].IsCorrect)
}

func TestSubmitQuizAnswerQuizNotFound(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)

	result, err := SubmitQuizAnswer(db, user.ID, 9999, "anything")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, result)

	// A failed lookup must not leave an attempt row behind.
	var count int64
	require.NoError(t, db.Model(&courseModels.QuizAttempt{}).Count(&count).Error)
	require.Zero(t, count)
}
