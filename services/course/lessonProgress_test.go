package courseService

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
)

func TestRecordTimeSpentAccumulates(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)

	require.NoError(t, RecordTimeSpent(db, user.ID, lesson.ID, 30))
	require.NoError(t, RecordTimeSpent(db, user.ID, lesson.ID, 45))
	require.NoError(t, RecordTimeSpent(db, user.ID, lesson.ID, 0))

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	require.Equal(t, int64(75), progress.TimeSpent)
	require.False(t, progress.Completed)
}

func TestRecordTimeSpentRejectsNegativeDelta(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)

	require.NoError(t, RecordTimeSpent(db, user.ID, lesson.ID, 60))

	err := RecordTimeSpent(db, user.ID, lesson.ID, -5)
	require.ErrorIs(t, err, ErrValidation)

	// State unchanged after the rejected delta
	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	require.Equal(t, int64(60), progress.TimeSpent)
}

func TestRecordTimeSpentLessonNotFound(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)

	err := RecordTimeSpent(db, user.ID, 9999, 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkLessonCompletedIdempotent(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lessonA := seedLesson(t, db, course.ID, true, 0)
	seedLesson(t, db, course.ID, true, 1)
	seedEnrollment(t, db, user.ID, course.ID)

	first, err := MarkLessonCompleted(db, user.ID, lessonA.ID)
	require.NoError(t, err)
	require.Equal(t, 50, first.Progress)

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessonA.ID).First(&progress).Error)
	require.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)
	completedAt := *progress.CompletedAt

	// Completing the same lesson again is a no-op with the same end state
	second, err := MarkLessonCompleted(db, user.ID, lessonA.ID)
	require.NoError(t, err)
	require.Equal(t, 50, second.Progress)

	var rows []courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessonA.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.True(t, rows[0].Completed)
	require.WithinDuration(t, completedAt, *rows[0].CompletedAt, 0)
}

func TestMarkLessonCompletedUnpublishedLesson(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	draft := seedLesson(t, db, course.ID, false, 0)
	seedEnrollment(t, db, user.ID, course.ID)

	_, err := MarkLessonCompleted(db, user.ID, draft.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkLessonCompletedPreservesTimeSpent(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db)
	lesson := seedLesson(t, db, course.ID, true, 0)
	seedEnrollment(t, db, user.ID, course.ID)

	require.NoError(t, RecordTimeSpent(db, user.ID, lesson.ID, 120))

	_, err := MarkLessonCompleted(db, user.ID, lesson.ID)
	require.NoError(t, err)

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	require.True(t, progress.Completed)
	require.Equal(t, int64(120), progress.TimeSpent)
}
