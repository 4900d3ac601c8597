package courseService

import (
	"fmt"
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// testDB opens a private in-memory database per test. TranslateError is on,
// matching production: the issuer depends on gorm.ErrDuplicatedKey.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive for the
	// whole test and serializes writes under the concurrency tests.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonProgress{},
		&courseModels.Quiz{},
		&courseModels.QuizAttempt{},
		&courseModels.Certificate{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Name: "Test Learner", Email: fmt.Sprintf("%s@example.com", t.Name())}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB) courseModels.Course {
	t.Helper()
	course := courseModels.Course{Title: "Test Course", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedLesson(t *testing.T, db *gorm.DB, courseID uint, published bool, order int) courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{
		CourseID:    courseID,
		Title:       fmt.Sprintf("Lesson %d", order),
		OrderIndex:  order,
		IsPublished: published,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return lesson
}

func seedQuiz(t *testing.T, db *gorm.DB, lessonID uint, correctAnswer string, explanation *string) courseModels.Quiz {
	t.Helper()
	quiz := courseModels.Quiz{
		LessonID:      lessonID,
		Question:      "What is the answer?",
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) courseModels.Enrollment {
	t.Helper()
	enrollment := courseModels.Enrollment{UserID: userID, CourseID: courseID, Status: "ENROLLED"}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}
