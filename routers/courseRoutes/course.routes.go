package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Lessons (for enrolled users)
	courseGroup.Get("/:id/lessons", middleware.JWTMiddleware, validators.GetCourseLessons(), controllers.GetCourseLessons)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetUserProgress)

	// Lesson completion and time tracking
	lessonGroup := app.Group("/lesson")
	lessonGroup.Post("/:lesson_id/complete", middleware.JWTMiddleware, validators.CompleteLesson(), controllers.CompleteLesson)
	lessonGroup.Post("/:lesson_id/time", middleware.JWTMiddleware, validators.RecordLessonTime(), controllers.RecordLessonTime)

	// Quiz submission
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/:quiz_id/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuizAnswer)

	// User dashboards
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
	userGroup.Get("/stats", middleware.JWTMiddleware, controllers.GetLearningStats)
}
