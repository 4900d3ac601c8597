package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// LessonWithProgress represents a lesson with the user's completion state
type LessonWithProgress struct {
	courseModels.Lesson
	IsCompleted bool  `json:"is_completed"`
	TimeSpent   int64 `json:"time_spent"`
}

// GetCourseLessons lists the published lessons of a course with the user's progress
func GetCourseLessons(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated course ID
	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	result := make([]LessonWithProgress, len(lessons))
	for i, lesson := range lessons {
		result[i] = LessonWithProgress{Lesson: lesson}

		var progress courseModels.LessonProgress
		if err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&progress).Error; err == nil {
			result[i].IsCompleted = progress.Completed
			result[i].TimeSpent = progress.TimeSpent
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": result,
		"total":   len(result),
	})
}

// CompleteLesson marks a lesson as completed and recomputes course progress
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	summary, err := courseService.MarkLessonCompleted(database.Database.Db, userID, uint(lessonID))
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found or not published!", nil)
		}
		if errors.Is(err, courseService.ErrPreconditionFailed) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
	}

	// Notify collaborators only when this request actually issued the
	// certificate, never on repeats.
	if summary.CertificateIssued {
		var lesson courseModels.Lesson
		database.Database.Db.Where("id = ?", lessonID).First(&lesson)
		var course courseModels.Course
		database.Database.Db.Where("id = ?", lesson.CourseID).First(&course)
		utils.SendCertificateIssuedEmail(user.Email, user.Name, course.Title, summary.Certificate.CertificateNumber)
		utils.NotifyCertificateIssued(summary.Certificate)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", summary)
}

// RecordLessonTime adds time spent on a lesson for the current user
func RecordLessonTime(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)
	reqData := c.Locals("validatedLessonTime").(*struct {
		Seconds *int64 `json:"seconds"`
	})

	err := courseService.RecordTimeSpent(database.Database.Db, userID, uint(lessonID), *reqData.Seconds)
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		if errors.Is(err, courseService.ErrValidation) {
			return middleware.ValidationErrorResponse(c, map[string]string{"seconds": "Seconds must be a non-negative integer!"})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson time!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson time recorded successfully!", nil)
}
