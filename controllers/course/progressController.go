package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetUserProgress gets the user's progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Get completed lesson IDs
	var completedProgress []courseModels.LessonProgress
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Select("lesson_progresses.*").
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.completed = ?", userID, true).
		Where("lessons.course_id = ? AND lessons.is_deleted = ?", courseID, false).
		Find(&completedProgress)

	completedIDs := make([]uint, len(completedProgress))
	for i, lp := range completedProgress {
		completedIDs[i] = lp.LessonID
	}

	// Include the certificate when one has been issued
	var certificate *courseModels.Certificate
	var cert courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error; err == nil {
		certificate = &cert
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":    enrollment,
		"completed_ids": completedIDs,
		"certificate":   certificate,
	})
}
