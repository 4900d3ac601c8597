package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetLearningStats returns aggregate learning activity for the current user
func GetLearningStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db

	var totalTimeSpent int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(time_spent), 0)").Scan(&totalTimeSpent)

	var completedTotal int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completedTotal)

	var completedToday int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND completed = ? AND completed_at >= ?", userID, true, now.BeginningOfDay()).
		Count(&completedToday)

	var completedThisWeek int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND completed = ? AND completed_at >= ?", userID, true, now.BeginningOfWeek()).
		Count(&completedThisWeek)

	var certificateCount int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ?", userID).Count(&certificateCount)

	var quizAttempts int64
	db.Model(&courseModels.QuizAttempt{}).Where("user_id = ?", userID).Count(&quizAttempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning stats fetched successfully!", fiber.Map{
		"total_time_spent":    totalTimeSpent,
		"lessons_completed":   completedTotal,
		"completed_today":     completedToday,
		"completed_this_week": completedThisWeek,
		"certificates_earned": certificateCount,
		"quiz_attempts":       quizAttempts,
	})
}
