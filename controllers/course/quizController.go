package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuizAnswer submits and grades a quiz answer
func SubmitQuizAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)
	reqData := c.Locals("validatedQuizAnswer").(*struct {
		Answer *string `json:"answer"`
	})

	result, err := courseService.SubmitQuizAnswer(database.Database.Db, userID, uint(quizID), *reqData.Answer)
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", result)
}
