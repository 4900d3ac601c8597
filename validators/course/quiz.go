package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizIDStr := strings.TrimSpace(c.Params("quiz_id"))
		if quizIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID is required!", nil)
		}

		// Validate QuizID is a valid integer
		quizID, err := strconv.Atoi(quizIDStr)
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Answer *string `json:"answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Answer. The answer is graded verbatim, so an empty string
		// is a legal (wrong) submission; only a missing field is rejected.
		if reqData.Answer == nil {
			errors["answer"] = "Answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuizAnswer", reqData)
		return c.Next()
	}
}
