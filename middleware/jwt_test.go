package middleware

import (
	"net/http/httptest"
	"testing"

	"lms/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := testApp()

	token, err := GenerateJWT(42, "Test Learner", "USER", "learner@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareMalformedToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	token, err := GenerateJWT(42, "Test Learner", "USER", "learner@example.com")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	app := testApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
