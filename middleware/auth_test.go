package middleware

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"owsb-app/config"
	"owsb-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.JWTSecret = "test_secret"
	os.Exit(m.Run())
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/ping", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	app.Get("/finance", AuthMiddleware, RequireRole(models.RoleFinanceManager), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    "OW002",
		"username":   "sara",
		"role":       role,
		"session_id": "sess-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleSalesManager))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/finance", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleSalesManager))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/finance", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleFinanceManager))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleAdministratorPassesEveryGate(t *testing.T) {
	app := newAuthApp()

	req := httptest.NewRequest("GET", "/finance", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleAdministrator))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
