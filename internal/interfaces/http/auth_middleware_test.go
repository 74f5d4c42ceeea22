package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", httpiface.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(httpiface.GetUserAccountID(c))
	})
	return app
}

func TestAuthMiddleware_SinHeaderEs401(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoEs401(t *testing.T) {
	app := newProtectedApp(t)

	for _, header := range []string{"token-a-secas", "Basic abc123", "Bearer "} {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_FirmaIncorrectaEs401(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate("otro-secreto", "cuenta-1", "catalogo-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoEs401(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(testSecret, "cuenta-1", "catalogo-api", -5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoDejaLaCuentaEnLocals(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(testSecret, "cuenta-1", "catalogo-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "cuenta-1", string(body[:n]))
}
