package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func newApp(routes func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	routes(app)
	return app
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp(func(app *fiber.App) {
		app.Get("/", func(c fiber.Ctx) error {
			return NewAppError(fiber.StatusBadRequest, "Validation failed", map[string]string{"email": "invalid"}, errors.New("bad"))
		})
	})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, fiber.StatusBadRequest, env.Status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.JSONEq(t, `{"email":"invalid"}`, string(env.Data))
}

func TestErrorMiddleware_HidesInternalDetails(t *testing.T) {
	app := newApp(func(app *fiber.App) {
		app.Get("/app", func(c fiber.Ctx) error {
			return NewAppError(fiber.StatusInternalServerError, "pq: relation missing", nil, errors.New("boom"))
		})
		app.Get("/plain", func(c fiber.Ctx) error { return errors.New("secret detail") })
	})

	for _, path := range []string{"/app", "/plain"} {
		status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusInternalServerError, status, path)
		assert.Equal(t, "internal server error", env.Message, path)
	}
}

func TestErrorMiddleware_FiberError(t *testing.T) {
	app := newApp(func(app *fiber.App) {
		app.Get("/", func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "") })
	})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "not found", env.Message)
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp(func(app *fiber.App) {
		app.Get("/", func(c fiber.Ctx) error { panic("kaboom") })
	})

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
		ok   bool
	}{
		"valid":       {in: "Bearer abc", want: "abc", ok: true},
		"case":        {in: "bearer  abc ", want: "abc", ok: true},
		"empty":       {in: "", ok: false},
		"no scheme":   {in: "abc", ok: false},
		"basic":       {in: "Basic abc", ok: false},
		"empty token": {in: "Bearer   ", ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := bearerTokenFromHeader(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func authApp(t *testing.T, svc jwt.Service) *fiber.App {
	t.Helper()

	auth := NewAuthMiddleware(svc)
	return newApp(func(app *fiber.App) {
		app.Get("/me", auth.Middleware(), func(c fiber.Ctx) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return fiber.ErrUnauthorized
			}
			return c.JSON(fiber.Map{"id": p.ID, "role": p.Role})
		})
		app.Get("/manager", auth.Middleware(), RequireRole(jwt.RoleManager), func(c fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})
		app.Patch("/toggle", auth.Middleware(), RequireCSRF(), func(c fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})
	})
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("test-secret", time.Hour)
	app := authApp(t, svc)

	workerID := uuid.New()
	tok, err := svc.GenerateAccessToken(workerID, jwt.RoleWorker, "Ana")
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Unauthorized", env.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		status, env := doRequest(t, app, req)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Invalid token", env.Message)
	})

	t.Run("valid token stores principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			ID   uuid.UUID `json:"id"`
			Role string    `json:"role"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, workerID, body.ID)
		assert.Equal(t, jwt.RoleWorker, body.Role)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/manager", nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		status, env := doRequest(t, app, req)
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "Forbidden", env.Message)
	})
}

func TestRequireCSRF(t *testing.T) {
	svc := jwt.NewHMACService("test-secret", time.Hour)
	app := authApp(t, svc)

	tok, err := svc.GenerateAccessToken(uuid.New(), jwt.RoleWorker, "Ana")
	require.NoError(t, err)

	newReq := func(csrf string) *http.Request {
		req := httptest.NewRequest(http.MethodPatch, "/toggle", nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		if csrf != "" {
			req.Header.Set(HeaderCSRFToken, csrf)
		}
		return req
	}

	status, env := doRequest(t, app, newReq(""))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Invalid CSRF token", env.Message)

	status, _ = doRequest(t, app, newReq(tok.CSRFToken+"x"))
	assert.Equal(t, fiber.StatusForbidden, status)

	other, err := svc.GenerateAccessToken(uuid.New(), jwt.RoleWorker, "Bo")
	require.NoError(t, err)
	status, _ = doRequest(t, app, newReq(other.CSRFToken))
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, newReq(tok.CSRFToken))
	assert.Equal(t, fiber.StatusNoContent, status)
}
