package routes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priming_backend/internals/configs"
	"priming_backend/internals/constants"
	authHelper "priming_backend/internals/features/users/auth/helper"
	helper "priming_backend/internals/helpers"
	"priming_backend/internals/helpers/dbtest"
	"priming_backend/internals/middlewares"
	routeDetails "priming_backend/internals/route/details"
)

// newApp mounts every route over a mock database that expects no queries,
// so only requests rejected before the service layer may be sent.
func newApp(t *testing.T) (*fiber.App, *authHelper.TokenService) {
	db, _ := dbtest.New(t)
	tokens := authHelper.NewTokenService("route-secret", time.Hour)
	cfg := &configs.Config{AppEnv: "test", CorsOrigin: "*"}

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler(false)})
	SetupRoutes(app, cfg, routeDetails.Deps{
		DB:     db,
		Hasher: authHelper.NewPasswordHasher(4),
		Tokens: tokens,
	})
	return app, tokens
}

func send(t *testing.T, app *fiber.App, method, path, token, body string) (int, helper.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out helper.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestStatusIsPublic(t *testing.T) {
	app, _ := newApp(t)
	status, _ := send(t, app, "GET", "/api/status", "", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestLoginSkipsAuthMiddleware(t *testing.T) {
	app, _ := newApp(t)
	status, body := send(t, app, "POST", "/api/login", "", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constants.CodeMissingCredentials, body.Code)
}

func TestProtectedRouteNeedsToken(t *testing.T) {
	app, _ := newApp(t)
	status, body := send(t, app, "GET", "/api/perfil", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.CodeAccessDenied, body.Code)
}

func TestGatesPerGroup(t *testing.T) {
	app, tokens := newApp(t)
	issue := func(role string) string {
		tok, err := tokens.Issue(1, role)
		require.NoError(t, err)
		return tok
	}

	cases := []struct {
		name, method, path, role string
		wantCode                 int
	}{
		{"users list is admin only", "GET", "/api/users", constants.RoleEvaluator, constants.CodeAccessDenied},
		{"evaluator area rejects child", "GET", "/api/evaluador/ninos", constants.RoleChild, constants.CodeNotEvaluator},
		{"survey oversight is admin only", "GET", "/api/encuestas/admin/usuario/9", constants.RoleEvaluator, constants.CodeAccessDenied},
		{"child area rejects evaluator", "GET", "/api/nino/perfil", constants.RoleEvaluator, constants.CodeAccessDenied},
		{"games reject unknown role", "GET", "/api/juegos", "invitado", constants.CodeAccessDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := send(t, app, tc.method, tc.path, issue(tc.role), "")
			assert.Equal(t, fiber.StatusForbidden, status)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
