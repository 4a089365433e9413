package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	apphttp "github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/interfaces/http"
	pkgjwt "github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "vendorsync-test"
	testExpMin    = 60
)

// buildTestApp construye una app Fiber mínima con AuthMiddleware + RequireRole
// y un handler dummy que devuelve 200 si pasa los middlewares.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_ManagerAccedeRutaManager(t *testing.T) {
	app := buildTestApp(entity.RoleManager)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleManager))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, entity.RoleManager, out["role"])
}

func TestRequireRole_VendorBloqueadoEnRutaManager(t *testing.T) {
	app := buildTestApp(entity.RoleManager)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleVendor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_StaffAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(entity.RoleManager, entity.RoleStaff)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleStaff))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SinTokenEs401(t *testing.T) {
	app := buildTestApp(entity.RoleManager)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoEs401(t *testing.T) {
	app := buildTestApp(entity.RoleManager)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaInvalidaEs401(t *testing.T) {
	app := buildTestApp(entity.RoleManager)
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, entity.RoleManager, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(entity.RoleManager, entity.RoleStaff, entity.RoleVendor)
	resp := doRequest(t, app, tokenForRole(t, "superadmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
