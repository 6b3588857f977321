package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/estoque-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "mariana"
	testIssuer    = "estoque-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y
// RequireLevel delante de un handler dummy que devuelve la identidad cargada.
func buildTestApp(minLevel string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireLevel(minLevel),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":      apphttp.GetUserID(c),
				"username":     apphttp.GetUsername(c),
				"access_level": apphttp.GetAccessLevel(c),
			})
		},
	)
	return app
}

// tokenForLevel genera un JWT con el nivel de acceso indicado.
func tokenForLevel(t *testing.T, level string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, level, testIssuer, testExpMin)
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireLevel
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireLevel_SupervisorAccedeRutaSupervisor(t *testing.T) {
	app := buildTestApp(entity.LevelSupervisor)
	resp := doRequest(t, app, tokenForLevel(t, entity.LevelSupervisor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"supervisor debe poder acceder a ruta restringida a supervisor")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"], "el middleware debe cargar el user_id en locals")
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, entity.LevelSupervisor, body["access_level"])
}

func TestRequireLevel_AdministradorAccedeRutaSupervisor(t *testing.T) {
	app := buildTestApp(entity.LevelSupervisor)
	resp := doRequest(t, app, tokenForLevel(t, entity.LevelAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un nivel superior al mínimo debe pasar")
}

func TestRequireLevel_OperadorRechazadoEnRutaSupervisor(t *testing.T) {
	app := buildTestApp(entity.LevelSupervisor)
	resp := doRequest(t, app, tokenForLevel(t, entity.LevelOperador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operador no debe acceder a ruta restringida a supervisor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(entity.LevelOperador)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin Authorization header debe responder 401")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(entity.LevelOperador)
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testUsername, entity.LevelOperador, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(entity.LevelOperador)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secreto debe rechazarse")
}
