package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gyt-equipos/panol-api/internal/interfaces/http"
)

func TestSwagger_SinArchivoDevuelveNil(t *testing.T) {
	h := apphttp.Swagger(filepath.Join(t.TempDir(), "swagger.json"), "Pañol API")
	assert.Nil(t, h, "sin el JSON generado no hay middleware: la API debe arrancar igual")
}

func TestSwagger_ConArchivoSeRegistraYLaAPIResponde(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Pañol API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(path, []byte(spec), 0o644))

	h := apphttp.Swagger(path, "Pañol API")
	require.NotNil(t, h, "con el JSON presente debe devolver el middleware")

	app := fiber.New()
	app.Use(h)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"con el middleware registrado el resto de las rutas sigue respondiendo")
}
