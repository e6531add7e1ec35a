package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// Swagger devuelve el middleware de Swagger UI apuntando al JSON generado, o
// nil si el archivo no está en el despliegue. contrib/swagger entra en pánico
// al registrarse sin el archivo; la API tiene que arrancar igual, solo sin UI.
func Swagger(filePath, title string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	})
}
