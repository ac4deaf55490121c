package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID coacciona el parámetro de ruta a entero. Los IDs del CRM son
// enteros asignados por el repositorio; cualquier otra cosa es un 400.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
