package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"priming_backend/internals/constants"
)

// Keys under which the auth middleware stores token claims.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "userRole"
)

// GetUserIDFromToken reads c.Locals("user_id"); 401 when the request is anonymous.
func GetUserIDFromToken(c *fiber.Ctx) (int, error) {
	switch v := c.Locals(LocalUserID).(type) {
	case int:
		if v > 0 {
			return v, nil
		}
	case string:
		if id, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && id > 0 {
			return id, nil
		}
	}
	return 0, Unauthorized(constants.CodeAccessDenied, "Acceso denegado. Token no proporcionado.")
}

// ParamID parses a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || id <= 0 {
		return 0, MissingData("Parámetro inválido", "El parámetro "+name+" debe ser un número positivo")
	}
	return id, nil
}

// ParseBody decodes the JSON body; a malformed body is a MISSING_DATA error.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return MissingData("Cuerpo de la petición inválido", err.Error())
	}
	return nil
}
