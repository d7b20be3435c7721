package details

import (
	"github.com/gofiber/fiber/v2"

	"madrasa_backend/internals/constants"
	authMiddleware "madrasa_backend/internals/middlewares/auth"
)

// writesOnly: GET/HEAD lolos, method lain wajib lewat mw
func writesOnly(mw fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead:
			return c.Next()
		}
		return mw(c)
	}
}

func adminOnly(feature string) fiber.Handler {
	return authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin(feature), constants.AdminAndAbove)
}
