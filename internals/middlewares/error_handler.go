package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rollbar/rollbar-go"

	helper "madrasa_backend/internals/helpers"
)

// ErrorHandler dipasang di fiber.Config: semua error handler jadi JSON seragam.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		msg = fe.Message
	case helper.IsNotFound(err):
		code, msg = fiber.StatusNotFound, "Data tidak ditemukan"
	case helper.IsUniqueViolation(err):
		code, msg = fiber.StatusConflict, "Data sudah ada (duplikat)"
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		rollbar.Error(err, map[string]interface{}{
			"method": c.Method(),
			"path":   c.OriginalURL(),
			"reqid":  c.Locals("reqid"),
		})
	}
	return helper.JsonError(c, code, msg)
}
