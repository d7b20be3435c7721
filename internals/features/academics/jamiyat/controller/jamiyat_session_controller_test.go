package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
)

func TestGenerateScheduleRejectsWeeksOutOfRange(t *testing.T) {
	app := fiber.New()
	app.Post("/groups/:id/schedule", NewJamiyatController(testdb.New(t)).GenerateSchedule)

	for _, q := range []string{"weeks=53", "weeks=0", "weeks=abc", "weeks=-2"} {
		req := httptest.NewRequest("POST", "/groups/"+uuid.NewString()+"/schedule?"+q, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
	}
}
