package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Month string `json:"month" validate:"omitempty,yyyymm"`
	Start string `json:"start_time" validate:"omitempty,hhmm"`
}

func post(t *testing.T, body string) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req sampleRequest
		if ok, err := BindAndValidate(c, &req); !ok {
			return err
		}
		return JsonOK(c, "", req)
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out ErrorResponse
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestBindAndValidate(t *testing.T) {
	code, _ := post(t, `{"name":"Hifz","month":"2025-03","start_time":"07:30"}`)
	assert.Equal(t, fiber.StatusOK, code)

	code, out := post(t, `{"month":"2025-13","start_time":"24:00"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", out.ErrorCode)
	assert.Equal(t, "name is required", out.Errors["name"])
	assert.Equal(t, "month must be in YYYY-MM format", out.Errors["month"])
	assert.Equal(t, "start_time must be in HH:MM format", out.Errors["start_time"])

	code, out = post(t, `{bukan json`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "BAD_REQUEST", out.ErrorCode)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-01"))
	assert.False(t, IsValidMonth("2025-1"))
	assert.False(t, IsValidMonth("2025-00"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tajwid-dasar-kelas-1", Slugify("  Tajwîd Dasar: Kelas 1 ", 0))
	assert.Equal(t, "item", Slugify("!!!", 0))
	assert.Equal(t, "fiqh", Slugify("Fiqh-Ibadah", 4))
}

func TestCleanStrings(t *testing.T) {
	assert.Equal(t, []string{"Quran", "Fiqh"}, CleanStrings([]string{" Quran", "", "quran", "Fiqh "}))
}
