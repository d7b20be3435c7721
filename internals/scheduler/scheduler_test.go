package scheduler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAddsAllJobs(t *testing.T) {
	c := cron.New()
	cfg := Config{
		TokenCleanup: "30 2 * * *",
		FeeOverdue:   "5 0 * * *",
		MonthlySheet: "15 0 1 * *",
		FeeDueDay:    10,
	}
	require.NoError(t, Register(c, nil, cfg))
	assert.Len(t, c.Entries(), 3)
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	c := cron.New()
	err := Register(c, nil, Config{
		TokenCleanup: "30 2 * * *",
		FeeOverdue:   "tiap hari",
		MonthlySheet: "15 0 1 * *",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fee-overdue")
}

func TestRunHandlerUnknownJob(t *testing.T) {
	app := fiber.New()
	app.Post("/jobs/:name", RunHandler(nil))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/jobs/bersih-bersih", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
