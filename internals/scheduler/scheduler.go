package scheduler

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"madrasa_backend/internals/configs"
	feeService "madrasa_backend/internals/features/finance/fees/service"
	salaryService "madrasa_backend/internals/features/finance/salaries/service"
	authScheduler "madrasa_backend/internals/features/users/auth/scheduler"
	helper "madrasa_backend/internals/helpers"
	"madrasa_backend/internals/helpers/dbtime"
)

// Config: jadwal cron (format 5 field, zona madrasah)
type Config struct {
	TokenCleanup string
	FeeOverdue   string
	MonthlySheet string
	FeeDueDay    int
}

func ConfigFromEnv() Config {
	return Config{
		TokenCleanup: configs.GetEnv("CRON_TOKEN_CLEANUP", "30 2 * * *"),
		FeeOverdue:   configs.GetEnv("CRON_FEE_OVERDUE", "5 0 * * *"),
		MonthlySheet: configs.GetEnv("CRON_MONTHLY_SHEET", "15 0 1 * *"),
		FeeDueDay:    configs.GetEnvInt("FEE_DUE_DAY", feeService.DefaultDueDay),
	}
}

type job struct {
	name string
	spec string
	fn   func()
}

func jobs(db *gorm.DB, cfg Config) []job {
	return []job{
		{"token-cleanup", cfg.TokenCleanup, func() { authScheduler.CleanupTokens(db) }},
		{"fee-overdue", cfg.FeeOverdue, func() { markOverdue(db) }},
		{"monthly-sheet", cfg.MonthlySheet, func() { generateMonth(db, cfg.FeeDueDay) }},
	}
}

// Register memasang semua job ke c; belum di-Start.
func Register(c *cron.Cron, db *gorm.DB, cfg Config) error {
	for _, j := range jobs(db, cfg) {
		if _, err := c.AddFunc(j.spec, j.fn); err != nil {
			return fmt.Errorf("cron %s (%q): %w", j.name, j.spec, err)
		}
		log.Printf("[CRON] %s terdaftar schedule=%q", j.name, j.spec)
	}
	return nil
}

// Start: dipanggil setelah DB siap; caller wajib Stop() saat shutdown.
func Start(db *gorm.DB) *cron.Cron {
	c := cron.New(
		cron.WithLocation(dbtime.Location()),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if err := Register(c, db, ConfigFromEnv()); err != nil {
		log.Fatalf("[CRON] %v", err)
	}
	c.Start()
	return c
}

// RunHandler: POST /api/sa/jobs/:name menjalankan job sekali (sinkron)
func RunHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		for _, j := range jobs(db, ConfigFromEnv()) {
			if j.name == name {
				log.Printf("[CRON] %s dijalankan manual", name)
				j.fn()
				return helper.JsonOK(c, "Job selesai dijalankan", fiber.Map{"job": name})
			}
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Job tidak dikenal")
	}
}

func markOverdue(db *gorm.DB) {
	n, err := feeService.MarkOverdue(db, dbtime.Today())
	if err != nil {
		log.Printf("[CRON ERROR] tandai tagihan overdue: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CRON] %d tagihan ditandai overdue", n)
	}
}

// generateMonth: tgl 1, lembar gaji + SPP bulan berjalan
func generateMonth(db *gorm.DB, dueDay int) {
	month := dbtime.CurrentMonth()

	if res, err := salaryService.GenerateSheet(db, month); err != nil {
		log.Printf("[CRON ERROR] generate gaji %s: %v", month, err)
	} else {
		log.Printf("[CRON] gaji %s: %d dibuat, %d dilewati", month, res.Created, res.Skipped)
	}

	if res, err := feeService.GenerateMonthly(db, month, dueDay); err != nil {
		log.Printf("[CRON ERROR] generate SPP %s: %v", month, err)
	} else {
		log.Printf("[CRON] SPP %s: %d dibuat, %d dilewati", month, res.Created, res.Skipped)
	}
}
