// Command admin: tugas administrasi di luar HTTP (super admin pertama, reset password, migrasi, seed).
package main

import (
	"log"
	"os"

	"madrasa_backend/internals/configs"
	database "madrasa_backend/internals/databases"
)

var logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lshortfile)

func main() {
	configs.LoadEnv()

	db, err := database.Open()
	if err != nil {
		logger.Fatalf("❌ Gagal konek DB: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	cli := commandLine{db: db, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %v", err)
		}
		os.Exit(1)
	}
}
