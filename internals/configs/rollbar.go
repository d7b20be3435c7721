package configs

import (
	"log"
	"os"

	"github.com/rollbar/rollbar-go"
)

// InitRollbar: ROLLBAR_TOKEN kosong → rollbar dimatikan (pemanggilan rollbar.* jadi no-op)
func InitRollbar() {
	token := GetEnv("ROLLBAR_TOKEN")
	env := GetEnv("APP_ENV", "development")
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		env = os.Getenv("RAILWAY_ENVIRONMENT")
	}

	rollbar.SetToken(token)
	rollbar.SetEnvironment(env)
	rollbar.SetCodeVersion(GetEnv("APP_VERSION", "dev"))
	if host, err := os.Hostname(); err == nil {
		rollbar.SetServerHost(host)
	}
	rollbar.SetEnabled(token != "")

	if token == "" {
		log.Println("[INFO] ROLLBAR_TOKEN kosong, error reporting nonaktif")
		return
	}
	log.Printf("✅ Rollbar aktif (env=%s)", env)
}

// FlushRollbar: tunggu antrian rollbar terkirim sebelum proses keluar
func FlushRollbar() {
	rollbar.Wait()
}
