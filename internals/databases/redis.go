package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"madrasa_backend/internals/configs"
)

// Redis nil berarti cache nonaktif; semua pemakai wajib cek nil.
var Redis *redis.Client

func ConnectRedis() {
	url := configs.GetEnv("REDIS_URL")
	if url == "" {
		log.Println("[INFO] REDIS_URL kosong, cache hasil ujian nonaktif")
		return
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] REDIS_URL tidak valid: %v", err)
		return
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis tidak bisa dihubungi, cache nonaktif: %v", err)
		_ = client.Close()
		return
	}
	Redis = client
	log.Println("✅ Redis connected.")
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
