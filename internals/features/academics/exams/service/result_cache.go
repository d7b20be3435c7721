package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const resultCacheTTL = 10 * time.Minute

// ResultStore dipakai controller ujian & nilai; *ResultCache adalah implementasi Redis.
type ResultStore interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any)
	InvalidateExam(ctx context.Context, examID uuid.UUID)
}

// ResultCache: cache ranking publik di Redis. Client nil = cache mati.
type ResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{Client: client, TTL: resultCacheTTL}
}

func (rc *ResultCache) enabled() bool {
	return rc != nil && rc.Client != nil
}

// ResultCacheKey: results:<exam>:<class|all>
func ResultCacheKey(examID uuid.UUID, classID *uuid.UUID) string {
	scope := "all"
	if classID != nil {
		scope = classID.String()
	}
	return "results:" + examID.String() + ":" + scope
}

// Get mengisi dst kalau key ada; false untuk miss / error / cache mati
func (rc *ResultCache) Get(ctx context.Context, key string, dst any) bool {
	if !rc.enabled() {
		return false
	}
	raw, err := rc.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] get %s: %v", key, err)
		}
		return false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		log.Printf("[CACHE] decode %s: %v", key, err)
		return false
	}
	return true
}

func (rc *ResultCache) Set(ctx context.Context, key string, v any) {
	if !rc.enabled() {
		return
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		log.Printf("[CACHE] encode %s: %v", key, err)
		return
	}
	if err := rc.Client.Set(ctx, key, raw, rc.TTL).Err(); err != nil {
		log.Printf("[CACHE] set %s: %v", key, err)
	}
}

// InvalidateExam menghapus semua key ranking milik satu ujian
func (rc *ResultCache) InvalidateExam(ctx context.Context, examID uuid.UUID) {
	if !rc.enabled() {
		return
	}
	pattern := "results:" + examID.String() + ":*"
	iter := rc.Client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[CACHE] scan %s: %v", pattern, err)
		return
	}
	if len(keys) > 0 {
		if err := rc.Client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("[CACHE] del %s: %v", pattern, err)
		}
	}
}
