package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ttkcys/milliyetciler/pkg/auth"
	"github.com/ttkcys/milliyetciler/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// captureWriter buffers the response body so it can be stored in Redis
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// ResponseCache caches GET responses of the content listing endpoints
// in Redis. The archive catalogue changes rarely, so a short TTL takes
// most of the read load off PostgreSQL.
func ResponseCache(client *redis.Client, cfg CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			// Responses for logged-in users (own lists, profile) are
			// per-user and must never be served from the shared cache.
			if _, err := r.Cookie(auth.SessionCookieName); err == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			cached, err := client.Get(r.Context(), key).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(r.Context()).
					Str("path", r.URL.Path).
					Str("cache_key", key).
					Msg("Cache hit")

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(cached)
				return
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			cw.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK {
				return
			}

			if err := client.Set(r.Context(), key, cw.body.Bytes(), cfg.TTL).Err(); err != nil {
				logger.Warn(r.Context()).
					Err(err).
					Str("cache_key", key).
					Msg("Failed to cache response")
			}
		})
	}
}

func cacheKey(r *http.Request) string {
	raw := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	sum := sha256.Sum256([]byte(raw))
	return "cache:" + hex.EncodeToString(sum[:])
}
