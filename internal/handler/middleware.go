package handler

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"ticket-engine/internal/model"
	"ticket-engine/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDKey = "requestID"
	tokenKey     = "token"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware writes one access log line per request to logger.
func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		requestID := c.GetString(requestIDKey)

		logger.Info().
			Str("request_id", requestID).
			Int("status", c.Writer.Status()).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("app_version", c.GetHeader("X-App-Version")).
			Str("build", c.GetHeader("X-Build-Number")).
			Bool("replayed", c.GetBool(replayedKey)).
			Dur("latency", time.Since(start)).
			Msg("HTTP Request")
	}
}

// AuthMiddleware resolves the bearer token naming the caller's wallet. Without
// requireAuth, requests lacking a token share the anonymous wallet.
func AuthMiddleware(requireAuth bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		t = strings.TrimSpace(t)
		if !ok {
			t = ""
		}

		if t == "" {
			if requireAuth {
				c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
					Message: sandbox.ErrUnauthorized.Error(),
					Code:    string(model.KindUnauthorized),
				})
				return
			}
			t = sandbox.AnonymousToken
		}

		c.Set(tokenKey, t)
		c.Next()
	}
}

// RateLimitMiddleware answers 429 once a wallet exceeds its request budget.
func RateLimitMiddleware(limiter *sandbox.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.GetString(tokenKey)) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Message: "Too many requests",
				Code:    string(model.KindRateLimit),
			})
			return
		}
		c.Next()
	}
}

const replayedKey = "idempotencyReplayed"

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyMiddleware replays the first response for a repeated
// Idempotency-Key. Keys are scoped to the wallet and the route.
func IdempotencyMiddleware(cache *sandbox.IdempotencyCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}
		scoped := c.GetString(tokenKey) + "|" + c.Request.Method + " " + c.FullPath() + "|" + key

		cached, err := cache.Begin(scoped)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusConflict, model.ErrorResponse{
				Message: err.Error(),
				Code:    string(model.KindConflict),
			})
			return
		}
		if cached != nil {
			c.Set(replayedKey, true)
			c.Header("Idempotent-Replayed", "true")
			c.Data(cached.Status, cached.Header.Get("Content-Type"), cached.Body)
			c.Abort()
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		cache.Complete(scoped, sandbox.CachedResponse{
			Status: rec.Status(),
			Header: rec.Header().Clone(),
			Body:   rec.body.Bytes(),
		})
	}
}
