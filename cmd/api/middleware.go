package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"taskengine-backend/pkg/config"
	"taskengine-backend/pkg/logging"
	"taskengine-backend/pkg/response"
)

// RequestLogger attaches a child logger carrying the request ID to the
// context, then logs one completion line per request. The ID is minted once
// by the requestid middleware; nothing downstream generates another.
func RequestLogger(base logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		log := base.With("request_id", requestid.Get(c))
		logging.Into(c, log)

		c.Next()

		log.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client", c.ClientIP(),
		)
	}
}

// Recovery converts a panic into a 500 envelope. The panic is logged with
// full context; the client sees only a generic message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logging.From(c).Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client", c.ClientIP(),
			"panic", fmt.Sprint(recovered),
		)
		response.Error(c, http.StatusInternalServerError, "internal server error",
			response.ErrorDetail{Type: "internal_error", Detail: "an unexpected error occurred"})
		c.Abort()
	})
}

// RateLimiter applies the configured global rate limit, Redis-backed when a
// Redis URL is configured and in-memory otherwise.
func RateLimiter(cfg *config.Config, log logging.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		log.Warn("invalid rate limit format, limiter disabled", "rate_limit", cfg.RateLimit, "error", err.Error())
		return func(c *gin.Context) { c.Next() }
	}

	var store limiter.Store
	if cfg.RedisURL != "" {
		opts, err := libredis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid redis url, falling back to memory store", "error", err.Error())
		} else {
			client := libredis.NewClient(opts)
			s, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: "taskengine:limiter"})
			if err != nil {
				log.Warn("redis limiter store unavailable, falling back to memory store", "error", err.Error())
			} else {
				store = s
			}
		}
	}
	if store == nil {
		store = memory.NewStore()
	}

	return mgin.NewMiddleware(limiter.New(store, rate))
}

// CORS mirrors the permissive policy used by the frontend dev setup.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
