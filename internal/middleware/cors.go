package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS opens the JSON API to the configured origins. No origins means any
// origin may read it; credentials are never shared.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", "Content-Type", HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(m.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.allowedOrigins
	}
	return cors.New(cfg)
}
