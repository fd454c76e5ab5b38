package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		errVal, hasErr := c.Get("error")

		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case hasErr:
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("request_id", RequestIDFrom(c.Request.Context())),
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_zalo_id", CallerFrom(c).UserZaloID),
			logger.Any("error", errVal),
		)
	}
}
