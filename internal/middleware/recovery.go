package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const msgPanic = "Đã có lỗi xảy ra, vui lòng thử lại sau"

// Recovery turns a handler panic into the 500 envelope. Register it after
// RequestLogger so recovered requests are still logged.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			c.Set("error", fmt.Sprint(rec))
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", RequestIDFrom(c.Request.Context())),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			abort(c, http.StatusInternalServerError, msgPanic)
		}()

		c.Next()
	}
}
