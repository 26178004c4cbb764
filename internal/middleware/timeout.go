package middleware

import (
	"context"
	stderrors "errors"
	"time"

	"rental-ops/internal/errors"
	"rental-ops/internal/handlers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestTimeout bounds the request context with echo's ContextTimeout. Handlers that
// return the deadline error get SYSTEM_008 unless they already wrote a response.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	if timeout <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{
		Timeout: timeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if stderrors.Is(err, context.DeadlineExceeded) && !c.Response().Committed {
				return handlers.SendError(c, errors.SystemRequestTimeout)
			}
			return err
		},
	})
}
