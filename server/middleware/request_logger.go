package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/lumenhq/lumen/server/internal/observability"
)

// RequestLogger attaches a request-scoped logger with a request ID and
// logs one line per completed request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := observability.NewRequestContext(logger)
			ctx := observability.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)

			err := next(c)

			status := c.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
			reqCtx.Logger.Info("request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
			)
			return err
		}
	}
}
