package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. extra - Optional middleware such as request metrics, which then observe recovered panics as 500s
//  4. Recover - Last, catches panics and returns 500 (wraps handlers)
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, extra ...echo.MiddlewareFunc) {
	SetupWithConfig(e, log, DefaultRecoveryConfig(), extra...)
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig, extra ...echo.MiddlewareFunc) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(extra...)
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
