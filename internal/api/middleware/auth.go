package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/api/metrics"
	"github.com/planwise/scheduling-api/internal/core/auth"
)

// Auth extracts the bearer token, runs it through the access policy and
// injects the resolved identity into the request context. It performs no
// role check; RBAC handles that per route.
func Auth(policy *auth.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := policy.Authorize(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenDecodesTotal.WithLabelValues(decodeResult(err)).Inc()
				return err
			}
			metrics.TokenDecodesTotal.WithLabelValues("ok").Inc()

			c.Set("email", identity.Email)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}

func decodeResult(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
