package middleware

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/api/metrics"
	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

// RBAC enforces role-based access control. The decision itself is the
// policy's; this middleware only supplies the role resolved by Auth and
// the allowed set declared on the route. Denials are counted and, when a
// sink is wired, recorded on the audit trail.
func RBAC(policy *auth.Policy, audit ports.AuditSink, allowedRoles ...string) echo.MiddlewareFunc {
	if audit == nil {
		audit = ports.NopAuditSink{}
	}
	label := strings.Join(allowedRoles, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if err := policy.Require(role, allowedRoles...); err != nil {
				metrics.AuthzDenialsTotal.WithLabelValues(label).Inc()
				email, _ := c.Get("email").(string)
				audit.Enqueue(ports.AuditEvent{
					ID:         uuid.NewString(),
					Kind:       ports.AuditDenied,
					Subject:    email,
					Reason:     c.Request().Method + " " + c.Path(),
					OccurredAt: time.Now().UTC(),
				})
				return err
			}
			return next(c)
		}
	}
}
