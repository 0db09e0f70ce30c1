package ports

import (
	"context"
	"time"
)

// Audit event kinds emitted by the auth flow.
const (
	AuditLoginSuccess = "login_success"
	AuditLoginFailure = "login_failure"
	AuditRegistered   = "registered"
	AuditDenied       = "authz_denied"
)

// AuditEvent records one security-relevant occurrence. Subject is the
// identifier the caller presented, which for failures may not correspond
// to any stored user.
type AuditEvent struct {
	ID         string
	Kind       string
	Subject    string
	Reason     string
	OccurredAt time.Time
}

// AuditSink accepts events for asynchronous persistence. Enqueue must not
// block the request path; a full sink may drop the event.
type AuditSink interface {
	Enqueue(event AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event AuditEvent) error
}

// NopAuditSink discards every event. Used in tests and as a default when
// the dispatcher is not wired.
type NopAuditSink struct{}

func (NopAuditSink) Enqueue(AuditEvent) {}
