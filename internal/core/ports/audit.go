package ports

import (
	"context"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder accepts audit events from the request path without blocking
// it. Delivery is best effort; recording never fails a request.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
