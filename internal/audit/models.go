package audit

import (
	"context"
	"time"

	"alta/internal/domain"
)

// Record captures one workflow transition attempt, accepted or rejected. The
// trail is append-only: records are never updated or deleted, and idempotent
// retries still append.
type Record struct {
	Identity  domain.EntityIdentity
	Status    domain.Status
	Timestamp time.Time
}

// Store persists audit records. Implementations must be append-only.
type Store interface {
	Append(ctx context.Context, record Record) error
}
