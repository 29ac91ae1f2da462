package operation

import (
	"context"
)

// Store persists operation snapshots. Swap with concrete storage without
// touching the service.
type Store interface {
	Create(ctx context.Context, op Operation) error
	Get(ctx context.Context, operationID string) (Operation, error)
}
