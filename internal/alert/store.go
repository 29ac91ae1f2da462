package alert

import "context"

// Store persists alerts through their review lifecycle. ListPending returns
// alerts still awaiting a first review decision for one notary office,
// ordered by severity then recency, both descending. Alerts under analysis
// have left the pending queue.
type Store interface {
	Create(ctx context.Context, alert Alert) error
	Get(ctx context.Context, alertID string) (Alert, error)
	Update(ctx context.Context, alert Alert) error
	ListPending(ctx context.Context, notaryID string) ([]Alert, error)
}
