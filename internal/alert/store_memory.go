package alert

import (
	"context"
	"sort"
	"sync"

	dErrors "vigia/pkg/domain-errors"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	alerts map[string]Alert
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{alerts: make(map[string]Alert)}
}

func (s *InMemoryStore) Create(_ context.Context, alert Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := alert.ID.String()
	if _, exists := s.alerts[key]; exists {
		return dErrors.New(dErrors.CodeConflict, "alert already exists")
	}
	s.alerts[key] = alert
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, alertID string) (Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alert, ok := s.alerts[alertID]
	if !ok {
		return Alert{}, dErrors.New(dErrors.CodeNotFound, "alert not found")
	}
	return alert, nil
}

func (s *InMemoryStore) Update(_ context.Context, alert Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := alert.ID.String()
	if _, exists := s.alerts[key]; !exists {
		return dErrors.New(dErrors.CodeNotFound, "alert not found")
	}
	s.alerts[key] = alert
	return nil
}

func (s *InMemoryStore) ListPending(_ context.Context, notaryID string) ([]Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []Alert
	for _, alert := range s.alerts {
		if alert.NotaryID.String() == notaryID && alert.State == StatePending {
			pending = append(pending, alert)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].Severity.Rank() != pending[j].Severity.Rank() {
			return pending[i].Severity.Rank() > pending[j].Severity.Rank()
		}
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	return pending, nil
}
