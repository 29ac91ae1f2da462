package operation

import (
	"context"
	"sync"

	dErrors "vigia/pkg/domain-errors"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	operations map[string]Operation
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{operations: make(map[string]Operation)}
}

func (s *InMemoryStore) Create(_ context.Context, op Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := op.ID.String()
	if _, exists := s.operations[key]; exists {
		return dErrors.New(dErrors.CodeConflict, "operation already exists")
	}
	s.operations[key] = op
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, operationID string) (Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.operations[operationID]
	if !ok {
		return Operation{}, dErrors.New(dErrors.CodeNotFound, "operation not found")
	}
	return op, nil
}
