package test

import (
	"context"
	"sync"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// StatusObserverStub records observed status transitions.
type StatusObserverStub struct {
	mu          sync.Mutex
	Transitions map[model.OrderStatus]int
}

// ObserveTransition accumulates order count per status.
func (s *StatusObserverStub) ObserveTransition(status model.OrderStatus, orders int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Transitions == nil {
		s.Transitions = make(map[model.OrderStatus]int)
	}
	s.Transitions[status] += orders
}

// Count returns recorded number of orders moved into status.
func (s *StatusObserverStub) Count(status model.OrderStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Transitions[status]
}
