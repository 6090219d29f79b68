package testutil

import (
	"context"
	"sync"

	"github.com/lumira-inc/lumira/internal/domain/subscription"
)

// MockSubscriptionRepository is a thread-safe in-memory subscription store,
// one row per user.
type MockSubscriptionRepository struct {
	mu     sync.Mutex
	nextID uint
	byUser map[uint]*subscription.Subscription

	GetErr    error
	CreateErr error
	UpdateErr error

	UpdateCalls int
}

// NewMockSubscriptionRepository creates an empty store.
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{byUser: make(map[uint]*subscription.Subscription)}
}

// Seed inserts a subscription directly, assigning an ID.
func (m *MockSubscriptionRepository) Seed(s *subscription.Subscription) *subscription.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.SetID(m.nextID)
	m.byUser[s.UserID()] = s
	return s
}

// Current returns the stored subscription for assertions.
func (m *MockSubscriptionRepository) Current(userID uint) *subscription.Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byUser[userID]
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Seed(s)
	return nil
}

func (m *MockSubscriptionRepository) GetCurrentByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byUser[userID]
	if !ok {
		return nil, subscription.ErrNotFound
	}
	return s, nil
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.byUser[s.UserID()] = s
	return nil
}
