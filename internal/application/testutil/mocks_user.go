package testutil

import (
	"context"
	"sync"

	"github.com/lumira-inc/lumira/internal/domain/user"
)

// MockUserRepository is a thread-safe in-memory user store. The conditional
// debit is atomic under the repository mutex, matching the production
// guarantee of the conditional UPDATE.
type MockUserRepository struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*user.User
	bySub  map[string]uint

	GetErr    error
	CreateErr error
	UpdateErr error
	DebitErr  error
	AddErr    error

	DebitCalls int
	AddCalls   int
}

// NewMockUserRepository creates an empty store.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		byID:  make(map[uint]*user.User),
		bySub: make(map[string]uint),
	}
}

// Seed inserts a user directly, assigning an ID.
func (m *MockUserRepository) Seed(u *user.User) *user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.SetID(m.nextID)
	m.byID[u.ID()] = u
	m.bySub[u.SubjectID()] = u.ID()
	return u
}

// Credits returns the current balance for assertions.
func (m *MockUserRepository) Credits(userID uint) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[userID]; ok {
		return u.Credits()
	}
	return 0
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Seed(u)
	return nil
}

func (m *MockUserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*user.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(subjectID)
}

func (m *MockUserRepository) GetBySubjectIDForUpdate(ctx context.Context, subjectID string) (*user.User, error) {
	return m.GetBySubjectID(ctx, subjectID)
}

func (m *MockUserRepository) UpdateVerification(ctx context.Context, userID uint, verified bool) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return user.ErrNotFound
	}
	m.byID[userID] = user.ReconstructUser(
		u.ID(), u.SubjectID(), u.Name(), u.Email(),
		verified, u.Credits(), u.Role(), u.CreatedAt(), u.UpdatedAt())
	return nil
}

func (m *MockUserRepository) DebitCredits(ctx context.Context, userID uint, amount int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DebitCalls++
	if m.DebitErr != nil {
		return 0, m.DebitErr
	}
	u, ok := m.byID[userID]
	if !ok {
		return 0, user.ErrNotFound
	}
	if u.Credits() < amount {
		return 0, user.ErrInsufficientCredits
	}
	left := u.Credits() - amount
	m.byID[userID] = user.ReconstructUser(
		u.ID(), u.SubjectID(), u.Name(), u.Email(),
		u.Verified(), left, u.Role(), u.CreatedAt(), u.UpdatedAt())
	return left, nil
}

func (m *MockUserRepository) AddCredits(ctx context.Context, userID uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls++
	if m.AddErr != nil {
		return m.AddErr
	}
	u, ok := m.byID[userID]
	if !ok {
		return user.ErrNotFound
	}
	m.byID[userID] = user.ReconstructUser(
		u.ID(), u.SubjectID(), u.Name(), u.Email(),
		u.Verified(), u.Credits()+amount, u.Role(), u.CreatedAt(), u.UpdatedAt())
	return nil
}

// snapshotLocked returns a copy so callers hold a point-in-time view, the
// same way a SELECT without a lock does.
func (m *MockUserRepository) snapshotLocked(subjectID string) (*user.User, error) {
	id, ok := m.bySub[subjectID]
	if !ok {
		return nil, user.ErrNotFound
	}
	u := m.byID[id]
	return user.ReconstructUser(
		u.ID(), u.SubjectID(), u.Name(), u.Email(),
		u.Verified(), u.Credits(), u.Role(), u.CreatedAt(), u.UpdatedAt()), nil
}
