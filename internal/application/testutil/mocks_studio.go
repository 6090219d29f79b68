package testutil

import (
	"context"
	"sync"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
)

// MockRecordRepository is a thread-safe in-memory generation-record store.
type MockRecordRepository struct {
	mu      sync.Mutex
	records []*studio.GenerationRecord

	CreateErr error
	ListErr   error
}

// NewMockRecordRepository creates an empty store.
func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

// Count returns the number of stored records.
func (m *MockRecordRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func (m *MockRecordRepository) Create(ctx context.Context, r *studio.GenerationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	r.SetID(uint(len(m.records) + 1))
	m.records = append(m.records, r)
	return nil
}

func (m *MockRecordRepository) ListByUserID(ctx context.Context, userID uint) ([]*studio.GenerationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []*studio.GenerationRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].UserID() == userID {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

// MockImageGenerator renders fake shots. By default every shot yields one
// image; set GenerateFn for per-call behavior or Err to fail everything.
type MockImageGenerator struct {
	mu    sync.Mutex
	calls int

	GenerateFn func(ctx context.Context, req generation.ShotRequest) ([]studio.GeneratedImage, error)
	Err        error
}

// Calls returns how many shots were requested.
func (m *MockImageGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockImageGenerator) GenerateShot(ctx context.Context, req generation.ShotRequest) ([]studio.GeneratedImage, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return []studio.GeneratedImage{{SRC: "data:image/png;base64,fake", Alt: req.Description}}, nil
}

// MockConceptGenerator answers concept requests with canned data.
type MockConceptGenerator struct {
	Category    vo.ProductCategory
	CategoryErr error

	ConceptFn  func(ctx context.Context, req generation.ConceptRequest) (*generation.Concept, error)
	ConceptErr error
}

func (m *MockConceptGenerator) IdentifyCategory(ctx context.Context, src generation.SourceImage) (vo.ProductCategory, error) {
	if m.CategoryErr != nil {
		return "", m.CategoryErr
	}
	if m.Category == "" {
		return vo.CategoryOther, nil
	}
	return m.Category, nil
}

func (m *MockConceptGenerator) ProposeConcept(ctx context.Context, req generation.ConceptRequest) (*generation.Concept, error) {
	if m.ConceptErr != nil {
		return nil, m.ConceptErr
	}
	if m.ConceptFn != nil {
		return m.ConceptFn(ctx, req)
	}
	shots := make([]string, req.ShotCount)
	for i := range shots {
		shots[i] = "studio shot"
	}
	return &generation.Concept{Theme: "Minimal Studio", Shots: shots}, nil
}
