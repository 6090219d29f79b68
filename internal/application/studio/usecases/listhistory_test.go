package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/testutil"
	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
)

func TestListHistory(t *testing.T) {
	users := testutil.NewMockUserRepository()
	records := testutil.NewMockRecordRepository()

	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, 5)
	require.NoError(t, err)
	seeded := users.Seed(u)

	for _, theme := range []string{"First", "Second"} {
		r, err := studio.NewGenerationRecord(
			seeded.ID(), theme, vo.StyleEcommerce, "aGVsbG8=", "image/png",
			[]studio.GeneratedImage{{SRC: "data:image/png;base64,x"}})
		require.NoError(t, err)
		require.NoError(t, records.Create(context.Background(), r))
	}

	uc := NewListHistoryUseCase(users, records, testutil.NewNopLogger())

	items, err := uc.Execute(context.Background(), "sub-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Theme, "newest first")
	assert.Equal(t, "First", items[1].Theme)
	assert.Equal(t, "ecommerce", items[0].Style)
	assert.NotEmpty(t, items[0].OriginalData)
}

func TestListHistory_UnknownUser(t *testing.T) {
	uc := NewListHistoryUseCase(
		testutil.NewMockUserRepository(),
		testutil.NewMockRecordRepository(),
		testutil.NewNopLogger(),
	)

	_, err := uc.Execute(context.Background(), "nobody")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
