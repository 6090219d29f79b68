package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	"github.com/lumira-inc/lumira/internal/application/testutil"
	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	subvo "github.com/lumira-inc/lumira/internal/domain/subscription/valueobjects"
	"github.com/lumira-inc/lumira/internal/domain/user"
	apperrors "github.com/lumira-inc/lumira/internal/shared/errors"
)

func newConceptFixture(t *testing.T, credits int, plan subvo.PlanType) (*GenerateConceptUseCase, *testutil.MockConceptGenerator) {
	t.Helper()

	users := testutil.NewMockUserRepository()
	subs := testutil.NewMockSubscriptionRepository()
	concepts := &testutil.MockConceptGenerator{}

	u, err := user.NewUser("sub-1", "Ada", "ada@example.com", true, credits)
	require.NoError(t, err)
	seeded := users.Seed(u)

	sub, err := subscription.NewStarterSubscription(seeded.ID())
	require.NoError(t, err)
	if plan.IsPaid() {
		require.NoError(t, sub.ActivatePlan(plan, subvo.CycleMonthly))
	}
	subs.Seed(sub)

	uc := NewGenerateConceptUseCase(
		users, subs, entitlement.NewChecker(), concepts,
		testTierCosts, testutil.NewNopLogger(),
	)
	return uc, concepts
}

func conceptCommand() GenerateConceptCommand {
	return GenerateConceptCommand{
		SubjectID:  "sub-1",
		SourceData: "aGVsbG8=",
		SourceMime: "image/png",
		Style:      "ecommerce",
		Tier:       "basic",
	}
}

func TestGenerateConcept_Success(t *testing.T) {
	uc, concepts := newConceptFixture(t, 10, subvo.PlanStarter)
	concepts.Category = "Shoes & Footwear"

	res, err := uc.Execute(context.Background(), conceptCommand())
	require.NoError(t, err)

	assert.Equal(t, "Shoes & Footwear", res.Category)
	assert.Equal(t, "Minimal Studio", res.Theme)
	assert.Len(t, res.Shots, testTierCosts["basic"])
	assert.Equal(t, testTierCosts["basic"], res.Cost)
}

func TestGenerateConcept_CategoryFallback(t *testing.T) {
	uc, concepts := newConceptFixture(t, 10, subvo.PlanStarter)
	concepts.CategoryErr = assert.AnError

	res, err := uc.Execute(context.Background(), conceptCommand())
	require.NoError(t, err, "classification failure must not block the concept")
	assert.Equal(t, "Other", res.Category)
}

func TestGenerateConcept_SanitizesCustomPrompt(t *testing.T) {
	uc, concepts := newConceptFixture(t, 10, subvo.PlanStarter)

	var seen string
	concepts.ConceptFn = func(ctx context.Context, req generation.ConceptRequest) (*generation.Concept, error) {
		seen = req.CustomPrompt
		shots := make([]string, req.ShotCount)
		for i := range shots {
			shots[i] = "shot"
		}
		return &generation.Concept{Theme: "T", Shots: shots}, nil
	}

	cmd := conceptCommand()
	cmd.CustomPrompt = "<script>alert(1)</script> outdoor market"
	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "outdoor market", seen)
}

func TestGenerateConcept_ModelFailure(t *testing.T) {
	uc, concepts := newConceptFixture(t, 10, subvo.PlanStarter)
	concepts.ConceptErr = assert.AnError

	_, err := uc.Execute(context.Background(), conceptCommand())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternalFailure))
}

func TestGenerateConcept_WrongShotCountFromModel(t *testing.T) {
	uc, concepts := newConceptFixture(t, 10, subvo.PlanStarter)
	concepts.ConceptFn = func(ctx context.Context, req generation.ConceptRequest) (*generation.Concept, error) {
		return &generation.Concept{Theme: "T", Shots: []string{"only one"}}, nil
	}

	_, err := uc.Execute(context.Background(), conceptCommand())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternalFailure))
}

func TestGenerateConcept_EntitlementGate(t *testing.T) {
	uc, _ := newConceptFixture(t, 10, subvo.PlanStarter)
	cmd := conceptCommand()
	cmd.Style = "catalog"

	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
}

func TestGenerateConcept_InsufficientCredits(t *testing.T) {
	uc, _ := newConceptFixture(t, 1, subvo.PlanStarter)

	_, err := uc.Execute(context.Background(), conceptCommand())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInsufficientCredits))
}
