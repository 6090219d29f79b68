package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
)

func testImages(n int) []GeneratedImage {
	images := make([]GeneratedImage, n)
	for i := range images {
		images[i] = GeneratedImage{SRC: "data:image/png;base64,AAAA", Alt: "Generated product image"}
	}
	return images
}

func TestNewGenerationRecord(t *testing.T) {
	r, err := NewGenerationRecord(1, "Golden Hour", vo.StyleCatalog, "BASE64", "image/png", testImages(6))
	require.NoError(t, err)

	assert.NotEmpty(t, r.SID())
	assert.Equal(t, uint(1), r.UserID())
	assert.Equal(t, "Golden Hour", r.Theme())
	assert.Len(t, r.Images(), 6)
	assert.False(t, r.CreatedAt().IsZero())
}

func TestNewGenerationRecord_RejectsEmptyImages(t *testing.T) {
	_, err := NewGenerationRecord(1, "Golden Hour", vo.StyleCatalog, "BASE64", "image/png", nil)
	assert.Error(t, err)
}

func TestNewGenerationRecord_Validation(t *testing.T) {
	_, err := NewGenerationRecord(0, "t", vo.StyleCatalog, "BASE64", "image/png", testImages(1))
	assert.Error(t, err, "missing user")

	_, err = NewGenerationRecord(1, "t", vo.EditStyle("sketch"), "BASE64", "image/png", testImages(1))
	assert.Error(t, err, "unknown style")

	_, err = NewGenerationRecord(1, "t", vo.StyleCatalog, "", "image/png", testImages(1))
	assert.Error(t, err, "missing original image")
}

func TestEditStyle(t *testing.T) {
	s, err := vo.NewEditStyle("social_media")
	require.NoError(t, err)
	assert.False(t, s.IsBaseline())
	assert.Equal(t, "Social Media", s.DisplayName())

	_, err = vo.NewEditStyle("sketch")
	assert.Error(t, err)

	assert.True(t, vo.StyleEcommerce.IsBaseline())
}

func TestShotTier(t *testing.T) {
	_, err := vo.NewShotTier("ultra")
	assert.Error(t, err)

	tier, err := vo.NewShotTier("premium")
	require.NoError(t, err)
	assert.Equal(t, vo.TierPremium, tier)
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, vo.ProductCategory("Shoes & Footwear"), vo.NormalizeCategory("Shoes & Footwear"))
	assert.Equal(t, vo.CategoryOther, vo.NormalizeCategory("Spacecraft"))
}
