// Package generation defines the interfaces for the external model
// collaborators: one that proposes a shoot concept and one that renders the
// individual shots. Implementations live in infrastructure; use cases only
// see these interfaces so tests can substitute deterministic fakes.
package generation

import (
	"context"

	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
)

// SourceImage is the user's uploaded product photo, carried as base64 data
// plus its mime type.
type SourceImage struct {
	Data     string
	MimeType string
}

// ConceptRequest asks the text model for a themed shot list.
type ConceptRequest struct {
	Source       SourceImage
	Category     vo.ProductCategory
	Style        vo.EditStyle
	ShotCount    int
	CustomPrompt string
	IncludeModel bool
}

// Concept is the model's proposal: a theme plus one description per shot.
type Concept struct {
	Theme string   `json:"theme"`
	Shots []string `json:"shots"`
}

// ConceptGenerator talks to the text model. Concept calls are free; credits
// are only spent when shots are rendered.
type ConceptGenerator interface {
	// IdentifyCategory classifies the product in the source image. Callers
	// fall back to the Other category when this fails.
	IdentifyCategory(ctx context.Context, src SourceImage) (vo.ProductCategory, error)

	// ProposeConcept returns a concept with exactly req.ShotCount shots.
	ProposeConcept(ctx context.Context, req ConceptRequest) (*Concept, error)
}

// ShotRequest renders one shot of a concept.
type ShotRequest struct {
	Source       SourceImage
	Description  string
	Theme        string
	Style        vo.EditStyle
	Category     vo.ProductCategory
	IncludeModel bool
}

// ImageGenerator talks to the image model. One call may yield more than one
// image; an empty result with a nil error is treated as a failure by callers.
type ImageGenerator interface {
	GenerateShot(ctx context.Context, req ShotRequest) ([]studio.GeneratedImage, error)
}
