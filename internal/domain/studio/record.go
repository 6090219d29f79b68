// Package studio holds the GenerationRecord aggregate: the immutable history
// entry written together with the credit debit for a successful generation.
package studio

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/shared/biztime"
)

// GeneratedImage is one output image reference, stored as a data URI the
// frontend can render directly.
type GeneratedImage struct {
	SRC string `json:"src"`
	Alt string `json:"alt"`
}

// GenerationRecord is insert-only: created once after a successful external
// generation, in the same transaction as the debit, and never updated.
type GenerationRecord struct {
	id           uint
	sid          string
	userID       uint
	theme        string
	style        vo.EditStyle
	originalData string // base64 source image
	originalMime string
	images       []GeneratedImage
	createdAt    time.Time
}

// NewGenerationRecord creates a record for a generation that produced at
// least one image. A zero-image generation must not reach this point.
func NewGenerationRecord(
	userID uint,
	theme string,
	style vo.EditStyle,
	originalData, originalMime string,
	images []GeneratedImage,
) (*GenerationRecord, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !style.IsValid() {
		return nil, fmt.Errorf("invalid edit style: %s", style)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("at least one generated image is required")
	}
	if originalData == "" {
		return nil, fmt.Errorf("original image is required")
	}

	return &GenerationRecord{
		sid:          uuid.NewString(),
		userID:       userID,
		theme:        theme,
		style:        style,
		originalData: originalData,
		originalMime: originalMime,
		images:       images,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// SetID sets the record ID after persistence.
func (r *GenerationRecord) SetID(id uint) {
	r.id = id
}

func (r *GenerationRecord) ID() uint                 { return r.id }
func (r *GenerationRecord) SID() string              { return r.sid }
func (r *GenerationRecord) UserID() uint             { return r.userID }
func (r *GenerationRecord) Theme() string            { return r.theme }
func (r *GenerationRecord) Style() vo.EditStyle      { return r.style }
func (r *GenerationRecord) OriginalData() string     { return r.originalData }
func (r *GenerationRecord) OriginalMime() string     { return r.originalMime }
func (r *GenerationRecord) Images() []GeneratedImage { return r.images }
func (r *GenerationRecord) CreatedAt() time.Time     { return r.createdAt }

// ReconstructGenerationRecord rebuilds a record from persistence.
func ReconstructGenerationRecord(
	id uint,
	sid string,
	userID uint,
	theme string,
	style vo.EditStyle,
	originalData, originalMime string,
	images []GeneratedImage,
	createdAt time.Time,
) *GenerationRecord {
	return &GenerationRecord{
		id:           id,
		sid:          sid,
		userID:       userID,
		theme:        theme,
		style:        style,
		originalData: originalData,
		originalMime: originalMime,
		images:       images,
		createdAt:    createdAt,
	}
}
