package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/lumira-inc/lumira/internal/domain/studio"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/models"
)

func GenerationRecordToModel(r *studio.GenerationRecord) (*models.GenerationRecordModel, error) {
	images, err := json.Marshal(r.Images())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal images: %w", err)
	}

	return &models.GenerationRecordModel{
		ID:           r.ID(),
		SID:          r.SID(),
		UserID:       r.UserID(),
		Theme:        r.Theme(),
		Style:        r.Style().String(),
		OriginalData: r.OriginalData(),
		OriginalMime: r.OriginalMime(),
		Images:       images,
		CreatedAt:    r.CreatedAt(),
	}, nil
}

func GenerationRecordToDomain(model *models.GenerationRecordModel) (*studio.GenerationRecord, error) {
	style, err := vo.NewEditStyle(model.Style)
	if err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	var images []studio.GeneratedImage
	if err := json.Unmarshal(model.Images, &images); err != nil {
		return nil, fmt.Errorf("failed to unmarshal images: %w", err)
	}

	return studio.ReconstructGenerationRecord(
		model.ID,
		model.SID,
		model.UserID,
		model.Theme,
		style,
		model.OriginalData,
		model.OriginalMime,
		images,
		model.CreatedAt,
	), nil
}
