package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumira-inc/lumira/internal/domain/studio"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/mappers"
	"github.com/lumira-inc/lumira/internal/infrastructure/persistence/models"
	"github.com/lumira-inc/lumira/internal/shared/db"
)

type GenerationRecordRepository struct {
	db *gorm.DB
}

func NewGenerationRecordRepository(db *gorm.DB) *GenerationRecordRepository {
	return &GenerationRecordRepository{db: db}
}

func (r *GenerationRecordRepository) Create(ctx context.Context, rec *studio.GenerationRecord) error {
	model, err := mappers.GenerationRecordToModel(rec)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create generation record: %w", err)
	}

	rec.SetID(model.ID)
	return nil
}

func (r *GenerationRecordRepository) ListByUserID(ctx context.Context, userID uint) ([]*studio.GenerationRecord, error) {
	var rows []models.GenerationRecordModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation records: %w", err)
	}

	records := make([]*studio.GenerationRecord, 0, len(rows))
	for i := range rows {
		rec, err := mappers.GenerationRecordToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
