package repository

import (
	"context"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

type MatchRecordRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the pick has already been
	// recorded for the same sequence.
	Create(ctx context.Context, data *entity.MatchRecord) error
	GetByPickID(ctx context.Context, pickID string) ([]entity.MatchRecord, error)
}

type matchRecordRepository struct{}

func NewMatchRecordRepository() *matchRecordRepository {
	return &matchRecordRepository{}
}

func (r *matchRecordRepository) Create(ctx context.Context, data *entity.MatchRecord) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *matchRecordRepository) GetByPickID(ctx context.Context, pickID string) ([]entity.MatchRecord, error) {
	var result []entity.MatchRecord
	err := xcontext.DB(ctx).
		Where("pick_id=?", pickID).
		Order("sequence_number DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
