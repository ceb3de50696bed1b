package repository

import (
	"context"
	"time"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

type PlanHistoryRepository interface {
	Create(ctx context.Context, data *entity.PlanHistory) error
	GetList(ctx context.Context, userID string, offset, limit int) ([]entity.PlanHistory, error)
	CountByReasonSince(ctx context.Context, reason entity.PlanChangeReason, since time.Time) (int64, error)
}

type planHistoryRepository struct{}

func NewPlanHistoryRepository() *planHistoryRepository {
	return &planHistoryRepository{}
}

func (r *planHistoryRepository) Create(ctx context.Context, data *entity.PlanHistory) error {
	return xcontext.DB(ctx).Create(data).Error
}

// GetList returns the newest changes first. An empty userID lists the changes
// of all users.
func (r *planHistoryRepository) GetList(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.PlanHistory, error) {
	tx := xcontext.DB(ctx).Preload("User")
	if userID != "" {
		tx = tx.Where("user_id=?", userID)
	}

	var result []entity.PlanHistory
	if err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *planHistoryRepository) CountByReasonSince(
	ctx context.Context, reason entity.PlanChangeReason, since time.Time,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.PlanHistory{}).
		Where("reason=? AND created_at >= ?", reason, since).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
