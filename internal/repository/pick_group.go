package repository

import (
	"context"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PickGroupRepository interface {
	Create(ctx context.Context, data *entity.PickGroup) error
	GetByID(ctx context.Context, id string) (*entity.PickGroup, error)
	GetList(ctx context.Context, userID string, gameType entity.GameType) ([]entity.PickGroup, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type pickGroupRepository struct{}

func NewPickGroupRepository() *pickGroupRepository {
	return &pickGroupRepository{}
}

func (r *pickGroupRepository) Create(ctx context.Context, data *entity.PickGroup) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *pickGroupRepository) GetByID(ctx context.Context, id string) (*entity.PickGroup, error) {
	var result entity.PickGroup
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *pickGroupRepository) GetList(
	ctx context.Context, userID string, gameType entity.GameType,
) ([]entity.PickGroup, error) {
	tx := xcontext.DB(ctx).Where("user_id=?", userID)
	if gameType != "" {
		tx = tx.Where("game_type=?", gameType)
	}

	var result []entity.PickGroup
	if err := tx.Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pickGroupRepository) Rename(ctx context.Context, id, name string) error {
	return xcontext.DB(ctx).Model(&entity.PickGroup{}).Where("id=?", id).Update("name", name).Error
}

// Delete removes the row so that the name can be reused.
func (r *pickGroupRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Unscoped().Where("id=?", id).Delete(&entity.PickGroup{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
