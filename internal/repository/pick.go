package repository

import (
	"context"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PickFilter struct {
	UserID   string
	GameType entity.GameType
	Label    string
	Favorite bool
	Offset   int
	Limit    int
}

type PickCheckResult struct {
	MatchCount     int
	IsPrizeWorthy  bool
	SequenceNumber int64
}

type PickRepository interface {
	Create(ctx context.Context, data *entity.SavedPick) error
	CreateMany(ctx context.Context, data []entity.SavedPick) error
	GetByID(ctx context.Context, id string) (*entity.SavedPick, error)
	GetList(ctx context.Context, filter PickFilter) ([]entity.SavedPick, error)
	Count(ctx context.Context, filter PickFilter) (int64, error)
	GetAllByUserID(ctx context.Context, userID string) ([]entity.SavedPick, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
	UpdateCheckResult(ctx context.Context, id string, result PickCheckResult) error
	DeleteByID(ctx context.Context, userID, id string) error
	DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error)
	RenameLabel(ctx context.Context, userID string, gameType entity.GameType, from, to string) error
}

type pickRepository struct{}

func NewPickRepository() *pickRepository {
	return &pickRepository{}
}

func (r *pickRepository) Create(ctx context.Context, data *entity.SavedPick) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *pickRepository) CreateMany(ctx context.Context, data []entity.SavedPick) error {
	return xcontext.DB(ctx).CreateInBatches(data, 100).Error
}

func (r *pickRepository) GetByID(ctx context.Context, id string) (*entity.SavedPick, error) {
	var result entity.SavedPick
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *pickRepository) applyFilter(ctx context.Context, filter PickFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.SavedPick{})
	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.GameType != "" {
		tx = tx.Where("game_type=?", filter.GameType)
	}

	if filter.Label != "" {
		tx = tx.Where("label=?", filter.Label)
	}

	if filter.Favorite {
		tx = tx.Where("favorite=?", true)
	}

	return tx
}

func (r *pickRepository) GetList(ctx context.Context, filter PickFilter) ([]entity.SavedPick, error) {
	var result []entity.SavedPick
	err := r.applyFilter(ctx, filter).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pickRepository) Count(ctx context.Context, filter PickFilter) (int64, error) {
	var result int64
	if err := r.applyFilter(ctx, filter).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

func (r *pickRepository) GetAllByUserID(ctx context.Context, userID string) ([]entity.SavedPick, error) {
	var result []entity.SavedPick
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pickRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.SavedPick{}).Where("id=?", id).Updates(data).Error
}

func (r *pickRepository) UpdateCheckResult(ctx context.Context, id string, result PickCheckResult) error {
	return xcontext.DB(ctx).Model(&entity.SavedPick{}).
		Where("id=?", id).
		Updates(map[string]any{
			"checked":               true,
			"last_match_count":      result.MatchCount,
			"is_prize_worthy":       result.IsPrizeWorthy,
			"last_checked_sequence": result.SequenceNumber,
		}).Error
}

func (r *pickRepository) DeleteByID(ctx context.Context, userID, id string) error {
	tx := xcontext.DB(ctx).
		Where("id=? AND user_id=?", id, userID).
		Delete(&entity.SavedPick{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *pickRepository) DeleteByIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("id IN (?) AND user_id=?", ids, userID).
		Delete(&entity.SavedPick{})
	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}

func (r *pickRepository) RenameLabel(
	ctx context.Context, userID string, gameType entity.GameType, from, to string,
) error {
	return xcontext.DB(ctx).Model(&entity.SavedPick{}).
		Where("user_id=? AND game_type=? AND label=?", userID, gameType, from).
		Update("label", to).Error
}
