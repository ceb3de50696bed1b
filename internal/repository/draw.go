package repository

import (
	"context"
	"fmt"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DrawRepository interface {
	Create(ctx context.Context, data *entity.Draw) error
	// Upsert inserts the draw or refreshes the prize fields of the existing one.
	Upsert(ctx context.Context, data *entity.Draw) error
	GetBySequence(ctx context.Context, gameType entity.GameType, seq int64) (*entity.Draw, error)
	GetLatest(ctx context.Context, gameType entity.GameType) (*entity.Draw, error)
	// GetList returns draws from the newest to the oldest.
	GetList(ctx context.Context, gameType entity.GameType, offset, limit int) ([]entity.Draw, error)
	// GetAll returns every draw of the game type from the oldest to the newest.
	GetAll(ctx context.Context, gameType entity.GameType) ([]entity.Draw, error)
	GetByNumber(ctx context.Context, gameType entity.GameType, number, limit int) ([]entity.Draw, error)
	Count(ctx context.Context, gameType entity.GameType) (int64, error)
	Delete(ctx context.Context, gameType entity.GameType, seq int64) error
}

type drawRepository struct{}

func NewDrawRepository() *drawRepository {
	return &drawRepository{}
}

func (r *drawRepository) Create(ctx context.Context, data *entity.Draw) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *drawRepository) Upsert(ctx context.Context, data *entity.Draw) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_type"}, {Name: "sequence_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"accumulated",
			"accumulated_amount",
			"estimated_next_prize",
			"next_draw_date",
			"updated_at",
		}),
	}).Create(data).Error
}

func (r *drawRepository) GetBySequence(
	ctx context.Context, gameType entity.GameType, seq int64,
) (*entity.Draw, error) {
	var result entity.Draw
	err := xcontext.DB(ctx).
		Take(&result, "game_type=? AND sequence_number=?", gameType, seq).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *drawRepository) GetLatest(ctx context.Context, gameType entity.GameType) (*entity.Draw, error) {
	var result entity.Draw
	err := xcontext.DB(ctx).
		Where("game_type=?", gameType).
		Order("sequence_number DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *drawRepository) GetList(
	ctx context.Context, gameType entity.GameType, offset, limit int,
) ([]entity.Draw, error) {
	var result []entity.Draw
	err := xcontext.DB(ctx).
		Where("game_type=?", gameType).
		Order("sequence_number DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *drawRepository) GetAll(ctx context.Context, gameType entity.GameType) ([]entity.Draw, error) {
	var result []entity.Draw
	err := xcontext.DB(ctx).
		Where("game_type=?", gameType).
		Order("sequence_number ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetByNumber matches the JSON encoding of the number arrays, which is written
// without spaces by entity.Array.
func (r *drawRepository) GetByNumber(
	ctx context.Context, gameType entity.GameType, number, limit int,
) ([]entity.Draw, error) {
	var result []entity.Draw
	err := xcontext.DB(ctx).
		Where("game_type=?", gameType).
		Where(gorm.Expr("(?) OR (?)",
			containsNumber("numbers", number),
			containsNumber("secondary_numbers", number),
		)).
		Order("sequence_number DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *drawRepository) Count(ctx context.Context, gameType entity.GameType) (int64, error) {
	tx := xcontext.DB(ctx).Model(&entity.Draw{})
	if gameType != "" {
		tx = tx.Where("game_type=?", gameType)
	}

	var result int64
	if err := tx.Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

func (r *drawRepository) Delete(ctx context.Context, gameType entity.GameType, seq int64) error {
	tx := xcontext.DB(ctx).Unscoped().
		Where("game_type=? AND sequence_number=?", gameType, seq).
		Delete(&entity.Draw{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func containsNumber(column string, number int) clause.Expr {
	return gorm.Expr(
		fmt.Sprintf("%[1]s = ? OR %[1]s LIKE ? OR %[1]s LIKE ? OR %[1]s LIKE ?", column),
		fmt.Sprintf("[%d]", number),
		fmt.Sprintf("[%d,%%", number),
		fmt.Sprintf("%%,%d,%%", number),
		fmt.Sprintf("%%,%d]", number),
	)
}
