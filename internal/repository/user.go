package repository

import (
	"context"
	"time"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SearchUserFilter struct {
	Search string
	Plan   entity.Plan
	// Status is one of "active", "expired" or "free".
	Status string
	Now    time.Time
	Offset int
	Limit  int
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetList(ctx context.Context, filter SearchUserFilter) ([]entity.User, error)
	Count(ctx context.Context, filter SearchUserFilter) (int64, error)
	GetExpiredPro(ctx context.Context, now time.Time) ([]entity.User, error)
	CountExpiringPro(ctx context.Context, from, to time.Time) (int64, error)
	UpdatePlan(ctx context.Context, id string, plan entity.Plan, expiresAt *time.Time) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) applyFilter(ctx context.Context, filter SearchUserFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.User{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	if filter.Plan != "" {
		tx = tx.Where("plan=?", filter.Plan)
	}

	switch filter.Status {
	case "active":
		tx = tx.Where("plan=? AND (plan_expires_at IS NULL OR plan_expires_at > ?)",
			entity.PlanPro, filter.Now)
	case "expired":
		tx = tx.Where("plan=? AND plan_expires_at <= ?", entity.PlanPro, filter.Now)
	case "free":
		tx = tx.Where("plan=?", entity.PlanFree)
	}

	return tx
}

func (r *userRepository) GetList(ctx context.Context, filter SearchUserFilter) ([]entity.User, error) {
	var result []entity.User
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

func (r *userRepository) Count(ctx context.Context, filter SearchUserFilter) (int64, error) {
	var result int64
	if err := r.applyFilter(ctx, filter).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

func (r *userRepository) GetExpiredPro(ctx context.Context, now time.Time) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Where("plan=? AND plan_expires_at IS NOT NULL AND plan_expires_at <= ?", entity.PlanPro, now).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) CountExpiringPro(ctx context.Context, from, to time.Time) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Where("plan=? AND plan_expires_at > ? AND plan_expires_at <= ?", entity.PlanPro, from, to).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *userRepository) UpdatePlan(
	ctx context.Context, id string, plan entity.Plan, expiresAt *time.Time,
) error {
	return xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Updates(map[string]any{
			"plan":            plan,
			"plan_expires_at": expiresAt,
		}).Error
}
