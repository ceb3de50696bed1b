package migration

import (
	"context"
	"errors"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrators are data migrations, the version of migrators[i] is i+1. Never
// reorder or remove an item, append a new one instead.
var migrators = []func(context.Context) error{
	migrate0001,
}

// Migrate brings the schema to the latest version and then applies the data
// migrations which have not been recorded yet, each one in its own
// transaction.
func Migrate(ctx context.Context) error {
	if err := migrate0000(ctx); err != nil {
		return err
	}

	current, err := currentVersion(ctx)
	if err != nil {
		return err
	}

	for version := current + 1; version <= len(migrators); version++ {
		if err := apply(ctx, version); err != nil {
			return err
		}

		xcontext.Logger(ctx).Infof("Applied migration %04d", version)
	}

	return nil
}

func apply(ctx context.Context, version int) error {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := migrators[version-1](ctx); err != nil {
		return err
	}

	if err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error; err != nil {
		return err
	}

	xcontext.WithCommitDBTransaction(ctx)
	return nil
}

func currentVersion(ctx context.Context) (int, error) {
	var last entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").Take(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, err
	}

	return last.Version, nil
}
