package entity

import (
	"context"

	"github.com/loterias-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&PlanHistory{},
		&Draw{},
		&SavedPick{},
		&PickGroup{},
		&MatchRecord{},
		&Migration{},
	)
}
