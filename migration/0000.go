package migration

import (
	"context"

	"github.com/loterias-lab/backend/internal/entity"
)

// migrate0000 creates or updates every table to the latest schema.
func migrate0000(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
