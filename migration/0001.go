package migration

import (
	"context"

	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

// migrate0001 labels the picks saved without a label with the default label of
// their game.
func migrate0001(ctx context.Context) error {
	for _, gameType := range entity.AllGameTypes() {
		cfg, ok := lottery.ConfigOf(gameType)
		if !ok {
			continue
		}

		err := xcontext.DB(ctx).Model(&entity.SavedPick{}).
			Where("game_type=? AND label=?", gameType, "").
			Update("label", "Jogo "+cfg.Name).Error
		if err != nil {
			return err
		}
	}

	return nil
}
