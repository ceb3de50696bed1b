package drawupdater

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/client"
	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type Updater interface {
	// Update stores every draw published after the latest stored one and
	// returns how many draws were written.
	Update(ctx context.Context, gameType entity.GameType) (int, error)
}

type updater struct {
	drawRepo    repository.DrawRepository
	caixaClient client.CaixaClient
}

func New(drawRepo repository.DrawRepository, caixaClient client.CaixaClient) *updater {
	return &updater{drawRepo: drawRepo, caixaClient: caixaClient}
}

func (u *updater) Update(ctx context.Context, gameType entity.GameType) (int, error) {
	remote, err := u.caixaClient.GetLatest(ctx, gameType)
	if err != nil {
		common.IncCounter(common.DrawIngestionFailure, string(gameType))
		return 0, fmt.Errorf("cannot get the latest remote draw: %w", err)
	}

	var stored int64
	latest, err := u.drawRepo.GetLatest(ctx, gameType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("cannot get the latest stored draw: %w", err)
		}
	} else {
		stored = latest.SequenceNumber
	}

	// The latest draw is written again so its prize fields stay up to date.
	if remote.SequenceNumber <= stored {
		if err := u.save(ctx, remote); err != nil {
			return 0, err
		}

		return 0, nil
	}

	from := stored + 1
	if maxBackfill := int64(xcontext.Configs(ctx).Ingestion.MaxBackfill); maxBackfill > 0 &&
		remote.SequenceNumber-from+1 > maxBackfill {
		from = remote.SequenceNumber - maxBackfill + 1
		xcontext.Logger(ctx).Warnf("Backfill of %s is limited to draws from %d to %d",
			gameType, from, remote.SequenceNumber)
	}

	inserted := 0
	for seq := from; seq <= remote.SequenceNumber; seq++ {
		draw := remote
		if seq != remote.SequenceNumber {
			draw, err = u.caixaClient.GetBySequence(ctx, gameType, seq)
			if err != nil {
				common.IncCounter(common.DrawIngestionFailure, string(gameType))
				xcontext.Logger(ctx).Warnf("Cannot get draw %d of %s: %v", seq, gameType, err)
				continue
			}
		}

		if err := u.save(ctx, draw); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot save draw %d of %s: %v", seq, gameType, err)
			continue
		}

		inserted++
	}

	common.PromCounters[common.DrawsIngestedTotal].WithLabelValues(string(gameType)).Add(float64(inserted))
	return inserted, nil
}

func (u *updater) save(ctx context.Context, draw *entity.Draw) error {
	if err := lottery.ValidateDraw(draw); err != nil {
		return err
	}

	draw.ID = uuid.NewString()
	if err := u.drawRepo.Upsert(ctx, draw); err != nil {
		return fmt.Errorf("cannot upsert draw: %w", err)
	}

	return nil
}
