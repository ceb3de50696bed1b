package main

import (
	"fmt"
	"os"

	"github.com/loterias-lab/backend/internal/domain/drawupdater"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/enum"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startImport(cctx *cli.Context) error {
	gameType, err := enum.ToEnum[entity.GameType](cctx.String("game"))
	if err != nil {
		return fmt.Errorf("invalid game type %s", cctx.String("game"))
	}

	f, err := os.Open(cctx.Path("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()

	result, err := drawupdater.ImportCSV(s.ctx, s.drawRepo, gameType, f)
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Imported draws of %s: %d inserted, %d skipped, %d failed",
		gameType, result.Inserted, result.Skipped, result.Failed)
	return nil
}

func (s *srv) startRefresh(cctx *cli.Context) error {
	gameTypes := entity.AllGameTypes()
	if game := cctx.String("game"); game != "" {
		gameType, err := enum.ToEnum[entity.GameType](game)
		if err != nil {
			return fmt.Errorf("invalid game type %s", game)
		}
		gameTypes = []entity.GameType{gameType}
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()
	s.loadUpdater()

	for _, gameType := range gameTypes {
		inserted, err := s.updater.Update(s.ctx, gameType)
		if err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot refresh draws of %s: %v", gameType, err)
			continue
		}

		xcontext.Logger(s.ctx).Infof("Refreshed %s: %d new draws", gameType, inserted)
	}

	return nil
}
