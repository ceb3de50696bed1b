package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const maxBatchPicks = 1000

type PickDomain interface {
	Save(context.Context, *model.SavePickRequest) (*model.SavePickResponse, error)
	SaveMany(context.Context, *model.SavePicksRequest) (*model.SavePicksResponse, error)
	GetList(context.Context, *model.GetListPickRequest) (*model.GetListPickResponse, error)
	Get(context.Context, *model.GetPickRequest) (*model.GetPickResponse, error)
	Update(context.Context, *model.UpdatePickRequest) (*model.UpdatePickResponse, error)
	Delete(context.Context, *model.DeletePickRequest) (*model.DeletePickResponse, error)
	DeleteMany(context.Context, *model.DeletePicksRequest) (*model.DeletePicksResponse, error)
	GetHistory(context.Context, *model.GetPickHistoryRequest) (*model.GetPickHistoryResponse, error)
	Generate(context.Context, *model.GeneratePickRequest) (*model.GeneratePickResponse, error)
	Check(context.Context, *model.CheckPickRequest) (*model.CheckPickResponse, error)
	CheckAll(context.Context, *model.CheckAllPicksRequest) (*model.CheckAllPicksResponse, error)
}

type pickDomain struct {
	pickRepo        repository.PickRepository
	drawRepo        repository.DrawRepository
	matchRecordRepo repository.MatchRecordRepository
	notifier        *common.Notifier
}

func NewPickDomain(
	pickRepo repository.PickRepository,
	drawRepo repository.DrawRepository,
	matchRecordRepo repository.MatchRecordRepository,
	notifier *common.Notifier,
) *pickDomain {
	return &pickDomain{
		pickRepo:        pickRepo,
		drawRepo:        drawRepo,
		matchRecordRepo: matchRecordRepo,
		notifier:        notifier,
	}
}

func (d *pickDomain) Save(ctx context.Context, req *model.SavePickRequest) (*model.SavePickResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	pick, err := newSavedPick(ctx, gameType, lottery.Pick{
		Numbers:      req.Numbers,
		Clovers:      req.Clovers,
		LuckyMonth:   req.LuckyMonth,
		FavoriteTeam: req.FavoriteTeam,
	}, req.Label)
	if err != nil {
		return nil, err
	}
	pick.Notes = req.Notes

	if err := d.pickRepo.Create(ctx, pick); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pick: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SavePickResponse{Pick: convertPick(pick)}, nil
}

func (d *pickDomain) SaveMany(
	ctx context.Context, req *model.SavePicksRequest,
) (*model.SavePicksResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	if len(req.Picks) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No pick to save")
	}

	if len(req.Picks) > maxBatchPicks {
		return nil, errorx.New(errorx.BadRequest, "Cannot save more than %d picks at once", maxBatchPicks)
	}

	picks := make([]entity.SavedPick, 0, len(req.Picks))
	for i, s := range req.Picks {
		numbers, err := parseNumbers(s)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Pick %d has an invalid number", i+1)
		}

		pick, err := newSavedPick(ctx, gameType, lottery.Pick{Numbers: numbers}, req.Label)
		if err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				return nil, errorx.New(errx.Code, "Pick %d: %s", i+1, errx.Message)
			}
			return nil, err
		}

		picks = append(picks, *pick)
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.pickRepo.CreateMany(ctx, picks); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create picks: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SavePicksResponse{Saved: len(picks)}, nil
}

func (d *pickDomain) GetList(
	ctx context.Context, req *model.GetListPickRequest,
) (*model.GetListPickResponse, error) {
	filter := repository.PickFilter{
		UserID:   xcontext.RequestUserID(ctx),
		Label:    req.Label,
		Favorite: req.Favorite,
		Offset:   req.Offset,
	}

	if req.GameType != "" {
		gameType, err := parseGameType(req.GameType)
		if err != nil {
			return nil, err
		}
		filter.GameType = gameType
	}

	limit, err := checkLimit(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit

	picks, err := d.pickRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of picks: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.pickRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count picks: %v", err)
		return nil, errorx.Unknown
	}

	latestDraws := newLatestDrawCache(d.drawRepo)
	entries := []model.PickEntry{}
	for i := range picks {
		pick := &picks[i]
		draw, err := latestDraws.get(ctx, pick.GameType)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get the latest draw: %v", err)
			return nil, errorx.Unknown
		}

		if draw == nil {
			entries = append(entries, model.PickEntry{Pick: convertPick(pick)})
			continue
		}

		cfg, _ := lottery.ConfigOf(pick.GameType)
		if !cfg.HasSecondary {
			result := lottery.Evaluate(pick.GameType, pick.Numbers, draw)
			entries = append(entries, model.PickEntry{
				Pick:           convertPick(pick),
				SequenceNumber: draw.SequenceNumber,
				MatchCount:     result.MatchCount,
				PrizeWorthy:    result.IsPrizeWorthy,
			})
			continue
		}

		for _, match := range lottery.EvaluatePerDraw(pick.GameType, pick.Numbers, draw) {
			entries = append(entries, model.PickEntry{
				Pick:           convertPick(pick),
				Sorteio:        match.Sorteio,
				DrawnNumbers:   match.Numbers,
				SequenceNumber: draw.SequenceNumber,
				MatchCount:     match.MatchCount,
				PrizeWorthy:    match.IsPrizeWorthy,
			})
		}
	}

	return &model.GetListPickResponse{Picks: entries, Total: total}, nil
}

func (d *pickDomain) Get(ctx context.Context, req *model.GetPickRequest) (*model.GetPickResponse, error) {
	pick, err := d.getOwnedPick(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetPickResponse{Pick: convertPick(pick)}, nil
}

func (d *pickDomain) Update(
	ctx context.Context, req *model.UpdatePickRequest,
) (*model.UpdatePickResponse, error) {
	pick, err := d.getOwnedPick(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	if req.Label != nil {
		label := strings.TrimSpace(*req.Label)
		if label == "" {
			label = defaultPickLabel(pick.GameType)
		}
		data["label"] = label
		pick.Label = label
	}

	if req.Notes != nil {
		data["notes"] = *req.Notes
		pick.Notes = *req.Notes
	}

	if req.Favorite != nil {
		data["favorite"] = *req.Favorite
		pick.Favorite = *req.Favorite
	}

	if len(data) > 0 {
		if err := d.pickRepo.UpdateByID(ctx, pick.ID, data); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update pick: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.UpdatePickResponse{Pick: convertPick(pick)}, nil
}

func (d *pickDomain) Delete(ctx context.Context, req *model.DeletePickRequest) (*model.DeletePickResponse, error) {
	if err := d.pickRepo.DeleteByID(ctx, xcontext.RequestUserID(ctx), req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pick")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete pick: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePickResponse{}, nil
}

func (d *pickDomain) DeleteMany(
	ctx context.Context, req *model.DeletePicksRequest,
) (*model.DeletePicksResponse, error) {
	if len(req.IDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No pick to delete")
	}

	if len(req.IDs) > maxBatchPicks {
		return nil, errorx.New(errorx.BadRequest, "Cannot delete more than %d picks at once", maxBatchPicks)
	}

	deleted, err := d.pickRepo.DeleteByIDs(ctx, xcontext.RequestUserID(ctx), req.IDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete picks: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePicksResponse{Deleted: deleted}, nil
}

func (d *pickDomain) GetHistory(
	ctx context.Context, req *model.GetPickHistoryRequest,
) (*model.GetPickHistoryResponse, error) {
	pick, err := d.getOwnedPick(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	records, err := d.matchRecordRepo.GetByPickID(ctx, pick.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get match records: %v", err)
		return nil, errorx.Unknown
	}

	history := []model.MatchRecord{}
	for i := range records {
		history = append(history, convertMatchRecord(&records[i]))
	}

	return &model.GetPickHistoryResponse{History: history}, nil
}

func (d *pickDomain) Generate(
	ctx context.Context, req *model.GeneratePickRequest,
) (*model.GeneratePickResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	pick, err := lottery.RandomPick(gameType, req.Size)
	if err != nil {
		return nil, lotteryError(ctx, err)
	}

	return &model.GeneratePickResponse{
		Numbers:    pick.Numbers,
		Clovers:    pick.Clovers,
		LuckyMonth: pick.LuckyMonth,
	}, nil
}

func (d *pickDomain) Check(ctx context.Context, req *model.CheckPickRequest) (*model.CheckPickResponse, error) {
	pick, err := d.getOwnedPick(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var draw *entity.Draw
	if req.SequenceNumber == 0 {
		draw, err = d.drawRepo.GetLatest(ctx, pick.GameType)
	} else {
		draw, err = d.drawRepo.GetBySequence(ctx, pick.GameType, req.SequenceNumber)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw of %s", pick.GameType)
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw: %v", err)
		return nil, errorx.Unknown
	}

	result, err := d.check(ctx, pick, draw)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record check result: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CheckPickResponse{
		MatchCount:     result.MatchCount,
		IsPrizeWorthy:  result.IsPrizeWorthy,
		SequenceNumber: draw.SequenceNumber,
	}, nil
}

// CheckAll checks every pick of the user against the latest draw of its game
// type. A failure of one pick is counted and does not stop the others.
func (d *pickDomain) CheckAll(
	ctx context.Context, req *model.CheckAllPicksRequest,
) (*model.CheckAllPicksResponse, error) {
	picks, err := d.pickRepo.GetAllByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get picks: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.CheckAllPicksResponse{TotalPicks: len(picks)}
	latestDraws := newLatestDrawCache(d.drawRepo)
	for i := range picks {
		pick := &picks[i]
		draw, err := latestDraws.get(ctx, pick.GameType)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Warnf("Cannot get the latest draw of %s: %v", pick.GameType, err)
			}
			resp.ErrorCount++
			continue
		}

		result, err := d.check(ctx, pick, draw)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot check pick %s: %v", pick.ID, err)
			resp.ErrorCount++
			continue
		}

		resp.SuccessfullyChecked++
		if result.IsPrizeWorthy {
			resp.PrizeWorthyCount++
		}
	}

	return resp, nil
}

// check scores the pick against the draw and records the result. A pick is
// recorded once per draw, checking it again only refreshes the pick.
func (d *pickDomain) check(
	ctx context.Context, pick *entity.SavedPick, draw *entity.Draw,
) (lottery.MatchResult, error) {
	result := lottery.Evaluate(pick.GameType, pick.Numbers, draw)

	err := d.pickRepo.UpdateCheckResult(ctx, pick.ID, repository.PickCheckResult{
		MatchCount:     result.MatchCount,
		IsPrizeWorthy:  result.IsPrizeWorthy,
		SequenceNumber: draw.SequenceNumber,
	})
	if err != nil {
		return result, err
	}

	err = d.matchRecordRepo.Create(ctx, &entity.MatchRecord{
		SnowFlakeBase:  entity.SnowFlakeBase{ID: xcontext.SnowFlake(ctx).Generate().Int64()},
		PickID:         pick.ID,
		SequenceNumber: draw.SequenceNumber,
		MatchCount:     result.MatchCount,
		IsPrizeWorthy:  result.IsPrizeWorthy,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return result, nil
		}
		return result, err
	}

	common.IncCounter(common.PicksCheckedTotal, string(pick.GameType), strconv.FormatBool(result.IsPrizeWorthy))
	if result.IsPrizeWorthy {
		d.notifier.PrizeFound(ctx, pick, draw.SequenceNumber, result.MatchCount)
	}

	return result, nil
}

func (d *pickDomain) getOwnedPick(ctx context.Context, id string) (*entity.SavedPick, error) {
	pick, err := d.pickRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found pick")
		}

		xcontext.Logger(ctx).Errorf("Cannot get pick: %v", err)
		return nil, errorx.Unknown
	}

	if pick.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.NotFound, "Not found pick")
	}

	return pick, nil
}

func newSavedPick(
	ctx context.Context, gameType entity.GameType, pick lottery.Pick, label string,
) (*entity.SavedPick, error) {
	if err := lottery.ValidatePick(gameType, pick); err != nil {
		return nil, lotteryError(ctx, err)
	}

	cfg, _ := lottery.ConfigOf(gameType)
	result := &entity.SavedPick{
		Base:     entity.Base{ID: uuid.NewString()},
		UserID:   xcontext.RequestUserID(ctx),
		GameType: gameType,
		Numbers:  lottery.Normalize(pick.Numbers),
		Label:    strings.TrimSpace(label),
	}

	if cfg.CloverCount > 0 {
		result.Clovers = lottery.Normalize(pick.Clovers)
	}

	switch cfg.Extra {
	case lottery.ExtraMonth:
		result.LuckyMonth = pick.LuckyMonth
	case lottery.ExtraTeam:
		result.FavoriteTeam = strings.TrimSpace(pick.FavoriteTeam)
	}

	if result.Label == "" {
		result.Label = defaultPickLabel(gameType)
	}

	return result, nil
}

func defaultPickLabel(gameType entity.GameType) string {
	cfg, _ := lottery.ConfigOf(gameType)
	return "Jogo " + cfg.Name
}

// latestDrawCache keeps the latest draw of each game type during a request.
type latestDrawCache struct {
	drawRepo repository.DrawRepository
	draws    map[entity.GameType]*entity.Draw
	errs     map[entity.GameType]error
}

func newLatestDrawCache(drawRepo repository.DrawRepository) *latestDrawCache {
	return &latestDrawCache{
		drawRepo: drawRepo,
		draws:    make(map[entity.GameType]*entity.Draw),
		errs:     make(map[entity.GameType]error),
	}
}

func (c *latestDrawCache) get(ctx context.Context, gameType entity.GameType) (*entity.Draw, error) {
	if draw, ok := c.draws[gameType]; ok {
		return draw, nil
	}

	if err, ok := c.errs[gameType]; ok {
		return nil, err
	}

	draw, err := c.drawRepo.GetLatest(ctx, gameType)
	if err != nil {
		c.errs[gameType] = err
		return nil, err
	}

	c.draws[gameType] = draw
	return draw, nil
}
