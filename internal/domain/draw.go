package domain

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/common"
	"github.com/loterias-lab/backend/internal/domain/drawupdater"
	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var drawDateLayouts = []string{time.DateOnly, "02/01/2006", time.RFC3339}

type DrawDomain interface {
	GetList(context.Context, *model.GetListDrawRequest) (*model.GetListDrawResponse, error)
	GetLatest(context.Context, *model.GetLatestDrawRequest) (*model.GetLatestDrawResponse, error)
	Get(context.Context, *model.GetDrawRequest) (*model.GetDrawResponse, error)
	GetByNumber(context.Context, *model.GetDrawsByNumberRequest) (*model.GetDrawsByNumberResponse, error)
	GetNumberFrequency(context.Context, *model.GetNumberFrequencyRequest) (*model.GetNumberFrequencyResponse, error)
	GetLatestResults(context.Context, *model.GetLatestResultsRequest) (*model.GetLatestResultsResponse, error)
	Create(context.Context, *model.CreateDrawRequest) (*model.CreateDrawResponse, error)
	Delete(context.Context, *model.DeleteDrawRequest) (*model.DeleteDrawResponse, error)
	Refresh(context.Context, *model.RefreshDrawsRequest) (*model.RefreshDrawsResponse, error)
}

type drawDomain struct {
	drawRepo    repository.DrawRepository
	resultCache common.ResultCache
	updater     drawupdater.Updater
}

func NewDrawDomain(
	drawRepo repository.DrawRepository,
	resultCache common.ResultCache,
	updater drawupdater.Updater,
) *drawDomain {
	return &drawDomain{
		drawRepo:    drawRepo,
		resultCache: resultCache,
		updater:     updater,
	}
}

func (d *drawDomain) GetList(
	ctx context.Context, req *model.GetListDrawRequest,
) (*model.GetListDrawResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	limit, err := checkLimit(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	draws, err := d.drawRepo.GetList(ctx, gameType, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of draws: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.drawRepo.Count(ctx, gameType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count draws: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Draw{}
	for i := range draws {
		result = append(result, convertDraw(&draws[i]))
	}

	return &model.GetListDrawResponse{Draws: result, Total: total}, nil
}

func (d *drawDomain) GetLatest(
	ctx context.Context, req *model.GetLatestDrawRequest,
) (*model.GetLatestDrawResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	draw, err := d.drawRepo.GetLatest(ctx, gameType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found any draw of %s", gameType)
		}

		xcontext.Logger(ctx).Errorf("Cannot get the latest draw: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetLatestDrawResponse{Draw: convertDraw(draw)}, nil
}

func (d *drawDomain) Get(ctx context.Context, req *model.GetDrawRequest) (*model.GetDrawResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	draw, err := d.drawRepo.GetBySequence(ctx, gameType, req.SequenceNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw %d of %s", req.SequenceNumber, gameType)
		}

		xcontext.Logger(ctx).Errorf("Cannot get draw: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDrawResponse{Draw: convertDraw(draw)}, nil
}

func (d *drawDomain) GetByNumber(
	ctx context.Context, req *model.GetDrawsByNumberRequest,
) (*model.GetDrawsByNumberResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	cfg, _ := lottery.ConfigOf(gameType)
	if !cfg.InRange(req.Number) {
		return nil, errorx.New(errorx.BadRequest,
			"Number must be between %d and %d", cfg.MinNumber, cfg.MaxNumber)
	}

	limit, err := checkLimit(ctx, 0, req.Limit)
	if err != nil {
		return nil, err
	}

	draws, err := d.drawRepo.GetByNumber(ctx, gameType, req.Number, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get draws by number: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Draw{}
	for i := range draws {
		result = append(result, convertDraw(&draws[i]))
	}

	return &model.GetDrawsByNumberResponse{Draws: result}, nil
}

func (d *drawDomain) GetNumberFrequency(
	ctx context.Context, req *model.GetNumberFrequencyRequest,
) (*model.GetNumberFrequencyResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	draws, err := d.drawRepo.GetAll(ctx, gameType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get draws: %v", err)
		return nil, errorx.Unknown
	}

	cfg, _ := lottery.ConfigOf(gameType)
	counter := make(map[int]int)
	for i := range draws {
		for _, n := range lottery.Union(draws[i].Sorteios()...) {
			counter[n]++
		}
	}

	frequencies := make([]model.NumberFrequency, 0, cfg.MaxNumber-cfg.MinNumber+1)
	for n := cfg.MinNumber; n <= cfg.MaxNumber; n++ {
		frequencies = append(frequencies, model.NumberFrequency{Number: n, Frequency: counter[n]})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Frequency > frequencies[j].Frequency
	})

	return &model.GetNumberFrequencyResponse{
		TotalDraws:  len(draws),
		Frequencies: frequencies,
	}, nil
}

func (d *drawDomain) GetLatestResults(
	ctx context.Context, req *model.GetLatestResultsRequest,
) (*model.GetLatestResultsResponse, error) {
	var cached []model.Draw
	if d.resultCache.Get(ctx, common.LatestResultsCacheKey, &cached) {
		return &model.GetLatestResultsResponse{Results: cached, Cached: true}, nil
	}

	results := []model.Draw{}
	for _, gameType := range entity.AllGameTypes() {
		draw, err := d.drawRepo.GetLatest(ctx, gameType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get the latest draw of %s: %v", gameType, err)
			return nil, errorx.Unknown
		}

		results = append(results, convertDraw(draw))
	}

	d.resultCache.Set(ctx, common.LatestResultsCacheKey, results)
	return &model.GetLatestResultsResponse{Results: results, Cached: false}, nil
}

func (d *drawDomain) Create(
	ctx context.Context, req *model.CreateDrawRequest,
) (*model.CreateDrawResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	if req.SequenceNumber <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Sequence number must be positive")
	}

	drawDate, err := parseDrawDate(req.DrawDate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid draw date %s", req.DrawDate)
	}

	accumulatedAmount, err := parseAmount(req.AccumulatedAmount)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid accumulated amount")
	}

	estimatedNextPrize, err := parseAmount(req.EstimatedNextPrize)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid estimated prize")
	}

	draw := &entity.Draw{
		Base:               entity.Base{ID: uuid.NewString()},
		GameType:           gameType,
		SequenceNumber:     req.SequenceNumber,
		DrawDate:           drawDate,
		Numbers:            lottery.Normalize(req.Numbers),
		SecondaryNumbers:   lottery.Normalize(req.SecondaryNumbers),
		Clovers:            lottery.Normalize(req.Clovers),
		ExtraField:         req.ExtraField,
		Accumulated:        req.Accumulated,
		AccumulatedAmount:  accumulatedAmount,
		EstimatedNextPrize: estimatedNextPrize,
	}

	if err := lottery.ValidateDraw(draw); err != nil {
		return nil, lotteryError(ctx, err)
	}

	if err := d.drawRepo.Create(ctx, draw); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists,
				"Draw %d of %s already exists", req.SequenceNumber, gameType)
		}

		xcontext.Logger(ctx).Errorf("Cannot create draw: %v", err)
		return nil, errorx.Unknown
	}

	d.resultCache.Invalidate(ctx, common.LatestResultsCacheKey)
	return &model.CreateDrawResponse{Draw: convertDraw(draw)}, nil
}

func (d *drawDomain) Delete(
	ctx context.Context, req *model.DeleteDrawRequest,
) (*model.DeleteDrawResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	if err := d.drawRepo.Delete(ctx, gameType, req.SequenceNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found draw %d of %s", req.SequenceNumber, gameType)
		}

		xcontext.Logger(ctx).Errorf("Cannot delete draw: %v", err)
		return nil, errorx.Unknown
	}

	d.resultCache.Invalidate(ctx, common.LatestResultsCacheKey)
	return &model.DeleteDrawResponse{}, nil
}

func (d *drawDomain) Refresh(
	ctx context.Context, req *model.RefreshDrawsRequest,
) (*model.RefreshDrawsResponse, error) {
	gameTypes := entity.AllGameTypes()
	if req.GameType != "" {
		gameType, err := parseGameType(req.GameType)
		if err != nil {
			return nil, err
		}
		gameTypes = []entity.GameType{gameType}
	}

	games := []model.RefreshedGame{}
	for _, gameType := range gameTypes {
		game := model.RefreshedGame{GameType: string(gameType)}
		inserted, err := d.updater.Update(ctx, gameType)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot refresh draws of %s: %v", gameType, err)
			game.Error = err.Error()
		}
		game.Inserted = inserted
		games = append(games, game)
	}

	d.resultCache.Invalidate(ctx, common.LatestResultsCacheKey)
	return &model.RefreshDrawsResponse{Games: games}, nil
}

func parseDrawDate(s string) (time.Time, error) {
	var err error
	for _, layout := range drawDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}
