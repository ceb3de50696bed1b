package domain

import (
	"context"

	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/model"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

var drawWindows = []int{10, 20, 30, 50, 100}

type AnalysisDomain interface {
	AnalyzeCombinations(context.Context, *model.AnalyzeCombinationsRequest) (*model.AnalyzeCombinationsResponse, error)
	AnalyzeNumbers(context.Context, *model.AnalyzeNumbersRequest) (*model.AnalyzeNumbersResponse, error)
}

type analysisDomain struct {
	drawRepo repository.DrawRepository
}

func NewAnalysisDomain(drawRepo repository.DrawRepository) *analysisDomain {
	return &analysisDomain{drawRepo: drawRepo}
}

// AnalyzeCombinations ranks the combinations over the latest draws of the
// window.
func (d *analysisDomain) AnalyzeCombinations(
	ctx context.Context, req *model.AnalyzeCombinationsRequest,
) (*model.AnalyzeCombinationsResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(drawWindows, req.DrawWindow) {
		return nil, errorx.New(errorx.BadRequest, "Draw window must be one of %v", drawWindows)
	}

	if len(req.Combinations) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No combination to analyze")
	}

	if err := lottery.CheckCombinations(gameType, req.Combinations); err != nil {
		return nil, lotteryError(ctx, err)
	}

	draws, err := d.drawRepo.GetList(ctx, gameType, 0, req.DrawWindow)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get draws: %v", err)
		return nil, errorx.Unknown
	}

	if len(draws) == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found any draw of %s", gameType)
	}

	// The analyzer walks the draws from the oldest one.
	for i, j := 0, len(draws)-1; i < j; i, j = i+1, j-1 {
		draws[i], draws[j] = draws[j], draws[i]
	}

	results, err := lottery.AnalyzeCombinations(gameType, draws, req.Combinations)
	if err != nil {
		return nil, lotteryError(ctx, err)
	}

	resp := &model.AnalyzeCombinationsResponse{
		TotalDraws: len(draws),
		FromSeq:    draws[0].SequenceNumber,
		ToSeq:      draws[len(draws)-1].SequenceNumber,
		Results:    []model.AnalysisResult{},
	}
	for _, r := range results {
		resp.Results = append(resp.Results, convertAnalysisResult(r))
	}

	return resp, nil
}

// AnalyzeNumbers computes the statistics of single numbers over the whole
// history of the game type.
func (d *analysisDomain) AnalyzeNumbers(
	ctx context.Context, req *model.AnalyzeNumbersRequest,
) (*model.AnalyzeNumbersResponse, error) {
	gameType, err := parseGameType(req.GameType)
	if err != nil {
		return nil, err
	}

	if len(req.Numbers) == 0 {
		return nil, errorx.New(errorx.BadRequest, "No number to analyze")
	}

	if err := lottery.CheckNumbers(gameType, req.Numbers); err != nil {
		return nil, lotteryError(ctx, err)
	}

	draws, err := d.drawRepo.GetAll(ctx, gameType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get draws: %v", err)
		return nil, errorx.Unknown
	}

	if len(draws) == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found any draw of %s", gameType)
	}

	results, err := lottery.AnalyzeNumbers(gameType, draws, req.Numbers)
	if err != nil {
		return nil, lotteryError(ctx, err)
	}

	resp := &model.AnalyzeNumbersResponse{
		TotalDraws: len(draws),
		Results:    []model.NumberAnalysisResult{},
	}
	for _, r := range results {
		resp.Results = append(resp.Results, convertNumberAnalysisResult(r))
	}

	return resp, nil
}

func convertNumberAnalysisResult(result lottery.AnalysisResult) model.NumberAnalysisResult {
	return model.NumberAnalysisResult{
		AnalysisResult:  convertAnalysisResult(result),
		Number:          result.Numbers[0],
		LastHitSequence: result.LastHitSequence,
		MeanDelay:       result.MeanDelay,
	}
}
