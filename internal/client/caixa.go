package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/api"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const caixaDateLayout = "02/01/2006"

var ErrDrawNotFound = errors.New("draw not found")

// CaixaClient reads official results from the Caixa lottery API.
type CaixaClient interface {
	GetLatest(ctx context.Context, gameType entity.GameType) (*entity.Draw, error)
	GetBySequence(ctx context.Context, gameType entity.GameType, seq int64) (*entity.Draw, error)
}

type caixaClient struct {
	generator api.Generator
}

func NewCaixaClient(baseURL string, timeout time.Duration) *caixaClient {
	return &caixaClient{
		generator: api.NewGenerator(&http.Client{Timeout: timeout}, baseURL),
	}
}

func (c *caixaClient) GetLatest(ctx context.Context, gameType entity.GameType) (*entity.Draw, error) {
	cfg, ok := lottery.ConfigOf(gameType)
	if !ok {
		return nil, fmt.Errorf("unknown game type %s", gameType)
	}

	return c.get(ctx, gameType, c.generator.New("/%s", cfg.CaixaSlug))
}

func (c *caixaClient) GetBySequence(
	ctx context.Context, gameType entity.GameType, seq int64,
) (*entity.Draw, error) {
	cfg, ok := lottery.ConfigOf(gameType)
	if !ok {
		return nil, fmt.Errorf("unknown game type %s", gameType)
	}

	return c.get(ctx, gameType, c.generator.New("/%s/%d", cfg.CaixaSlug, seq))
}

func (c *caixaClient) get(ctx context.Context, gameType entity.GameType, client api.Client) (*entity.Draw, error) {
	resp, err := client.Header("Accept", "application/json").GET(ctx)
	if err != nil {
		return nil, err
	}

	if resp.Code == http.StatusNotFound {
		return nil, ErrDrawNotFound
	}

	if !resp.OK() {
		return nil, fmt.Errorf("unexpected status code %d", resp.Code)
	}

	return ParseCaixaDraw(gameType, resp.Body)
}

// ParseCaixaDraw maps a result document of the Caixa API into a draw. The
// document of a dual-draw game may list the numbers of both sorteios in
// listaDezenas.
func ParseCaixaDraw(gameType entity.GameType, body gjson.Result) (*entity.Draw, error) {
	cfg, ok := lottery.ConfigOf(gameType)
	if !ok {
		return nil, fmt.Errorf("unknown game type %s", gameType)
	}

	seq := body.Get("numero").Int()
	if seq <= 0 {
		return nil, ErrDrawNotFound
	}

	numbers := parseNumberList(body.Get("listaDezenas"))
	if len(numbers) == 0 {
		return nil, fmt.Errorf("draw %d of %s has no numbers", seq, gameType)
	}

	draw := &entity.Draw{
		GameType:       gameType,
		SequenceNumber: seq,
		Numbers:        lottery.Normalize(numbers),
		Accumulated:    body.Get("acumulado").Bool(),
		ExtraField:     body.Get("nomeTimeCoracaoMesSorte").String(),
	}

	if cfg.HasSecondary {
		secondary := parseNumberList(body.Get("listaDezenasSegundoSorteio"))
		if len(numbers) > cfg.DrawnCount {
			if len(secondary) == 0 {
				secondary = numbers[cfg.DrawnCount:]
			}
			numbers = numbers[:cfg.DrawnCount]
		}
		draw.Numbers = lottery.Normalize(numbers)
		draw.SecondaryNumbers = lottery.Normalize(secondary)
	}

	if cfg.CloverCount > 0 {
		draw.Clovers = lottery.Normalize(parseNumberList(body.Get("trevosSorteados")))
	}

	drawDate, err := time.Parse(caixaDateLayout, body.Get("dataApuracao").String())
	if err != nil {
		return nil, fmt.Errorf("invalid draw date of %d: %w", seq, err)
	}
	draw.DrawDate = drawDate

	if next, err := time.Parse(caixaDateLayout, body.Get("dataProximoConcurso").String()); err == nil {
		draw.NextDrawDate = &next
	}

	draw.AccumulatedAmount = parseAmount(body.Get("valorAcumuladoProximoConcurso"))
	draw.EstimatedNextPrize = parseAmount(body.Get("valorEstimadoProximoConcurso"))

	return draw, nil
}

// parseNumberList reads arrays like ["01","02"] or [1,2] keeping their order.
func parseNumberList(value gjson.Result) []int {
	result := []int{}
	for _, item := range value.Array() {
		result = append(result, int(item.Int()))
	}

	return result
}

func parseAmount(value gjson.Result) decimal.Decimal {
	if !value.Exists() {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Zero
	}

	return amount.Round(2)
}
