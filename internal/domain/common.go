package domain

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/enum"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

func parseGameType(s string) (entity.GameType, error) {
	gameType, err := enum.ToEnum[entity.GameType](s)
	if err != nil {
		return "", errorx.New(errorx.BadRequest, "Invalid game type %s", s)
	}

	return gameType, nil
}

// checkLimit applies the default limit and rejects limits over the configured
// maximum.
func checkLimit(ctx context.Context, offset, limit int) (int, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if offset < 0 {
		return 0, errorx.New(errorx.BadRequest, "Offset must be non-negative")
	}

	if limit == 0 {
		limit = apiCfg.DefaultLimit
	}

	if limit < 0 {
		return 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if apiCfg.MaxLimit > 0 && limit > apiCfg.MaxLimit {
		return 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return limit, nil
}

// lotteryError converts an error of the lottery engine into an api error.
func lotteryError(ctx context.Context, err error) error {
	if errors.Is(err, lottery.ErrInvalidInput) {
		msg := strings.TrimPrefix(err.Error(), lottery.ErrInvalidInput.Error()+": ")
		return errorx.New(errorx.BadRequest, "Invalid input: %s", msg)
	}

	xcontext.Logger(ctx).Errorf("Unexpected lottery error: %v", err)
	return errorx.Unknown
}

// parseNumbers reads a pick written as numbers separated by spaces, commas,
// semicolons or dashes.
func parseNumbers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '-' || r == '\t'
	})

	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}
