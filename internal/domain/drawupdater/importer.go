package drawupdater

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/loterias-lab/backend/internal/domain/lottery"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

var csvDateLayouts = []string{"02/01/2006", time.DateOnly}

type ImportResult struct {
	Inserted int
	Skipped  int
	Failed   int
}

// ImportCSV reads historical draws, one per row:
//
//	sequence,date,n1,...,nk[,m1,...,mk][,t1,t2][,extra]
//
// where m are the numbers of the second sorteio and t the clovers, when the
// game has them. A first row which does not start with a number is a header.
// Draws already stored are skipped.
func ImportCSV(
	ctx context.Context, drawRepo repository.DrawRepository, gameType entity.GameType, r io.Reader,
) (ImportResult, error) {
	cfg, ok := lottery.ConfigOf(gameType)
	if !ok {
		return ImportResult{}, fmt.Errorf("unknown game type %s", gameType)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := ImportResult{}
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("cannot read line %d: %w", line+1, err)
		}
		line++

		if line == 1 && len(record) > 0 {
			if _, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64); err != nil {
				continue
			}
		}

		draw, err := parseRecord(cfg, record)
		if err == nil {
			err = lottery.ValidateDraw(draw)
		}
		if err != nil {
			xcontext.Logger(ctx).Warnf("Invalid draw at line %d: %v", line, err)
			result.Failed++
			continue
		}

		if err := drawRepo.Create(ctx, draw); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Skipped++
				continue
			}

			return result, fmt.Errorf("cannot create draw at line %d: %w", line, err)
		}

		result.Inserted++
	}

	return result, nil
}

func parseRecord(cfg lottery.Config, record []string) (*entity.Draw, error) {
	expected := 2 + cfg.DrawnCount
	if cfg.HasSecondary {
		expected += cfg.DrawnCount
	}
	expected += cfg.CloverCount

	if len(record) < expected {
		return nil, fmt.Errorf("expected at least %d columns, got %d", expected, len(record))
	}

	seq, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sequence number %s", record[0])
	}

	drawDate, err := parseDate(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid date %s", record[1])
	}

	pos := 2
	readNumbers := func(count int) ([]int, error) {
		numbers := make([]int, 0, count)
		for _, field := range record[pos : pos+count] {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid number %s", field)
			}
			numbers = append(numbers, n)
		}
		pos += count
		return lottery.Normalize(numbers), nil
	}

	draw := &entity.Draw{
		Base:           entity.Base{ID: uuid.NewString()},
		GameType:       cfg.GameType,
		SequenceNumber: seq,
		DrawDate:       drawDate,
	}

	if draw.Numbers, err = readNumbers(cfg.DrawnCount); err != nil {
		return nil, err
	}

	if cfg.HasSecondary {
		if draw.SecondaryNumbers, err = readNumbers(cfg.DrawnCount); err != nil {
			return nil, err
		}
	}

	if cfg.CloverCount > 0 {
		if draw.Clovers, err = readNumbers(cfg.CloverCount); err != nil {
			return nil, err
		}
	}

	if cfg.Extra != lottery.ExtraNone && pos < len(record) {
		draw.ExtraField = strings.TrimSpace(record[pos])
	}

	return draw, nil
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range csvDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}
