package lottery

import (
	"fmt"

	"github.com/loterias-lab/backend/internal/entity"
	"golang.org/x/exp/slices"
)

type Pick struct {
	Numbers      []int
	Clovers      []int
	LuckyMonth   string
	FavoriteTeam string
}

// ValidatePick checks a pick against the rules of its game type.
func ValidatePick(gameType entity.GameType, pick Pick) error {
	cfg, ok := ConfigOf(gameType)
	if !ok {
		return fmt.Errorf("%w: unknown game type %s", ErrInvalidInput, gameType)
	}

	if len(pick.Numbers) < cfg.MinPickCount || len(pick.Numbers) > cfg.MaxPickCount {
		if cfg.MinPickCount == cfg.MaxPickCount {
			return fmt.Errorf("%w: %s requires exactly %d numbers",
				ErrInvalidInput, cfg.Name, cfg.MinPickCount)
		}

		return fmt.Errorf("%w: %s requires between %d and %d numbers",
			ErrInvalidInput, cfg.Name, cfg.MinPickCount, cfg.MaxPickCount)
	}

	if HasDuplicates(pick.Numbers) {
		return fmt.Errorf("%w: repeated numbers", ErrInvalidInput)
	}

	if err := checkRange(cfg, pick.Numbers); err != nil {
		return err
	}

	if cfg.CloverCount > 0 {
		if len(pick.Clovers) != cfg.CloverCount {
			return fmt.Errorf("%w: %s requires %d clovers", ErrInvalidInput, cfg.Name, cfg.CloverCount)
		}

		if HasDuplicates(pick.Clovers) {
			return fmt.Errorf("%w: repeated clovers", ErrInvalidInput)
		}

		for _, c := range pick.Clovers {
			if c < 1 || c > cfg.MaxClover {
				return fmt.Errorf("%w: clover %d is out of range 1-%d", ErrInvalidInput, c, cfg.MaxClover)
			}
		}
	} else if len(pick.Clovers) > 0 {
		return fmt.Errorf("%w: %s does not have clovers", ErrInvalidInput, cfg.Name)
	}

	if cfg.Extra == ExtraMonth && pick.LuckyMonth != "" && !slices.Contains(Months, pick.LuckyMonth) {
		return fmt.Errorf("%w: invalid month %s", ErrInvalidInput, pick.LuckyMonth)
	}

	return nil
}

// ValidateDraw checks the numbers of a draw against its game type.
func ValidateDraw(draw *entity.Draw) error {
	cfg, ok := ConfigOf(draw.GameType)
	if !ok {
		return fmt.Errorf("%w: unknown game type %s", ErrInvalidInput, draw.GameType)
	}

	if draw.SequenceNumber <= 0 {
		return fmt.Errorf("%w: invalid sequence number %d", ErrInvalidInput, draw.SequenceNumber)
	}

	if err := validateDrawn(cfg, draw.Numbers); err != nil {
		return err
	}

	if cfg.HasSecondary {
		if err := validateDrawn(cfg, draw.SecondaryNumbers); err != nil {
			return fmt.Errorf("second draw: %w", err)
		}
	} else if len(draw.SecondaryNumbers) > 0 {
		return fmt.Errorf("%w: %s does not have a second draw", ErrInvalidInput, cfg.Name)
	}

	if cfg.CloverCount > 0 && len(draw.Clovers) > 0 {
		if len(draw.Clovers) != cfg.CloverCount || HasDuplicates(draw.Clovers) {
			return fmt.Errorf("%w: invalid clovers", ErrInvalidInput)
		}
	}

	return nil
}

func validateDrawn(cfg Config, numbers []int) error {
	if len(numbers) != cfg.DrawnCount {
		return fmt.Errorf("%w: %s draws %d numbers, got %d",
			ErrInvalidInput, cfg.Name, cfg.DrawnCount, len(numbers))
	}

	if HasDuplicates(numbers) {
		return fmt.Errorf("%w: repeated numbers", ErrInvalidInput)
	}

	return checkRange(cfg, numbers)
}
