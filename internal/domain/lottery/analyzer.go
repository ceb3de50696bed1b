package lottery

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/loterias-lab/backend/internal/entity"
)

var ErrInvalidInput = errors.New("invalid input")

type AnalysisResult struct {
	Numbers              []int
	Occurrences          int
	OccurrencePercentage float64
	CurrentDelay         int
	MaxDelay             int
	MaxStreak            int

	// Used by the single-number analysis. LastHitSequence is nil when the
	// target never hit.
	LastHitSequence *int64
	MeanDelay       float64
}

// AnalyzeCombinations counts, for each combination, the draws containing all
// of its numbers. Draws must be ordered from the oldest to the newest. The
// result is ordered by occurrences, most frequent first.
func AnalyzeCombinations(
	gameType entity.GameType, draws []entity.Draw, combinations [][]int,
) ([]AnalysisResult, error) {
	cfg, targets, err := combinationTargets(gameType, combinations)
	if err != nil {
		return nil, err
	}

	results := make([]AnalysisResult, 0, len(targets))
	for _, target := range targets {
		results = append(results, scan(cfg, draws, target))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Occurrences > results[j].Occurrences
	})

	return results, nil
}

// AnalyzeNumbers computes the statistics of each single number, keeping the
// input order.
func AnalyzeNumbers(
	gameType entity.GameType, draws []entity.Draw, numbers []int,
) ([]AnalysisResult, error) {
	cfg, err := numberTargets(gameType, numbers)
	if err != nil {
		return nil, err
	}

	// A repeated number gets a row for each time it was asked.
	results := make([]AnalysisResult, 0, len(numbers))
	for _, n := range numbers {
		results = append(results, scan(cfg, draws, []int{n}))
	}

	return results, nil
}

// CheckCombinations validates the targets of AnalyzeCombinations without
// scanning any draw.
func CheckCombinations(gameType entity.GameType, combinations [][]int) error {
	_, _, err := combinationTargets(gameType, combinations)
	return err
}

// CheckNumbers validates the targets of AnalyzeNumbers without scanning any
// draw.
func CheckNumbers(gameType entity.GameType, numbers []int) error {
	_, err := numberTargets(gameType, numbers)
	return err
}

func combinationTargets(gameType entity.GameType, combinations [][]int) (Config, [][]int, error) {
	cfg, ok := ConfigOf(gameType)
	if !ok {
		return cfg, nil, fmt.Errorf("%w: unknown game type %s", ErrInvalidInput, gameType)
	}

	if len(combinations) == 0 {
		return cfg, nil, fmt.Errorf("%w: no combination", ErrInvalidInput)
	}

	targets := make([][]int, 0, len(combinations))
	for _, c := range combinations {
		target := Normalize(c)
		if len(target) == 0 || len(target) > cfg.DrawnCount {
			return cfg, nil, fmt.Errorf("%w: combination must have between 1 and %d numbers",
				ErrInvalidInput, cfg.DrawnCount)
		}

		if err := checkRange(cfg, target); err != nil {
			return cfg, nil, err
		}

		targets = append(targets, target)
	}

	return cfg, targets, nil
}

func numberTargets(gameType entity.GameType, numbers []int) (Config, error) {
	cfg, ok := ConfigOf(gameType)
	if !ok {
		return cfg, fmt.Errorf("%w: unknown game type %s", ErrInvalidInput, gameType)
	}

	if len(numbers) == 0 {
		return cfg, fmt.Errorf("%w: no number", ErrInvalidInput)
	}

	return cfg, checkRange(cfg, numbers)
}

func scan(cfg Config, draws []entity.Draw, target []int) AnalysisResult {
	result := AnalysisResult{Numbers: target}

	gap := 0
	streak := 0
	gaps := []int{}
	for i := range draws {
		if !hits(cfg, &draws[i], target) {
			gap++
			streak = 0
			continue
		}

		result.Occurrences++
		if gap > 0 {
			gaps = append(gaps, gap)
			if gap > result.MaxDelay {
				result.MaxDelay = gap
			}
		}
		gap = 0

		streak++
		if streak > result.MaxStreak {
			result.MaxStreak = streak
		}

		seq := draws[i].SequenceNumber
		result.LastHitSequence = &seq
	}

	result.CurrentDelay = gap
	if result.Occurrences == 0 {
		result.MaxDelay = len(draws)
	}

	if len(draws) > 0 {
		result.OccurrencePercentage = round2(float64(result.Occurrences) / float64(len(draws)) * 100)
	}

	if len(gaps) > 0 {
		sum := 0
		for _, g := range gaps {
			sum += g
		}
		result.MeanDelay = round2(float64(sum) / float64(len(gaps)))
	}

	return result
}

func hits(cfg Config, draw *entity.Draw, target []int) bool {
	if IsSubset(target, draw.Numbers) {
		return true
	}

	return cfg.HasSecondary && len(draw.SecondaryNumbers) > 0 && IsSubset(target, draw.SecondaryNumbers)
}

func checkRange(cfg Config, numbers []int) error {
	for _, n := range numbers {
		if !cfg.InRange(n) {
			return fmt.Errorf("%w: number %d is out of range %d-%d",
				ErrInvalidInput, n, cfg.MinNumber, cfg.MaxNumber)
		}
	}

	return nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
