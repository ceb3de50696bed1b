package lottery

import (
	"github.com/loterias-lab/backend/internal/entity"
)

type MatchResult struct {
	MatchCount    int
	IsPrizeWorthy bool
}

type DrawMatch struct {
	MatchResult

	// Sorteio is 1 for the first draw and 2 for the second draw of the
	// dual-draw game.
	Sorteio int
	Numbers []int
}

// Evaluate scores a pick against a draw. The numbers of both sorteios of the
// dual-draw game are merged before counting.
func Evaluate(gameType entity.GameType, pick []int, draw *entity.Draw) MatchResult {
	drawn := draw.Numbers
	if cfg, ok := ConfigOf(gameType); ok && cfg.HasSecondary {
		drawn = Union(draw.Numbers, draw.SecondaryNumbers)
	}

	matchCount := IntersectionSize(pick, drawn)
	return MatchResult{
		MatchCount:    matchCount,
		IsPrizeWorthy: IsPrizeWorthy(gameType, matchCount),
	}
}

// EvaluatePerDraw scores a pick against each sorteio of the draw separately.
func EvaluatePerDraw(gameType entity.GameType, pick []int, draw *entity.Draw) []DrawMatch {
	result := []DrawMatch{}
	for i, numbers := range draw.Sorteios() {
		matchCount := IntersectionSize(pick, numbers)
		result = append(result, DrawMatch{
			MatchResult: MatchResult{
				MatchCount:    matchCount,
				IsPrizeWorthy: IsPrizeWorthy(gameType, matchCount),
			},
			Sorteio: i + 1,
			Numbers: numbers,
		})
	}

	return result
}
