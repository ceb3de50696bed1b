package lottery

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"

	"github.com/loterias-lab/backend/internal/entity"
)

// RandomPick generates a valid pick with size numbers. A zero size means the
// minimum pick size of the game type.
func RandomPick(gameType entity.GameType, size int) (Pick, error) {
	cfg, ok := ConfigOf(gameType)
	if !ok {
		return Pick{}, fmt.Errorf("%w: unknown game type %s", ErrInvalidInput, gameType)
	}

	if size == 0 {
		size = cfg.MinPickCount
	}

	if size < cfg.MinPickCount || size > cfg.MaxPickCount {
		return Pick{}, fmt.Errorf("%w: %s requires between %d and %d numbers",
			ErrInvalidInput, cfg.Name, cfg.MinPickCount, cfg.MaxPickCount)
	}

	numbers, err := sample(cfg.MinNumber, cfg.MaxNumber, size)
	if err != nil {
		return Pick{}, err
	}

	pick := Pick{Numbers: numbers}
	if cfg.CloverCount > 0 {
		pick.Clovers, err = sample(1, cfg.MaxClover, cfg.CloverCount)
		if err != nil {
			return Pick{}, err
		}
	}

	if cfg.Extra == ExtraMonth {
		i, err := rand.Int(rand.Reader, big.NewInt(int64(len(Months))))
		if err != nil {
			return Pick{}, err
		}
		pick.LuckyMonth = Months[i.Int64()]
	}

	return pick, nil
}

// sample picks k distinct numbers in [lo, hi] with a partial Fisher-Yates
// shuffle.
func sample(lo, hi, k int) ([]int, error) {
	pool := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		pool = append(pool, n)
	}

	for i := 0; i < k; i++ {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool)-i)))
		if err != nil {
			return nil, err
		}

		r := i + int(j.Int64())
		pool[i], pool[r] = pool[r], pool[i]
	}

	result := pool[:k]
	sort.Ints(result)
	return result, nil
}
