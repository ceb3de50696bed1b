package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Draw struct {
	Base

	GameType       GameType `gorm:"uniqueIndex:idx_draw_game_sequence;size:32"`
	SequenceNumber int64    `gorm:"uniqueIndex:idx_draw_game_sequence"`
	DrawDate       time.Time

	Numbers Array[int]
	// SecondaryNumbers is the second sorteio of the dual-draw game.
	SecondaryNumbers Array[int]
	Clovers          Array[int]
	// ExtraField is the lucky month or the team of the heart.
	ExtraField string

	Accumulated        bool
	AccumulatedAmount  decimal.Decimal `gorm:"type:decimal(20,2)"`
	EstimatedNextPrize decimal.Decimal `gorm:"type:decimal(20,2)"`
	NextDrawDate       *time.Time
}

// Sorteios returns the number sets of the draw, one for each sorteio.
func (d *Draw) Sorteios() [][]int {
	if len(d.SecondaryNumbers) > 0 {
		return [][]int{d.Numbers, d.SecondaryNumbers}
	}

	return [][]int{d.Numbers}
}
