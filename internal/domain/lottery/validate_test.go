package lottery

import (
	"testing"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func seq(from, to int) []int {
	result := []int{}
	for n := from; n <= to; n++ {
		result = append(result, n)
	}
	return result
}

func TestValidatePick(t *testing.T) {
	tests := []struct {
		name     string
		gameType entity.GameType
		pick     Pick
		wantErr  bool
	}{
		{name: "megasena", gameType: entity.MegaSena, pick: Pick{Numbers: seq(1, 6)}},
		{name: "megasena with 15 numbers", gameType: entity.MegaSena, pick: Pick{Numbers: seq(1, 15)}},
		{name: "megasena too many numbers", gameType: entity.MegaSena, pick: Pick{Numbers: seq(1, 16)}, wantErr: true},
		{name: "megasena too few numbers", gameType: entity.MegaSena, pick: Pick{Numbers: seq(1, 5)}, wantErr: true},
		{name: "megasena out of range", gameType: entity.MegaSena, pick: Pick{Numbers: seq(56, 61)}, wantErr: true},
		{name: "repeated numbers", gameType: entity.MegaSena, pick: Pick{Numbers: []int{1, 1, 2, 3, 4, 5}}, wantErr: true},
		{name: "lotomania", gameType: entity.Lotomania, pick: Pick{Numbers: seq(0, 49)}},
		{name: "lotomania requires 50", gameType: entity.Lotomania, pick: Pick{Numbers: seq(0, 48)}, wantErr: true},
		{name: "maismilionaria", gameType: entity.MaisMilionaria, pick: Pick{Numbers: seq(1, 6), Clovers: []int{1, 6}}},
		{name: "maismilionaria without clovers", gameType: entity.MaisMilionaria, pick: Pick{Numbers: seq(1, 6)}, wantErr: true},
		{name: "maismilionaria clover out of range", gameType: entity.MaisMilionaria, pick: Pick{Numbers: seq(1, 6), Clovers: []int{1, 7}}, wantErr: true},
		{name: "clovers on megasena", gameType: entity.MegaSena, pick: Pick{Numbers: seq(1, 6), Clovers: []int{1, 2}}, wantErr: true},
		{name: "diadasorte month", gameType: entity.DiaDeSorte, pick: Pick{Numbers: seq(1, 7), LuckyMonth: "Março"}},
		{name: "diadasorte invalid month", gameType: entity.DiaDeSorte, pick: Pick{Numbers: seq(1, 7), LuckyMonth: "Smarch"}, wantErr: true},
		{name: "unknown game", gameType: entity.GameType("loto"), pick: Pick{Numbers: seq(1, 6)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePick(tt.gameType, tt.pick)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDraw(t *testing.T) {
	require.NoError(t, ValidateDraw(&entity.Draw{
		GameType: entity.MegaSena, SequenceNumber: 1, Numbers: seq(1, 6),
	}))

	require.NoError(t, ValidateDraw(&entity.Draw{
		GameType: entity.DuplaSena, SequenceNumber: 1, Numbers: seq(1, 6), SecondaryNumbers: seq(10, 15),
	}))

	require.NoError(t, ValidateDraw(&entity.Draw{
		GameType: entity.Lotomania, SequenceNumber: 1, Numbers: seq(80, 99),
	}))

	require.ErrorIs(t, ValidateDraw(&entity.Draw{
		GameType: entity.DuplaSena, SequenceNumber: 1, Numbers: seq(1, 6),
	}), ErrInvalidInput)

	require.ErrorIs(t, ValidateDraw(&entity.Draw{
		GameType: entity.MegaSena, SequenceNumber: 0, Numbers: seq(1, 6),
	}), ErrInvalidInput)

	require.ErrorIs(t, ValidateDraw(&entity.Draw{
		GameType: entity.Quina, SequenceNumber: 1, Numbers: seq(1, 6),
	}), ErrInvalidInput)
}

func TestRandomPick(t *testing.T) {
	for _, gameType := range entity.AllGameTypes() {
		pick, err := RandomPick(gameType, 0)
		require.NoError(t, err)
		require.NoError(t, ValidatePick(gameType, pick), gameType)
	}

	pick, err := RandomPick(entity.MegaSena, 10)
	require.NoError(t, err)
	require.Len(t, pick.Numbers, 10)
	require.Equal(t, Normalize(pick.Numbers), pick.Numbers)

	_, err = RandomPick(entity.MegaSena, 20)
	require.ErrorIs(t, err, ErrInvalidInput)
}
