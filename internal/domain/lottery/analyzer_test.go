package lottery

import (
	"testing"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func draws(sets ...[]int) []entity.Draw {
	result := []entity.Draw{}
	for i, s := range sets {
		result = append(result, entity.Draw{
			GameType:       entity.MegaSena,
			SequenceNumber: int64(i + 1),
			Numbers:        s,
		})
	}

	return result
}

func TestAnalyzeCombinations(t *testing.T) {
	history := draws([]int{1, 2, 3}, []int{4, 5, 6}, []int{1, 2, 3})

	tests := []struct {
		name         string
		draws        []entity.Draw
		combinations [][]int
		want         []AnalysisResult
		wantErr      bool
	}{
		{
			name:         "target hits twice",
			draws:        history,
			combinations: [][]int{{1, 2, 3}},
			want: []AnalysisResult{{
				Numbers:              []int{1, 2, 3},
				Occurrences:          2,
				OccurrencePercentage: 66.67,
				CurrentDelay:         0,
				MaxDelay:             1,
				MaxStreak:            1,
				LastHitSequence:      ptr(int64(3)),
				MeanDelay:            1,
			}},
		},
		{
			name:         "target never hits",
			draws:        history,
			combinations: [][]int{{7, 8, 9}},
			want: []AnalysisResult{{
				Numbers:              []int{7, 8, 9},
				Occurrences:          0,
				OccurrencePercentage: 0,
				CurrentDelay:         3,
				MaxDelay:             3,
				MaxStreak:            0,
			}},
		},
		{
			name:         "empty history",
			draws:        nil,
			combinations: [][]int{{1, 2}},
			want:         []AnalysisResult{{Numbers: []int{1, 2}}},
		},
		{
			name:         "sorted by occurrences",
			draws:        history,
			combinations: [][]int{{4, 5}, {7}, {2, 1}},
			want: []AnalysisResult{
				{
					Numbers: []int{1, 2}, Occurrences: 2, OccurrencePercentage: 66.67,
					MaxDelay: 1, MaxStreak: 1, LastHitSequence: ptr(int64(3)), MeanDelay: 1,
				},
				{
					Numbers: []int{4, 5}, Occurrences: 1, OccurrencePercentage: 33.33,
					CurrentDelay: 1, MaxDelay: 1, MaxStreak: 1, LastHitSequence: ptr(int64(2)), MeanDelay: 1,
				},
				{
					Numbers: []int{7}, CurrentDelay: 3, MaxDelay: 3,
				},
			},
		},
		{
			name:         "no combination",
			draws:        history,
			combinations: nil,
			wantErr:      true,
		},
		{
			name:         "combination larger than drawn count",
			draws:        history,
			combinations: [][]int{{1, 2, 3, 4, 5, 6, 7}},
			wantErr:      true,
		},
		{
			name:         "number out of range",
			draws:        history,
			combinations: [][]int{{0, 1}},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeCombinations(entity.MegaSena, tt.draws, tt.combinations)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeCombinations_Streak(t *testing.T) {
	history := draws(
		[]int{1, 2}, []int{1, 5}, []int{1, 9}, []int{3, 4}, []int{3, 4}, []int{3, 4}, []int{1, 7},
		[]int{3, 4},
	)

	got, err := AnalyzeCombinations(entity.MegaSena, history, [][]int{{1}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 4, got[0].Occurrences)
	require.Equal(t, 3, got[0].MaxStreak)
	require.Equal(t, 3, got[0].MaxDelay)
	require.Equal(t, 1, got[0].CurrentDelay)
	require.Equal(t, 50.0, got[0].OccurrencePercentage)
}

func TestAnalyzeCombinations_DualDraw(t *testing.T) {
	history := []entity.Draw{
		{GameType: entity.DuplaSena, SequenceNumber: 1, Numbers: []int{1, 2, 3, 4, 5, 6}, SecondaryNumbers: []int{10, 11, 12, 13, 14, 15}},
		{GameType: entity.DuplaSena, SequenceNumber: 2, Numbers: []int{7, 8, 9, 10, 11, 12}, SecondaryNumbers: []int{20, 21, 22, 23, 24, 25}},
	}

	got, err := AnalyzeCombinations(entity.DuplaSena, history, [][]int{{10, 11}, {1, 10}})
	require.NoError(t, err)
	require.Equal(t, []int{10, 11}, got[0].Numbers)
	require.Equal(t, 2, got[0].Occurrences)

	// A combination spread over both sorteios is not a hit.
	require.Equal(t, []int{1, 10}, got[1].Numbers)
	require.Equal(t, 0, got[1].Occurrences)
}

func TestAnalyzeNumbers(t *testing.T) {
	history := draws(
		[]int{5, 6}, []int{1, 6}, []int{2, 3}, []int{4, 7}, []int{5, 6}, []int{1, 2},
	)

	got, err := AnalyzeNumbers(entity.MegaSena, history, []int{6, 5, 60, 6})
	require.NoError(t, err)
	require.Equal(t, []AnalysisResult{
		{
			Numbers: []int{6}, Occurrences: 3, OccurrencePercentage: 50,
			CurrentDelay: 1, MaxDelay: 2, MaxStreak: 2,
			LastHitSequence: ptr(int64(5)), MeanDelay: 2,
		},
		{
			Numbers: []int{5}, Occurrences: 2, OccurrencePercentage: 33.33,
			CurrentDelay: 1, MaxDelay: 3, MaxStreak: 1,
			LastHitSequence: ptr(int64(5)), MeanDelay: 3,
		},
		{
			Numbers: []int{60}, CurrentDelay: 6, MaxDelay: 6,
		},
		{
			Numbers: []int{6}, Occurrences: 3, OccurrencePercentage: 50,
			CurrentDelay: 1, MaxDelay: 2, MaxStreak: 2,
			LastHitSequence: ptr(int64(5)), MeanDelay: 2,
		},
	}, got)

	_, err = AnalyzeNumbers(entity.MegaSena, history, []int{61})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = AnalyzeNumbers(entity.MegaSena, history, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckTargets(t *testing.T) {
	require.NoError(t, CheckCombinations(entity.Quina, [][]int{{1, 80}, {5}}))
	require.ErrorIs(t, CheckCombinations(entity.Quina, [][]int{{1, 81}}), ErrInvalidInput)
	require.ErrorIs(t, CheckCombinations(entity.Quina, [][]int{{1, 2, 3, 4, 5, 6}}), ErrInvalidInput)
	require.ErrorIs(t, CheckCombinations(entity.Quina, nil), ErrInvalidInput)
	require.ErrorIs(t, CheckCombinations(entity.GameType("bingo"), [][]int{{1}}), ErrInvalidInput)

	require.NoError(t, CheckNumbers(entity.Lotofacil, []int{1, 25, 1}))
	require.ErrorIs(t, CheckNumbers(entity.Lotofacil, []int{26}), ErrInvalidInput)
	require.ErrorIs(t, CheckNumbers(entity.Lotofacil, nil), ErrInvalidInput)
}

func TestAnalyze_Properties(t *testing.T) {
	history := draws(
		[]int{1, 2, 3, 4, 5, 6}, []int{1, 7, 8, 9, 10, 11}, []int{2, 3, 12, 13, 14, 15},
		[]int{1, 2, 16, 17, 18, 19}, []int{20, 21, 22, 23, 24, 25},
	)

	for n := 1; n <= 25; n++ {
		got, err := AnalyzeNumbers(entity.MegaSena, history, []int{n})
		require.NoError(t, err)

		count := 0
		lastHit := -1
		for i, d := range history {
			if IsSubset([]int{n}, d.Numbers) {
				count++
				lastHit = i
			}
		}

		r := got[0]
		require.Equal(t, count, r.Occurrences)
		require.Equal(t, r.Occurrences >= 1, r.MaxStreak >= 1)
		require.Equal(t, r.Occurrences == 0, r.MaxStreak == 0)
		if lastHit >= 0 {
			require.Equal(t, len(history)-1-lastHit, r.CurrentDelay)
		} else {
			require.Equal(t, len(history), r.CurrentDelay)
		}

		again, err := AnalyzeNumbers(entity.MegaSena, history, []int{n})
		require.NoError(t, err)
		require.Equal(t, got, again)
	}
}

func ptr[T any](v T) *T {
	return &v
}
