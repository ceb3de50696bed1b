package drawupdater

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/loterias-lab/backend/internal/client"
	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/internal/repository"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mockCaixaClient struct {
	latest  int64
	missing map[int64]bool
	calls   []int64
}

func (m *mockCaixaClient) draw(gameType entity.GameType, seq int64) *entity.Draw {
	return &entity.Draw{
		GameType:          gameType,
		SequenceNumber:    seq,
		DrawDate:          time.Now(),
		Numbers:           entity.Array[int]{1, 2, 3, 4, 5, int(6 + seq%50)},
		Accumulated:       true,
		AccumulatedAmount: decimal.NewFromInt(seq * 1000),
	}
}

func (m *mockCaixaClient) GetLatest(ctx context.Context, gameType entity.GameType) (*entity.Draw, error) {
	if m.latest == 0 {
		return nil, errors.New("unavailable")
	}

	return m.draw(gameType, m.latest), nil
}

func (m *mockCaixaClient) GetBySequence(
	ctx context.Context, gameType entity.GameType, seq int64,
) (*entity.Draw, error) {
	m.calls = append(m.calls, seq)
	if m.missing[seq] {
		return nil, client.ErrDrawNotFound
	}

	return m.draw(gameType, seq), nil
}

func Test_updater_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	drawRepo := repository.NewDrawRepository()
	caixa := &mockCaixaClient{latest: 6, missing: map[int64]bool{5: true}}
	u := New(drawRepo, caixa)

	inserted, err := u.Update(ctx, entity.MegaSena)
	require.NoError(t, err)
	require.Equal(t, 2, inserted)
	require.Equal(t, []int64{4, 5}, caixa.calls)

	latest, err := drawRepo.GetLatest(ctx, entity.MegaSena)
	require.NoError(t, err)
	require.Equal(t, int64(6), latest.SequenceNumber)

	_, err = drawRepo.GetBySequence(ctx, entity.MegaSena, 5)
	require.Error(t, err)

	// Nothing new, the latest draw is refreshed.
	caixa.calls = nil
	inserted, err = u.Update(ctx, entity.MegaSena)
	require.NoError(t, err)
	require.Equal(t, 0, inserted)
	require.Empty(t, caixa.calls)

	count, err := drawRepo.Count(ctx, entity.MegaSena)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)

	caixa.latest = 0
	_, err = u.Update(ctx, entity.MegaSena)
	require.Error(t, err)
}

func Test_updater_Update_MaxBackfill(t *testing.T) {
	ctx := testutil.MockContext()

	drawRepo := repository.NewDrawRepository()
	caixa := &mockCaixaClient{latest: 1000}

	inserted, err := New(drawRepo, caixa).Update(ctx, entity.MegaSena)
	require.NoError(t, err)
	require.Equal(t, 10, inserted)
	require.Equal(t, int64(991), caixa.calls[0])

	// Remote numbers which do not fit the game are skipped.
	inserted, err = New(drawRepo, &mockCaixaClient{latest: 3}).Update(ctx, entity.Quina)
	require.NoError(t, err)
	require.Equal(t, 0, inserted)
}

func Test_ImportCSV(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	drawRepo := repository.NewDrawRepository()

	data := strings.Join([]string{
		"concurso,data,d1,d2,d3,d4,d5,d6",
		"3,05/01/2024,1,2,3,10,20,30",
		"4,2024-01-08,60,2,13,14,25,36",
		"5,09/01/2024,1,2,3",
		"6,12/01/2024,1,2,3,4,5,99",
		"7,15/01/2024,1,2,3,4,5,6",
	}, "\n")

	result, err := ImportCSV(ctx, drawRepo, entity.MegaSena, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, ImportResult{Inserted: 2, Skipped: 1, Failed: 2}, result)

	draw, err := drawRepo.GetBySequence(ctx, entity.MegaSena, 4)
	require.NoError(t, err)
	require.Equal(t, entity.Array[int]{2, 13, 14, 25, 36, 60}, draw.Numbers)
}

func Test_ImportCSV_Extras(t *testing.T) {
	ctx := testutil.MockContext()
	drawRepo := repository.NewDrawRepository()

	result, err := ImportCSV(ctx, drawRepo, entity.DuplaSena,
		strings.NewReader("2600,01/02/2024,1,2,3,4,5,6,10,9,8,7,6,5\n"))
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)

	draw, err := drawRepo.GetBySequence(ctx, entity.DuplaSena, 2600)
	require.NoError(t, err)
	require.Equal(t, entity.Array[int]{5, 6, 7, 8, 9, 10}, draw.SecondaryNumbers)

	result, err = ImportCSV(ctx, drawRepo, entity.DiaDeSorte,
		strings.NewReader("900,01/05/2024,1,2,3,4,5,6,7,Março\n"))
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)

	draw, err = drawRepo.GetBySequence(ctx, entity.DiaDeSorte, 900)
	require.NoError(t, err)
	require.Equal(t, "Março", draw.ExtraField)
}
