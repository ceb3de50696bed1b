package migration

import (
	"testing"

	"github.com/loterias-lab/backend/internal/entity"
	"github.com/loterias-lab/backend/pkg/testutil"
	"github.com/loterias-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_Migrate(t *testing.T) {
	ctx := testutil.MockContext()
	db := xcontext.DB(ctx)

	require.NoError(t, db.Create(&entity.SavedPick{
		Base:     entity.Base{ID: "pick1"},
		UserID:   "user1",
		GameType: entity.MegaSena,
		Numbers:  entity.Array[int]{1, 2, 3, 4, 5, 6},
	}).Error)
	require.NoError(t, db.Create(&entity.SavedPick{
		Base:     entity.Base{ID: "pick2"},
		UserID:   "user1",
		GameType: entity.Quina,
		Numbers:  entity.Array[int]{1, 2, 3, 4, 5},
		Label:    "Bolão",
	}).Error)

	require.NoError(t, Migrate(ctx))

	var picks []entity.SavedPick
	require.NoError(t, db.Order("id").Find(&picks).Error)
	require.Len(t, picks, 2)
	require.Equal(t, "Jogo Mega-Sena", picks[0].Label)
	require.Equal(t, "Bolão", picks[1].Label)

	version, err := currentVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, len(migrators), version)

	// Applied migrations are not run again.
	require.NoError(t, db.Model(&entity.SavedPick{}).Where("id=?", "pick1").Update("label", "").Error)
	require.NoError(t, Migrate(ctx))

	var pick entity.SavedPick
	require.NoError(t, db.Take(&pick, "id=?", "pick1").Error)
	require.Empty(t, pick.Label)

	var count int64
	require.NoError(t, db.Model(&entity.Migration{}).Count(&count).Error)
	require.Equal(t, int64(len(migrators)), count)
}
