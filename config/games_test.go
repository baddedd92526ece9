package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gametool/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGames_Embedded(t *testing.T) {
	t.Parallel()

	catalog, err := LoadGames("")
	require.NoError(t, err)
	require.Len(t, catalog.Games(), 3)

	lotto, err := catalog.GameByName("lotto649")
	require.NoError(t, err)
	assert.Equal(t, 1, lotto.Number)
	assert.Equal(t, "Lotto 6/49", lotto.Description)
	assert.True(t, decimal.RequireFromString("3").Equal(lotto.BoardPrice))
	assert.Equal(t, 6, lotto.Picks)
	assert.Equal(t, 49, lotto.Pool)
	require.True(t, lotto.HasRider())
	assert.Equal(t, "EXTRA", lotto.Rider.Name)
	assert.True(t, decimal.RequireFromString("1").Equal(lotto.Rider.Price))
	assert.Equal(t, "0 22 * * 3,6", lotto.Schedule)
	assert.Equal(t, 3000, lotto.AnchorDraw)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), lotto.AnchorDate)

	byNumber, err := catalog.GameByNumber(1)
	require.NoError(t, err)
	assert.Same(t, lotto, byNumber)

	daily, err := catalog.GameByName("DAILYGRAND")
	require.NoError(t, err)
	assert.False(t, daily.HasRider())
}

func TestGameCatalog_Unknown(t *testing.T) {
	t.Parallel()

	catalog, err := LoadGames("")
	require.NoError(t, err)

	_, err = catalog.GameByName("KENO")
	assert.ErrorIs(t, err, models.ErrUnknownGame)

	_, err = catalog.GameByNumber(99)
	assert.ErrorIs(t, err, models.ErrUnknownGame)
}

func TestLoadGames_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
games:
  - name: PICK3
    number: 9
    description: Pick 3
    board_price: "1.50"
    picks: 3
    pool: 9
    schedule: "0 19 * * *"
    anchor_draw: 1
    anchor_date: 2024-06-01
`), 0o600))

	catalog, err := LoadGames(path)
	require.NoError(t, err)

	game, err := catalog.GameByNumber(9)
	require.NoError(t, err)
	assert.Equal(t, "PICK3", game.Name)
	assert.True(t, decimal.RequireFromString("1.5").Equal(game.BoardPrice))

	_, err = LoadGames(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseGames_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not yaml",
			yaml:    "games: [",
			wantErr: "failed to parse games",
		},
		{
			name:    "missing name",
			yaml:    "games:\n  - number: 1\n",
			wantErr: "has no name",
		},
		{
			name:    "duplicate name",
			yaml:    "games:\n  - name: A\n    number: 1\n  - name: a\n    number: 2\n",
			wantErr: "duplicate game name",
		},
		{
			name:    "duplicate number",
			yaml:    "games:\n  - name: A\n    number: 1\n  - name: B\n    number: 1\n",
			wantErr: "duplicate game number",
		},
		{
			name:    "negative price",
			yaml:    "games:\n  - name: A\n    number: 1\n    board_price: -1\n",
			wantErr: "negative board price",
		},
		{
			name:    "picks exceed pool",
			yaml:    "games:\n  - name: A\n    number: 1\n    picks: 7\n    pool: 6\n",
			wantErr: "pool of 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseGames([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
