package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	database, err := Connect("file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	defer database.Close()
	database.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(database.DB))
	// Running again is a no-op.
	require.NoError(t, RunMigrations(database.DB))

	var tables []string
	err = database.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != 'schema_migrations' ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"classes", "league_matches", "league_teams", "tournament_matches"}, tables)
}

func TestForeignKeysEnforced(t *testing.T) {
	database, err := Connect("file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	defer database.Close()
	database.SetMaxOpenConns(1)
	require.NoError(t, RunMigrations(database.DB))

	_, err = database.Exec("INSERT INTO league_teams (sport, league, class_id) VALUES ('サッカー', 'A', 42)")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file:class_match.db?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", DSN("class_match.db"))
}
