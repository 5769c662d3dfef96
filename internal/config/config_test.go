package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Player 1", "Player 2"}, cfg.Game.Players)
	assert.Equal(t, 4, cfg.Game.StartingHand)
	assert.Equal(t, 5, cfg.Game.Rounds)
	assert.Equal(t, uint64(0), cfg.Game.Seed)
	assert.False(t, cfg.Game.StartWorlds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 100, cfg.Catalog.BatchSize)

	phases, err := cfg.Game.ParsedPhases()
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultSequence(), phases)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.StartingHand)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
game:
  players: [Alice, Bob, Carol]
  starting_hand: 6
  rounds: 2
  phases: [settle, explore]
  seed: 42
  start_worlds: true
logging:
  level: debug
  format: json
catalog:
  database_url: postgres://localhost/tableau
  batch_size: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Game.Players)
	assert.Equal(t, 6, cfg.Game.StartingHand)
	assert.Equal(t, 2, cfg.Game.Rounds)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.True(t, cfg.Game.StartWorlds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "postgres://localhost/tableau", cfg.Catalog.DatabaseURL)
	assert.Equal(t, 10, cfg.Catalog.BatchSize)

	phases, err := cfg.Game.ParsedPhases()
	require.NoError(t, err)
	assert.Equal(t, []rules.Phase{rules.PhaseSettle, rules.PhaseExplore}, phases)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TABLEAU_GAME_ROUNDS", "9")
	t.Setenv("TABLEAU_LOGGING_LEVEL", "warn")
	t.Setenv("TABLEAU_CATALOG_DATABASE_URL", "postgres://env/tableau")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Game.Rounds)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "postgres://env/tableau", cfg.Catalog.DatabaseURL)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown phase", map[string]string{"TABLEAU_GAME_PHASES": "explore,produce"}},
		{"negative hand", map[string]string{"TABLEAU_GAME_STARTING_HAND": "-1"}},
		{"bad level", map[string]string{"TABLEAU_LOGGING_LEVEL": "loud"}},
		{"zero batch", map[string]string{"TABLEAU_CATALOG_BATCH_SIZE": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoggingNewLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = LoggingConfig{Level: "debug", Format: "console"}.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = LoggingConfig{Level: "loud"}.NewLogger()
	assert.Error(t, err)
}

func TestValidateRequiresPlayers(t *testing.T) {
	cfg := &Config{
		Game:    GameConfig{StartingHand: 4},
		Logging: LoggingConfig{Level: "info"},
		Catalog: CatalogConfig{BatchSize: 1},
	}
	assert.Error(t, cfg.Validate())

	cfg.Game.Players = []string{"Alice", " "}
	assert.Error(t, cfg.Validate())

	cfg.Game.Players = []string{"Alice"}
	assert.NoError(t, cfg.Validate())
}
