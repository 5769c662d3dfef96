package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

// EnvPrefix prefixes every environment override, e.g. TABLEAU_GAME_ROUNDS.
const EnvPrefix = "TABLEAU"

// Config holds all configuration for the tableau tools.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// GameConfig controls how games are dealt and played.
type GameConfig struct {
	Players      []string `mapstructure:"players"`
	StartingHand int      `mapstructure:"starting_hand"`
	Rounds       int      `mapstructure:"rounds"`
	Phases       []string `mapstructure:"phases"`
	Seed         uint64   `mapstructure:"seed"`
	StartWorlds  bool     `mapstructure:"start_worlds"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig configures the catalog exporter.
type CatalogConfig struct {
	DatabaseURL string `mapstructure:"database_url"`
	BatchSize   int    `mapstructure:"batch_size"`
}

// Load reads configuration from path, if it exists, then applies
// environment overrides. An empty path uses defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", []string{"Player 1", "Player 2"})
	v.SetDefault("game.starting_hand", 4)
	v.SetDefault("game.rounds", 5)
	v.SetDefault("game.phases", []string{"explore", "develop", "settle"})
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.start_worlds", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("catalog.database_url", "")
	v.SetDefault("catalog.batch_size", 100)
}

// Validate checks the values Load cannot express as defaults.
func (c *Config) Validate() error {
	if len(c.Game.Players) < 1 {
		return errors.New("game.players must name at least one player")
	}
	for i, name := range c.Game.Players {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("game.players[%d] is empty", i)
		}
	}
	if c.Game.StartingHand < 0 {
		return fmt.Errorf("game.starting_hand must not be negative, got %d", c.Game.StartingHand)
	}
	if c.Game.Rounds < 0 {
		return fmt.Errorf("game.rounds must not be negative, got %d", c.Game.Rounds)
	}
	if _, err := c.Game.ParsedPhases(); err != nil {
		return fmt.Errorf("game.phases: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Catalog.BatchSize < 1 {
		return fmt.Errorf("catalog.batch_size must be positive, got %d", c.Catalog.BatchSize)
	}
	return nil
}

// NewLogger builds the zap logger this section describes: JSON production
// output for format "json", colourised development output otherwise.
func (l LoggingConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if l.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

// ParsedPhases returns the configured phase sequence.
func (g GameConfig) ParsedPhases() ([]rules.Phase, error) {
	if len(g.Phases) == 0 {
		return rules.DefaultSequence(), nil
	}
	return rules.ParsePhases(g.Phases)
}
