package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/config"
	"github.com/thraizz/tableau-server-go/internal/game"
	"github.com/thraizz/tableau-server-go/internal/game/catalog"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	rounds     = flag.Int("rounds", 0, "number of rounds to play (overrides config)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	// A missing .env is fine; the environment and config file still apply.
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}

	logger.Info("starting tableau",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	phases, err := cfg.Game.ParsedPhases()
	if err != nil {
		logger.Fatal("invalid phase sequence", zap.Error(err))
	}
	toPlay := cfg.Game.Rounds
	if *rounds > 0 {
		toPlay = *rounds
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	consoles := choice.NewConsoles(os.Stdin, os.Stdout, cfg.Game.Players...)
	seats := make([]game.Seat, len(consoles))
	for i, c := range consoles {
		seats[i] = game.Seat{Name: cfg.Game.Players[i], Chooser: c}
	}

	mgr := game.NewManager(catalog.Default(), logger)
	gameID, err := mgr.StartGame(game.Settings{
		StartingHand: cfg.Game.StartingHand,
		Phases:       phases,
		Seed:         cfg.Game.Seed,
		StartWorlds:  cfg.Game.StartWorlds,
	}, seats)
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}

	err = mgr.Do(gameID, func(g *game.Game) error {
		g.SetNotificationHandler(func(n game.Notification) {
			if n.Type != game.NotificationPhase {
				return
			}
			if p, ok := g.Player(n.PlayerID); ok {
				fmt.Printf("%s %v\n", p.Name, n.Data["summary"])
			}
		})
		runErr := g.Run(ctx, toPlay)
		for _, p := range g.Players() {
			fmt.Printf("\n%s\n%s\n", p.Name, p.DescribeTableau())
		}
		return runErr
	})
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("game interrupted")
	case errors.Is(err, choice.ErrNoDecision):
		logger.Info("input closed, stopping game")
	case errors.Is(err, game.ErrInvariant), errors.Is(err, game.ErrInsufficientPayment):
		logger.Fatal("game aborted", zap.Error(err))
	default:
		logger.Error("game failed", zap.Error(err))
	}

	if err := mgr.EndGame(gameID); err != nil {
		logger.Warn("failed to end game", zap.Error(err))
	}
	logger.Info("tableau stopped")
}
