package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/catalog"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
	"github.com/thraizz/tableau-server-go/internal/game/piles"
	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

// Notification types emitted by a Game.
const (
	NotificationGameStarted = "GAME_STARTED"
	NotificationRoundStart  = "ROUND_START"
	NotificationPhase       = "PHASE_OUTCOME"
	NotificationGameEnded   = "GAME_ENDED"
)

// Notification describes a change in a game for external observers.
type Notification struct {
	Type      string
	GameID    string
	PlayerID  string // empty for broadcast
	Timestamp time.Time
	Data      map[string]interface{}
}

// NotificationHandler receives game notifications. It is called synchronously
// from the goroutine driving the game and must not call back into it.
type NotificationHandler func(notification Notification)

// Settings controls how a game is dealt and played.
type Settings struct {
	StartingHand int
	Phases       []rules.Phase
	// Seed makes shuffling deterministic; 0 picks a random seed.
	Seed        uint64
	StartWorlds bool
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		StartingHand: 4,
		Phases:       rules.DefaultSequence(),
	}
}

type seat struct {
	player  *Player
	chooser choice.Chooser
}

// Game is one table: a catalog, shared piles, and seated players. A Game is
// not safe for concurrent use; Manager serialises access to it.
type Game struct {
	ID string

	catalog  *catalog.Catalog
	settings Settings
	logger   *zap.Logger
	rng      *rand.Rand
	piles    *piles.Piles
	seats    []*seat
	turns    *rules.TurnManager
	history  *History

	handlerMu sync.RWMutex
	handler   NotificationHandler
}

// NewGame creates a game and shuffles the catalog's deck into fresh piles.
func NewGame(id string, cat *catalog.Catalog, settings Settings, logger *zap.Logger) (*Game, error) {
	if cat == nil {
		return nil, fmt.Errorf("new game %s: nil catalog", id)
	}
	if settings.StartingHand < 0 {
		return nil, fmt.Errorf("new game %s: negative starting hand %d", id, settings.StartingHand)
	}
	if len(settings.Phases) == 0 {
		settings.Phases = rules.DefaultSequence()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("game_id", id))

	seed := settings.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	g := &Game{
		ID:       id,
		catalog:  cat,
		settings: settings,
		logger:   logger,
		rng:      rng,
		piles:    piles.New(cat.Deck(), piles.WithRand(rng), piles.WithLogger(logger)),
		history:  NewHistory(id),
	}
	logger.Info("game created",
		zap.Int("deck", g.piles.DrawCount()),
		zap.Uint64("seed", seed),
	)
	return g, nil
}

// SetNotificationHandler sets the handler for game notifications.
func (g *Game) SetNotificationHandler(handler NotificationHandler) {
	g.handlerMu.Lock()
	defer g.handlerMu.Unlock()
	g.handler = handler
}

func (g *Game) emit(kind, playerID string, data map[string]interface{}) {
	g.handlerMu.RLock()
	handler := g.handler
	g.handlerMu.RUnlock()
	if handler == nil {
		return
	}
	handler(Notification{
		Type:      kind,
		GameID:    g.ID,
		PlayerID:  playerID,
		Timestamp: time.Now(),
		Data:      data,
	})
}

// AddPlayer seats a player driven by chooser.
func (g *Game) AddPlayer(name string, chooser choice.Chooser) (*Player, error) {
	if g.turns != nil {
		return nil, ErrAlreadyDealt
	}
	if chooser == nil {
		return nil, fmt.Errorf("add player %s: nil chooser", name)
	}
	p := NewPlayer(name, g.logger)
	g.seats = append(g.seats, &seat{player: p, chooser: chooser})
	return p, nil
}

// Players returns the players in seat order.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.seats))
	for i, s := range g.seats {
		out[i] = s.player
	}
	return out
}

// Player looks up a player by ID.
func (g *Game) Player(id string) (*Player, bool) {
	for _, s := range g.seats {
		if s.player.ID == id {
			return s.player, true
		}
	}
	return nil, false
}

// Piles returns the shared piles.
func (g *Game) Piles() *piles.Piles { return g.piles }

// History returns the record of resolved phases.
func (g *Game) History() *History { return g.history }

// Round returns the current round number, or 0 before the deal.
func (g *Game) Round() int {
	if g.turns == nil {
		return 0
	}
	return g.turns.RoundNumber()
}

// Deal gives each player a starting world, when enabled, and draws every
// hand up to the starting size.
func (g *Game) Deal() error {
	if len(g.seats) == 0 {
		return ErrNoPlayers
	}
	if g.turns != nil {
		return ErrAlreadyDealt
	}

	ids := make([]string, len(g.seats))
	for i, s := range g.seats {
		ids[i] = s.player.ID
	}

	if g.settings.StartWorlds {
		worlds := g.catalog.StartWorlds()
		if len(worlds) == 0 {
			return fmt.Errorf("deal: catalog has no start worlds")
		}
		order := g.rng.Perm(len(worlds))
		for i, s := range g.seats {
			world := worlds[order[i%len(worlds)]]
			s.player.PlaceInTableau(world)
			g.logger.Debug("placed start world",
				zap.String("player_id", s.player.ID),
				zap.String("card", world.Name()))
		}
	}

	for _, s := range g.seats {
		if err := s.player.DrawUpTo(g.piles, g.settings.StartingHand); err != nil {
			return fmt.Errorf("deal %s: %w", s.player.Name, err)
		}
	}

	g.turns = rules.NewTurnManager(ids, g.settings.Phases)
	g.history.Record(g.entry(nil))
	g.emit(NotificationGameStarted, "", map[string]interface{}{
		"players":       ids,
		"starting_hand": g.settings.StartingHand,
	})
	g.logger.Info("game dealt",
		zap.Strings("players", ids),
		zap.Int("starting_hand", g.settings.StartingHand),
		zap.Bool("start_worlds", g.settings.StartWorlds),
	)
	return nil
}

// Step resolves the current (player, phase) and advances.
func (g *Game) Step() (*Outcome, error) {
	if g.turns == nil {
		return nil, ErrNotDealt
	}
	s := g.seats[g.turns.CurrentSeat()]
	phase := g.turns.CurrentPhase()

	out, err := s.player.Act(phase, g.piles, s.chooser)
	if err != nil {
		return out, err
	}
	g.history.Record(g.entry(out))
	g.emit(NotificationPhase, s.player.ID, map[string]interface{}{
		"round":   g.turns.RoundNumber(),
		"phase":   phase.String(),
		"summary": out.Summary(),
	})

	if g.turns.Advance() {
		g.emit(NotificationRoundStart, "", map[string]interface{}{"round": g.turns.RoundNumber()})
	}
	return out, nil
}

// PlayRound resolves every configured phase for every player once, starting
// from the current position.
func (g *Game) PlayRound() ([]*Outcome, error) {
	return g.playRound(context.Background())
}

func (g *Game) playRound(ctx context.Context) ([]*Outcome, error) {
	if g.turns == nil {
		return nil, ErrNotDealt
	}
	steps := g.turns.Steps()
	outcomes := make([]*Outcome, 0, steps)
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		out, err := g.Step()
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// Run plays rounds rounds. Cancellation is observed only between phases; a
// phase in progress always completes.
func (g *Game) Run(ctx context.Context, rounds int) error {
	for r := 0; r < rounds; r++ {
		if _, err := g.playRound(ctx); err != nil {
			return fmt.Errorf("round %d: %w", g.Round(), err)
		}
	}
	g.emit(NotificationGameEnded, "", map[string]interface{}{"rounds": rounds})
	g.logger.Info("game finished",
		zap.Int("rounds", rounds),
		zap.Int("reshuffles", g.piles.Reshuffles()),
	)
	return nil
}

func (g *Game) entry(out *Outcome) Entry {
	e := Entry{Round: g.Round()}
	if out != nil {
		e.PlayerID = out.PlayerID
		e.Phase = out.Phase.String()
		e.Summary = out.Summary()
	} else {
		e.Summary = "dealt"
	}
	if sum, err := g.Snapshot().ComputeChecksum(); err == nil {
		e.Checksum = sum.Hash
	} else {
		g.logger.Warn("failed to compute snapshot checksum", zap.Error(err))
	}
	return e
}
