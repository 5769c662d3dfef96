package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/catalog"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// Seat describes one player joining a game.
type Seat struct {
	Name    string
	Chooser choice.Chooser
}

type managedGame struct {
	mu   sync.Mutex
	game *Game
}

// Manager owns running games by ID. Each game is driven by at most one
// caller at a time.
type Manager struct {
	logger  *zap.Logger
	catalog *catalog.Catalog

	mu    sync.RWMutex
	games map[string]*managedGame
}

// NewManager creates a manager dealing games from cat.
func NewManager(cat *catalog.Catalog, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger:  logger,
		catalog: cat,
		games:   make(map[string]*managedGame),
	}
}

// StartGame creates, seats and deals a new game and returns its ID.
func (m *Manager) StartGame(settings Settings, seats []Seat) (string, error) {
	id := uuid.NewString()
	g, err := NewGame(id, m.catalog, settings, m.logger)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(seats))
	for _, s := range seats {
		if _, err := g.AddPlayer(s.Name, s.Chooser); err != nil {
			return "", err
		}
		names = append(names, s.Name)
	}
	if err := g.Deal(); err != nil {
		return "", fmt.Errorf("start game %s: %w", id, err)
	}

	m.mu.Lock()
	m.games[id] = &managedGame{game: g}
	m.mu.Unlock()

	m.logger.Info("started game",
		zap.String("game_id", id),
		zap.Strings("players", names),
	)
	return id, nil
}

// Do runs fn with exclusive access to the game.
func (m *Manager) Do(gameID string, fn func(*Game) error) error {
	m.mu.RLock()
	mg, ok := m.games[gameID]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	mg.mu.Lock()
	defer mg.mu.Unlock()
	return fn(mg.game)
}

// Get returns a snapshot of the game.
func (m *Manager) Get(gameID string) (*Snapshot, error) {
	var snap *Snapshot
	err := m.Do(gameID, func(g *Game) error {
		snap = g.Snapshot()
		return nil
	})
	return snap, err
}

// EndGame removes the game.
func (m *Manager) EndGame(gameID string) error {
	m.mu.Lock()
	mg, ok := m.games[gameID]
	delete(m.games, gameID)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	// Wait for any caller still driving the game.
	mg.mu.Lock()
	rounds := mg.game.Round()
	mg.mu.Unlock()

	m.logger.Info("ended game",
		zap.String("game_id", gameID),
		zap.Int("round", rounds),
	)
	return nil
}

// List returns the IDs of running games, sorted.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
