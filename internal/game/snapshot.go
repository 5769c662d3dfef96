package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/thraizz/tableau-server-go/internal/game/catalog"
)

// PlayerSnapshot is a read-only view of one player. Cards are listed by name.
type PlayerSnapshot struct {
	ID      string
	Name    string
	Hand    []string
	Tableau []string
}

// Snapshot is a read-only view of a game.
type Snapshot struct {
	GameID       string
	Round        int
	Phase        string
	ActivePlayer string
	Players      []PlayerSnapshot
	DrawCount    int
	DiscardCount int
	Reshuffles   int
	Timestamp    time.Time
}

// Checksum is a deterministic digest of a snapshot.
type Checksum struct {
	Hash      string // SHA-256 of the canonical representation
	Timestamp string
	Version   int
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		GameID:       g.ID,
		Round:        g.Round(),
		DrawCount:    g.piles.DrawCount(),
		DiscardCount: g.piles.DiscardCount(),
		Reshuffles:   g.piles.Reshuffles(),
		Timestamp:    time.Now().UTC(),
	}
	if g.turns != nil {
		s.Phase = g.turns.CurrentPhase().String()
		s.ActivePlayer = g.turns.ActivePlayer()
	}
	for _, seat := range g.seats {
		p := seat.player
		ps := PlayerSnapshot{ID: p.ID, Name: p.Name}
		for _, c := range p.hand {
			ps.Hand = append(ps.Hand, c.Name())
		}
		for _, c := range p.tableau {
			ps.Tableau = append(ps.Tableau, c.Name())
		}
		s.Players = append(s.Players, ps)
	}
	return s
}

// ComputeChecksum hashes the snapshot's canonical representation. The
// timestamp is excluded so equal states always hash equally.
func (s *Snapshot) ComputeChecksum() (*Checksum, error) {
	hash := sha256.New()
	if _, err := hash.Write([]byte(s.canonical())); err != nil {
		return nil, fmt.Errorf("failed to compute hash: %w", err)
	}
	return &Checksum{
		Hash:      hex.EncodeToString(hash.Sum(nil)),
		Timestamp: s.Timestamp.Format("2006-01-02T15:04:05.000Z"),
		Version:   1,
	}, nil
}

// VerifyChecksum reports whether the snapshot still hashes to expected.
func (s *Snapshot) VerifyChecksum(expected *Checksum) (bool, error) {
	computed, err := s.ComputeChecksum()
	if err != nil {
		return false, fmt.Errorf("failed to compute checksum: %w", err)
	}
	return computed.Hash == expected.Hash, nil
}

// canonical renders the snapshot independent of hand order. Tableau order is
// kept since it records acquisition order.
func (s *Snapshot) canonical() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "GAME:%s|%d|%s|%s|%d|%d|%d\n",
		s.GameID, s.Round, s.Phase, s.ActivePlayer, s.DrawCount, s.DiscardCount, s.Reshuffles)

	players := append([]PlayerSnapshot(nil), s.Players...)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	for _, p := range players {
		fmt.Fprintf(&buf, "PLAYER:%s|%s|%d|%d\n", p.ID, p.Name, len(p.Hand), len(p.Tableau))

		hand := append([]string(nil), p.Hand...)
		sort.Strings(hand)
		for _, name := range hand {
			fmt.Fprintf(&buf, "  HAND:%s\n", cardKey(name))
		}
		for _, name := range p.Tableau {
			fmt.Fprintf(&buf, "  TABLEAU:%s\n", cardKey(name))
		}
	}
	return buf.String()
}

func cardKey(name string) string {
	return catalog.CardIDForName(name)
}
