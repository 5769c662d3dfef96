package game

import "errors"

var (
	// ErrInvariant marks a broken precondition inside phase resolution. It is
	// never recoverable.
	ErrInvariant = errors.New("rules invariant violated")

	// ErrInsufficientPayment is returned when a mandated payment exceeds the
	// cards left in hand.
	ErrInsufficientPayment = errors.New("not enough cards in hand to pay")

	// ErrGameNotFound is returned by Manager for an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrNoPlayers is returned when a game is dealt without players.
	ErrNoPlayers = errors.New("game has no players")

	// ErrAlreadyDealt is returned when players are added after the deal.
	ErrAlreadyDealt = errors.New("game already dealt")

	// ErrNotDealt is returned when a game is played before Deal.
	ErrNotDealt = errors.New("game not dealt")
)
