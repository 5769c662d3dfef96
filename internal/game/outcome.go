package game

import (
	"fmt"
	"strings"

	"github.com/thraizz/tableau-server-go/internal/game/capability"
	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

// ExploreResult records one explore. Kept and Discarded partition Revealed.
type ExploreResult struct {
	Revealed  []*cards.Card
	Kept      []*cards.Card
	Discarded []*cards.Card
}

// DevelopResult records one develop. Acquired is nil when the player passed.
type DevelopResult struct {
	Drawn    []*cards.Card
	Acquired *cards.Card
	Quote    capability.Quote
	Paid     []*cards.Card
}

// SettleResult records one settle. Acquired is nil when the player passed.
type SettleResult struct {
	Acquired *cards.Card
	Quote    capability.Quote
	Paid     []*cards.Card

	// Negated is the tableau card discarded to pay nothing, if any.
	Negated *cards.Card
	// Boosters are tableau cards discarded for temporary military.
	Boosters []*cards.Card
}

// Outcome is the result of one Act call. Exactly one of the phase results is
// set.
type Outcome struct {
	Phase    rules.Phase
	PlayerID string

	Explore *ExploreResult
	Develop *DevelopResult
	Settle  *SettleResult
}

// Summary renders the outcome as one line.
func (o *Outcome) Summary() string {
	switch {
	case o.Explore != nil:
		return fmt.Sprintf("explored %d, kept [%s]", len(o.Explore.Revealed), names(o.Explore.Kept))
	case o.Develop != nil:
		if o.Develop.Acquired == nil {
			return "developed nothing"
		}
		return fmt.Sprintf("developed %s, paid [%s]", o.Develop.Acquired.Name(), names(o.Develop.Paid))
	case o.Settle != nil:
		if o.Settle.Acquired == nil {
			return "settled nothing"
		}
		s := fmt.Sprintf("settled %s by %s, paid [%s]",
			o.Settle.Acquired.Name(), strings.ToLower(o.Settle.Quote.Method.String()), names(o.Settle.Paid))
		if o.Settle.Negated != nil {
			s += fmt.Sprintf(", discarded %s", o.Settle.Negated.Name())
		}
		if len(o.Settle.Boosters) > 0 {
			s += fmt.Sprintf(", discarded [%s] for military", names(o.Settle.Boosters))
		}
		return s
	default:
		return o.Phase.String()
	}
}

func names(cs []*cards.Card) string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return strings.Join(out, ", ")
}
