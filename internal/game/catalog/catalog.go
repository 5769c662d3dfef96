package catalog

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
)

// cardNamespace seeds deterministic card IDs so exported rows keep the same
// key across runs.
var cardNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("tableau-server-go/cards"))

// Entry is one catalog card and how many copies of it go into a deck.
type Entry struct {
	Card   *cards.Card
	Copies int
}

// Catalog is the immutable list of card definitions.
type Catalog struct {
	entries []Entry
	byName  map[string]*cards.Card
}

// New builds a catalog, rejecting duplicate names and non-positive copy counts.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]*cards.Card, len(entries)),
	}
	for _, e := range entries {
		if e.Card == nil {
			return nil, fmt.Errorf("catalog entry without card")
		}
		name := e.Card.Name()
		if _, exists := c.byName[name]; exists {
			return nil, fmt.Errorf("duplicate card name %q", name)
		}
		if e.Copies < 1 {
			return nil, fmt.Errorf("card %q has %d copies", name, e.Copies)
		}
		c.byName[name] = e.Card
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEntries())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Len returns the number of distinct cards.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog entries in definition order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds a card by name.
func (c *Catalog) Lookup(name string) (*cards.Card, bool) {
	card, ok := c.byName[name]
	return card, ok
}

// Names returns every card name sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns one pointer per distinct card matching keep.
func (c *Catalog) Filter(keep func(*cards.Card) bool) []*cards.Card {
	var out []*cards.Card
	for _, e := range c.entries {
		if keep(e.Card) {
			out = append(out, e.Card)
		}
	}
	return out
}

// StartWorlds returns the worlds tagged Starter.
func (c *Catalog) StartWorlds() []*cards.Card {
	return c.Filter(func(card *cards.Card) bool {
		return card.IsWorld() && card.HasAttribute(cards.AttributeStarter)
	})
}

// Deck returns the unshuffled draw pile contents: every non-starter card,
// repeated by its copy count.
func (c *Catalog) Deck() []*cards.Card {
	var deck []*cards.Card
	for _, e := range c.entries {
		if e.Card.HasAttribute(cards.AttributeStarter) {
			continue
		}
		for i := 0; i < e.Copies; i++ {
			deck = append(deck, e.Card)
		}
	}
	return deck
}

// CardID returns the stable identifier of a card, derived from its name.
func CardID(card *cards.Card) string {
	return CardIDForName(card.Name())
}

// CardIDForName returns the stable ID for the card named name.
func CardIDForName(name string) string {
	return uuid.NewSHA1(cardNamespace, []byte(name)).String()
}
