package game

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// payTradeCost discards exactly price cards chosen from the hand. The card
// being acquired must already be in the tableau.
func (p *Player) payTradeCost(piles Piles, chooser choice.Chooser, price int) ([]*cards.Card, error) {
	if price <= 0 {
		chooser.Notify("Your cost is 0.")
		return nil, nil
	}
	if price > len(p.hand) {
		return nil, fmt.Errorf("%w: price %d, hand %d", ErrInsufficientPayment, price, len(p.hand))
	}

	prompt := fmt.Sprintf("Choose %d cards to discard as payment.", price)
	picks, err := selectMany(chooser, prompt, optionStrings(p.hand), price)
	if err != nil {
		return nil, fmt.Errorf("pay %d: %w", price, err)
	}

	// Remove from the highest index down so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(picks)))
	paid := make([]*cards.Card, 0, price)
	for _, i := range picks {
		card := p.removeFromHand(i)
		piles.Discard(card)
		paid = append(paid, card)
	}
	// Report in hand order.
	for i, j := 0, len(paid)-1; i < j; i, j = i+1, j-1 {
		paid[i], paid[j] = paid[j], paid[i]
	}

	p.logger.Debug("paid trade cost",
		zap.Int("price", price),
		zap.Int("hand", len(p.hand)),
	)
	return paid, nil
}
