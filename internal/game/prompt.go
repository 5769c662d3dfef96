package game

import (
	"fmt"

	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// selectMany asks until the chooser returns exactly n distinct valid indices.
func selectMany(ch choice.Chooser, prompt string, options []string, n int) ([]int, error) {
	for {
		picks, err := ch.SelectMany(prompt, options, n)
		if err != nil {
			return nil, err
		}
		if choice.ValidSelection(picks, n, len(options)) {
			return picks, nil
		}
		ch.Notify(fmt.Sprintf("Choose exactly %d distinct cards.", n))
	}
}

// selectOne asks until the chooser returns a valid index.
func selectOne(ch choice.Chooser, prompt string, options []string) (int, error) {
	for {
		idx, err := ch.SelectOne(prompt, options)
		if err != nil {
			return 0, err
		}
		if choice.ValidIndex(idx, len(options)) {
			return idx, nil
		}
		ch.Notify(fmt.Sprintf("Choose a number between 1 and %d.", len(options)))
	}
}

// selectOptional asks until the chooser declines or returns a valid index
// that accept approves. accept returns a reason to show when it refuses.
func selectOptional(ch choice.Chooser, prompt string, options []string, accept func(int) (bool, string)) (int, bool, error) {
	for {
		idx, ok, err := ch.SelectOptional(prompt, options)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		if !choice.ValidIndex(idx, len(options)) {
			ch.Notify(fmt.Sprintf("Choose a number between 1 and %d, or none.", len(options)))
			continue
		}
		if accept != nil {
			if good, reason := accept(idx); !good {
				ch.Notify(reason)
				continue
			}
		}
		return idx, true, nil
	}
}
