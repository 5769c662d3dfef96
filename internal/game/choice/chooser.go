package choice

//go:generate mockgen -destination=mock/mock_chooser.go -package=mockchoice -source=chooser.go

import "errors"

// ErrNoDecision is returned when a decision source can no longer answer, for
// example because its input was closed or its script ran out.
var ErrNoDecision = errors.New("no decision available")

// Chooser is the decision source for one player. Options are display strings
// and answers are zero-based indices into them.
//
// Implementations keep asking until their own input is well-formed. Callers
// still validate every answer and ask again when it is not usable.
type Chooser interface {
	// SelectOne returns the index of exactly one option.
	SelectOne(prompt string, options []string) (int, error)
	// SelectOptional returns the index of one option, or ok == false when the
	// player declines.
	SelectOptional(prompt string, options []string) (index int, ok bool, err error)
	// SelectMany returns exactly n distinct indices.
	SelectMany(prompt string, options []string, n int) ([]int, error)
	// Notify shows an informational message.
	Notify(message string)
}

// ValidIndex reports whether i addresses one of n options.
func ValidIndex(i, n int) bool {
	return i >= 0 && i < n
}

// ValidSelection reports whether indices are exactly n distinct valid
// indices into size options.
func ValidSelection(indices []int, n, size int) bool {
	if len(indices) != n {
		return false
	}
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if !ValidIndex(i, size) {
			return false
		}
		if _, dup := seen[i]; dup {
			return false
		}
		seen[i] = struct{}{}
	}
	return true
}
