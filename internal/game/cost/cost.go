package cost

import "fmt"

// Kind identifies which economy pays for a card.
type Kind int

const (
	KindFree Kind = iota
	KindTrade
	KindMilitary
)

var kindNames = map[Kind]string{
	KindFree:     "free",
	KindTrade:    "trade",
	KindMilitary: "military",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind_%d", int(k))
}

// Ordering is the result of a comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	default:
		return "UNKNOWN"
	}
}

// Cost represents the price of a card: free, N trade, or N military.
// The zero value is Free.
type Cost struct {
	kind  Kind
	value int
}

// Free returns a cost that skips payment.
func Free() Cost {
	return Cost{kind: KindFree}
}

// Trade returns a cost paid with trade power. Negative values clamp to 0.
func Trade(n int) Cost {
	return Cost{kind: KindTrade, value: clamp(n)}
}

// Military returns a cost met with military power. Negative values clamp to 0.
func Military(n int) Cost {
	return Cost{kind: KindMilitary, value: clamp(n)}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Kind returns the economy this cost is paid in.
func (c Cost) Kind() Kind {
	return c.kind
}

// Value returns the embedded magnitude. Free is 0.
func (c Cost) Value() int {
	return c.value
}

func (c Cost) IsFree() bool { return c.kind == KindFree }
func (c Cost) IsTrade() bool { return c.kind == KindTrade }
func (c Cost) IsMilitary() bool { return c.kind == KindMilitary }

// CompareScalar compares the embedded magnitude against k regardless of kind.
// Free compares as 0.
func (c Cost) CompareScalar(k int) Ordering {
	return compareInts(c.value, k)
}

// PartialCompare orders two costs. ok is false when the costs are of
// different paying kinds (Trade against Military), which are never comparable.
// Free is its own kind: it equals only Free and is less than every Trade or
// Military cost, including zero-valued ones.
func (c Cost) PartialCompare(other Cost) (ord Ordering, ok bool) {
	switch {
	case c.kind == KindFree && other.kind == KindFree:
		return Equal, true
	case c.kind == KindFree:
		return Less, true
	case other.kind == KindFree:
		return Greater, true
	case c.kind != other.kind:
		return 0, false
	default:
		return compareInts(c.value, other.value), true
	}
}

// AffordableWith reports whether power covers the cost's magnitude.
// Callers must pass the power of the matching economy.
func (c Cost) AffordableWith(power int) bool {
	return c.CompareScalar(power) != Greater
}

// Discounted returns the number of payment units left after subtracting
// discount, never below zero. Free costs always return 0.
func (c Cost) Discounted(discount int) int {
	if c.kind == KindFree {
		return 0
	}
	return clamp(c.value - discount)
}

// String returns the display form used in card summaries ("free", "2 trade").
func (c Cost) String() string {
	if c.kind == KindFree {
		return "free"
	}
	return fmt.Sprintf("%d %s", c.value, c.kind)
}

func compareInts(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
