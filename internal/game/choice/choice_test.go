package choice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var options = []string{
	"Old Earth (World - free) {2 VPs}",
	"Spice World (World - 2 trade) {1 VPs}",
	"Space Marines <Development - 2 trade> {1 VPs}",
}

func TestValidSelection(t *testing.T) {
	assert.True(t, ValidSelection([]int{0, 2}, 2, 3))
	assert.True(t, ValidSelection(nil, 0, 3))
	assert.False(t, ValidSelection([]int{0}, 2, 3))
	assert.False(t, ValidSelection([]int{1, 1}, 2, 3))
	assert.False(t, ValidSelection([]int{0, 3}, 2, 3))
	assert.False(t, ValidSelection([]int{-1, 0}, 2, 3))
}

func TestConsoleSelectOneRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole("Alice", strings.NewReader("abc\n7\n0\n2\n"), &out)

	idx, err := c.SelectOne("Keep a card", options)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number between 1 and 3."))
	assert.Contains(t, out.String(), "  2. Spice World (World - 2 trade) {1 VPs}")
}

func TestConsoleSelectOptional(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole("Alice", strings.NewReader("0\n3\n"), &out)

	_, ok, err := c.SelectOptional("Develop", options)
	require.NoError(t, err)
	assert.False(t, ok)

	idx, ok, err := c.SelectOptional("Develop", options)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestConsoleSelectMany(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole("Bob", strings.NewReader("1\n1 1\n1 4\n3 1\n"), &out)

	picks, err := c.SelectMany("Pay 2", options, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, picks)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter exactly 2 different numbers"))
}

func TestConsoleSelectManyZeroDoesNotRead(t *testing.T) {
	c := NewConsole("Bob", strings.NewReader(""), &bytes.Buffer{})
	picks, err := c.SelectMany("Pay 0", options, 0)
	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestConsoleClosedInput(t *testing.T) {
	c := NewConsole("Bob", strings.NewReader("x\n"), &bytes.Buffer{})
	_, err := c.SelectOne("Keep a card", options)
	assert.ErrorIs(t, err, ErrNoDecision)
}

func TestConsolesShareInput(t *testing.T) {
	var out bytes.Buffer
	consoles := NewConsoles(strings.NewReader("2\n3\n"), &out, "Alice", "Bob")
	require.Len(t, consoles, 2)

	got, err := consoles[0].SelectOne("Pick", options)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = consoles[1].SelectOne("Pick", options)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	assert.Contains(t, out.String(), "[Alice]")
	assert.Contains(t, out.String(), "[Bob]")
}

func TestScriptedReplaysAnswers(t *testing.T) {
	s := NewScripted(
		Pick(2),
		Decline(),
		PickNamed("Spice World", "Old Earth"),
		PickNamed("Nowhere"),
	)

	idx, err := s.SelectOne("one", options)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, ok, err := s.SelectOptional("optional", options)
	require.NoError(t, err)
	assert.False(t, ok)

	picks, err := s.SelectMany("many", options, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, picks)

	idx, err = s.SelectOne("unknown", options)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)

	_, err = s.SelectOne("exhausted", options)
	assert.ErrorIs(t, err, ErrNoDecision)
	assert.Equal(t, []string{"one", "optional", "many", "unknown", "exhausted"}, s.Prompts())
	assert.Zero(t, s.Remaining())
}

func TestScriptedNamedPicksDistinctDuplicates(t *testing.T) {
	dupes := []string{"Space Marines <x>", "Space Marines <x>", "Old Earth (y)"}
	s := NewScripted(PickNamed("Space Marines", "Space Marines"))
	picks, err := s.SelectMany("pay", dupes, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, picks)
}

func TestScriptedRecordsNotifications(t *testing.T) {
	s := NewScripted()
	s.Notify("hello")
	s.Push(Pick(0))
	assert.Equal(t, []string{"hello"}, s.Notifications())
	assert.Equal(t, 1, s.Remaining())
}
