package choice

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console asks a human on a text stream. Options are numbered from 1; for
// optional choices 0 declines. Malformed input is reported and asked again.
type Console struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewConsole returns a Console reading answers from r and writing prompts to
// w. name prefixes every prompt so several players can share a terminal.
func NewConsole(name string, r io.Reader, w io.Writer) *Console {
	return &Console{name: name, in: bufio.NewScanner(r), out: w}
}

// NewConsoles returns one Console per name, all reading from the same
// buffered input so answers typed for one player are not swallowed by
// another.
func NewConsoles(r io.Reader, w io.Writer, names ...string) []*Console {
	in := bufio.NewScanner(r)
	out := make([]*Console, len(names))
	for i, name := range names {
		out[i] = &Console{name: name, in: in, out: w}
	}
	return out
}

func (c *Console) SelectOne(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select one from empty list: %w", ErrNoDecision)
	}
	c.list(prompt, options)
	for {
		fields, err := c.ask(fmt.Sprintf("Choose 1-%d: ", len(options)))
		if err != nil {
			return 0, err
		}
		if len(fields) == 1 {
			if n, ok := parseChoice(fields[0], 1, len(options)); ok {
				return n - 1, nil
			}
		}
		c.Notify(fmt.Sprintf("Please enter a number between 1 and %d.", len(options)))
	}
}

func (c *Console) SelectOptional(prompt string, options []string) (int, bool, error) {
	c.list(prompt, options)
	for {
		fields, err := c.ask(fmt.Sprintf("Choose 1-%d, or 0 for none: ", len(options)))
		if err != nil {
			return 0, false, err
		}
		if len(fields) == 1 {
			if n, ok := parseChoice(fields[0], 0, len(options)); ok {
				if n == 0 {
					return 0, false, nil
				}
				return n - 1, true, nil
			}
		}
		c.Notify(fmt.Sprintf("Please enter a number between 0 and %d.", len(options)))
	}
}

func (c *Console) SelectMany(prompt string, options []string, n int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	c.list(prompt, options)
	for {
		fields, err := c.ask(fmt.Sprintf("Choose %d of 1-%d, separated by spaces: ", n, len(options)))
		if err != nil {
			return nil, err
		}
		picks := make([]int, 0, len(fields))
		for _, f := range fields {
			v, ok := parseChoice(f, 1, len(options))
			if !ok {
				picks = nil
				break
			}
			picks = append(picks, v-1)
		}
		if ValidSelection(picks, n, len(options)) {
			return picks, nil
		}
		c.Notify(fmt.Sprintf("Please enter exactly %d different numbers between 1 and %d.", n, len(options)))
	}
}

func (c *Console) Notify(message string) {
	fmt.Fprintf(c.out, "[%s] %s\n", c.name, message)
}

func (c *Console) list(prompt string, options []string) {
	fmt.Fprintf(c.out, "[%s] %s\n", c.name, prompt)
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, opt)
	}
}

func (c *Console) ask(question string) ([]string, error) {
	fmt.Fprint(c.out, question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return nil, fmt.Errorf("read answer: %w", err)
		}
		return nil, fmt.Errorf("input closed: %w", ErrNoDecision)
	}
	return strings.Fields(c.in.Text()), nil
}

func parseChoice(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
