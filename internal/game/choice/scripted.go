package choice

import (
	"fmt"
	"strings"
	"sync"
)

// Answer is one scripted reply. It is consumed by exactly one Select call.
type Answer struct {
	indices []int
	names   []string
	decline bool
}

// Pick answers with the given zero-based indices.
func Pick(indices ...int) Answer {
	return Answer{indices: indices}
}

// PickNamed answers with the options whose display string starts with each
// name. An unknown name resolves to -1, which callers reject.
func PickNamed(names ...string) Answer {
	return Answer{names: names}
}

// Decline answers an optional choice with "none".
func Decline() Answer {
	return Answer{decline: true}
}

func (a Answer) resolve(options []string) []int {
	if a.names == nil {
		return append([]int(nil), a.indices...)
	}
	out := make([]int, 0, len(a.names))
	used := make(map[int]bool)
	for _, name := range a.names {
		idx := -1
		for i, opt := range options {
			if !used[i] && matchesName(opt, name) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			used[idx] = true
		}
		out = append(out, idx)
	}
	return out
}

func matchesName(option, name string) bool {
	return option == name || strings.HasPrefix(option, name+" ")
}

// Scripted replays a fixed list of answers. It never blocks; once the script
// is exhausted every Select call returns ErrNoDecision.
type Scripted struct {
	mu            sync.Mutex
	answers       []Answer
	prompts       []string
	notifications []string
}

// NewScripted returns a Scripted chooser with the given answers.
func NewScripted(answers ...Answer) *Scripted {
	return &Scripted{answers: answers}
}

// Push appends further answers.
func (s *Scripted) Push(answers ...Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, answers...)
}

// Remaining returns the number of unconsumed answers.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Prompts returns every prompt seen so far.
func (s *Scripted) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Notifications returns every message passed to Notify.
func (s *Scripted) Notifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.notifications...)
}

func (s *Scripted) next(prompt string) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return Answer{}, fmt.Errorf("script exhausted at %q: %w", prompt, ErrNoDecision)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *Scripted) SelectOne(prompt string, options []string) (int, error) {
	a, err := s.next(prompt)
	if err != nil {
		return 0, err
	}
	picks := a.resolve(options)
	if a.decline || len(picks) == 0 {
		return -1, nil
	}
	return picks[0], nil
}

func (s *Scripted) SelectOptional(prompt string, options []string) (int, bool, error) {
	a, err := s.next(prompt)
	if err != nil {
		return 0, false, err
	}
	picks := a.resolve(options)
	if a.decline || len(picks) == 0 {
		return 0, false, nil
	}
	return picks[0], true, nil
}

func (s *Scripted) SelectMany(prompt string, options []string, n int) ([]int, error) {
	a, err := s.next(prompt)
	if err != nil {
		return nil, err
	}
	if a.decline {
		return nil, nil
	}
	return a.resolve(options), nil
}

func (s *Scripted) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, message)
}
