package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"rkcp-score/config"
	"rkcp-score/internal/model"
)

// State of the suggestion input. Idle → Pending (debounce armed) →
// Presenting (dropdown open) ⇄ Navigating (cursor moved), back to Idle on
// commit or close.
type State int

const (
	StateIdle State = iota
	StatePending
	StatePresenting
	StateNavigating
)

type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	State       State
	Query       string
	Suggestions []model.Suggestion
	Selected    int
	Open        bool
}

// Session drives a single autocomplete input. Every keystroke restarts the
// debounce timer and bumps a request token; a computation only applies its
// result if it still carries the current token, so a superseded burst can
// never overwrite suggestions for a newer query.
//
// The onChange callback runs with the session lock held and must not call
// back into the session.
type Session struct {
	mu     sync.Mutex
	ctx    context.Context
	engine *Engine

	debounce    time.Duration
	minQueryLen int
	limit       int

	timer *time.Timer
	token uint64

	state       State
	query       string
	suggestions []model.Suggestion
	selected    int
	open        bool

	onChange func(Snapshot)
}

func NewSession(ctx context.Context, engine *Engine, cfg config.Suggest, onChange func(Snapshot)) *Session {
	return &Session{
		ctx:         ctx,
		engine:      engine,
		debounce:    cfg.Debounce,
		minQueryLen: cfg.MinQueryLen,
		limit:       cfg.DefaultLimit,
		selected:    -1,
		onChange:    onChange,
	}
}

// SetQuery records a keystroke. Short queries clear the dropdown without
// arming the timer; anything else supersedes the pending computation and
// re-arms it.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.token++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if len(trimmed) < s.minQueryLen {
		s.suggestions = nil
		s.selected = -1
		s.open = false
		s.state = StateIdle
		s.notifyLocked()
		return
	}

	s.state = StatePending
	token := s.token
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(token, trimmed)
	})
	s.notifyLocked()
}

func (s *Session) fire(token uint64, query string) {
	results := s.engine.Suggest(s.ctx, query, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		// A newer keystroke superseded this computation.
		return
	}

	s.suggestions = results
	s.selected = -1
	s.open = len(results) > 0
	if s.open {
		s.state = StatePresenting
	} else {
		s.state = StateIdle
	}
	s.notifyLocked()
}

// Key applies a navigation keystroke. The returned suggestion is valid only
// when committed is true (Enter with a selection).
func (s *Session) Key(key Key) (committed model.Suggestion, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == KeyEscape {
		s.open = false
		s.state = StateIdle
		s.notifyLocked()
		return model.Suggestion{}, false
	}

	if !s.open || len(s.suggestions) == 0 {
		return model.Suggestion{}, false
	}

	switch key {
	case KeyArrowDown:
		if s.selected < len(s.suggestions)-1 {
			s.selected++
		}
		s.state = StateNavigating
	case KeyArrowUp:
		if s.selected > 0 {
			s.selected--
		} else {
			s.selected = -1
		}
		s.state = StateNavigating
	case KeyEnter:
		if s.selected >= 0 {
			chosen := s.suggestions[s.selected]
			s.commitLocked(chosen)
			s.notifyLocked()
			return chosen, true
		}
		return model.Suggestion{}, false
	}

	s.notifyLocked()
	return model.Suggestion{}, false
}

// Blur closes the dropdown, leaving the query text in place. Models a
// pointer interaction outside both the input and the dropdown.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	if s.state == StatePresenting || s.state == StateNavigating {
		s.state = StateIdle
	}
	s.notifyLocked()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) commitLocked(chosen model.Suggestion) {
	s.query = chosen.DisplayName
	s.suggestions = nil
	s.selected = -1
	s.open = false
	s.state = StateIdle
	s.token++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) snapshotLocked() Snapshot {
	suggestions := make([]model.Suggestion, len(s.suggestions))
	copy(suggestions, s.suggestions)
	return Snapshot{
		State:       s.state,
		Query:       s.query,
		Suggestions: suggestions,
		Selected:    s.selected,
		Open:        s.open,
	}
}

func (s *Session) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}
