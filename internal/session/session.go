package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"calcpad/internal/calculator"
	"calcpad/internal/keypad"
	"calcpad/internal/logfields"
	"calcpad/internal/metrics"
	"calcpad/internal/models"
)

// Session drives one calculator engine from key names and keeps a tape of every
// accepted key. A session has a single owner; it is not safe for concurrent use.
type Session struct {
	id       string
	engine   *calculator.Engine
	keymap   *keypad.Keymap
	tape     []models.Step
	recorder metrics.Recorder
	log      *slog.Logger
}

type Option func(*Session)

func WithRecorder(r metrics.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a session with a fresh engine. A nil keymap means the default bindings.
func New(km *keypad.Keymap, opts ...Option) *Session {
	if km == nil {
		km = keypad.DefaultKeymap()
	}
	s := &Session{
		id:       uuid.New().String(),
		engine:   calculator.NewEngine(),
		keymap:   km,
		recorder: metrics.NoopRecorder{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logfields.SessionID(s.id))
	return s
}

func (s *Session) ID() string { return s.id }

// Press applies one key. Unbound keys are rejected without touching the engine.
func (s *Session) Press(key string) (models.Step, error) {
	b, err := s.keymap.Lookup(key)
	if err != nil {
		s.recorder.IncRejectedKey()
		s.log.Debug("Key rejected", logfields.Key(key), logfields.Error(err))
		return models.Step{}, err
	}

	wasFaulted := s.engine.State().Faulted()
	b.Apply(s.engine)

	step := models.Step{
		Seq:    len(s.tape) + 1,
		Key:    key,
		Action: b.Name(),
		State:  s.Snapshot(),
	}
	s.tape = append(s.tape, step)

	s.recorder.IncAction(string(b.Action))
	s.recorder.SetTapeLength(len(s.tape))

	s.log.Debug("Key applied",
		logfields.Seq(step.Seq),
		logfields.Key(key),
		logfields.Action(step.Action),
		logfields.Display(step.State.Display),
		logfields.Operator(step.State.Operator))

	if step.State.Fault && !wasFaulted {
		s.recorder.IncFault()
		s.log.Warn("Calculation faulted", logfields.Seq(step.Seq), logfields.Error(calculator.ErrDivisionFault))
	}
	return step, nil
}

// Run tokenizes a key script and presses every key in order. It stops at the first
// key that cannot be applied and returns the steps applied so far.
func (s *Session) Run(script string) ([]models.Step, error) {
	keys, err := keypad.Tokenize(script)
	if err != nil {
		return nil, fmt.Errorf("tokenize script: %w", err)
	}

	steps := make([]models.Step, 0, len(keys))
	for _, key := range keys {
		step, err := s.Press(key)
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (s *Session) Snapshot() models.Snapshot {
	st := s.engine.State()
	return models.Snapshot{
		Display:   st.Display,
		Operator:  st.Pending.Glyph(),
		Overwrite: st.Overwrite,
		Fault:     st.Faulted(),
	}
}

// Tape returns a copy of the recorded steps.
func (s *Session) Tape() models.Tape {
	steps := make([]models.Step, len(s.tape))
	copy(steps, s.tape)
	return models.Tape{SessionID: s.id, Steps: steps}
}

// Reset clears the engine and empties the tape.
func (s *Session) Reset() {
	s.engine.ClearAll()
	s.tape = nil
	s.recorder.SetTapeLength(0)
	s.log.Info("Session reset")
}

func (s *Session) Keymap() *keypad.Keymap {
	return s.keymap
}
