package session

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/keypad"
	"calcpad/internal/metrics"
)

func TestRunChainedArithmetic(t *testing.T) {
	s := New(nil)

	steps, err := s.Run("2+3*4{Enter}")
	require.NoError(t, err)
	require.Len(t, steps, 6)

	last := steps[len(steps)-1]
	assert.Equal(t, 6, last.Seq)
	assert.Equal(t, "Enter", last.Key)
	assert.Equal(t, "equals", last.Action)
	assert.Equal(t, "20", last.State.Display)
	assert.Equal(t, "", last.State.Operator)

	assert.Equal(t, "×", steps[3].State.Operator)
	assert.Equal(t, "5", steps[3].State.Display)
}

func TestPressUnboundKey(t *testing.T) {
	rec := metrics.NewPrometheusRecorder(nil)
	s := New(nil, WithRecorder(rec))

	_, err := s.Press("7")
	require.NoError(t, err)

	_, err = s.Press("Escape")
	require.ErrorIs(t, err, keypad.ErrUnboundKey)

	assert.Equal(t, "7", s.Snapshot().Display)
	assert.Len(t, s.Tape().Steps, 1)

	expected := `
# HELP calcpad_rejected_keys_total Keys that had no binding
# TYPE calcpad_rejected_keys_total counter
calcpad_rejected_keys_total 1
`
	err = testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected), "calcpad_rejected_keys_total")
	require.NoError(t, err)
}

func TestRunStopsAtFirstBadKey(t *testing.T) {
	s := New(nil)
	steps, err := s.Run("12q3")
	require.ErrorIs(t, err, keypad.ErrUnboundKey)
	assert.Len(t, steps, 2)
	assert.Equal(t, "12", s.Snapshot().Display)
}

func TestRunTokenizeError(t *testing.T) {
	s := New(nil)
	_, err := s.Run("1{Enter")
	require.ErrorIs(t, err, keypad.ErrUnterminatedKey)
	assert.Empty(t, s.Tape().Steps)
}

func TestFaultIsLoggedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	rec := metrics.NewPrometheusRecorder(nil)
	s := New(nil, WithLogger(logger), WithRecorder(rec))

	steps, err := s.Run("8/0=")
	require.NoError(t, err)
	last := steps[len(steps)-1]
	assert.True(t, last.State.Fault)
	assert.Equal(t, "Error", last.State.Display)

	// Pressing equals again stays faulted but is not a new fault.
	_, err = s.Press("=")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Calculation faulted")
	assert.Contains(t, buf.String(), "session_id="+s.ID())

	_, err = s.Run("5")
	require.NoError(t, err)
	assert.False(t, s.Snapshot().Fault)
	assert.Equal(t, "5", s.Snapshot().Display)
}

func TestTapeIsACopy(t *testing.T) {
	s := New(nil)
	_, err := s.Run("42")
	require.NoError(t, err)

	tape := s.Tape()
	tape.Steps[0].Key = "changed"
	assert.Equal(t, "4", s.Tape().Steps[0].Key)
	assert.Equal(t, s.ID(), tape.SessionID)
}

func TestReset(t *testing.T) {
	s := New(nil)
	_, err := s.Run("9*9=")
	require.NoError(t, err)

	s.Reset()
	assert.Empty(t, s.Tape().Steps)
	assert.Equal(t, "0", s.Snapshot().Display)

	step, err := s.Press("3")
	require.NoError(t, err)
	assert.Equal(t, 1, step.Seq)
}

func TestSessionIDIsUUID(t *testing.T) {
	a, b := New(nil), New(nil)
	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCustomKeymap(t *testing.T) {
	km, err := keypad.ParseKeymap([]byte("bindings:\n  x: multiply\n"))
	require.NoError(t, err)

	s := New(km)
	steps, err := s.Run("6x7=")
	require.NoError(t, err)
	assert.Equal(t, "42", steps[len(steps)-1].State.Display)
	assert.Same(t, km, s.Keymap())
}
