package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/keypad"
	"calcpad/internal/models"
	"calcpad/internal/session"
)

func newRepl(input string) (*repl, *bytes.Buffer) {
	var out bytes.Buffer
	return &repl{
		in:    strings.NewReader(input),
		out:   &out,
		sess:  session.New(nil),
		label: "Calculator",
		width: 24,
	}, &out
}

func TestReplComputes(t *testing.T) {
	r, out := newRepl("2+3\n*4\n{Enter}\n:quit\n9\n")
	require.NoError(t, r.run())

	got := out.String()
	assert.Contains(t, got, "|                   20 |")
	assert.Contains(t, got, "| Calculator         × |")
	assert.Equal(t, "20", r.sess.Snapshot().Display, "input after :quit is ignored")
}

func TestReplMetaCommands(t *testing.T) {
	r, out := newRepl(":tape\n12\n:tape\n:reset\n:keys\n:bogus\n")
	require.NoError(t, r.run())

	got := out.String()
	assert.Contains(t, got, "tape is empty")
	assert.Contains(t, got, "  2  2          2         12")
	assert.Contains(t, got, "Backspace  delete")
	assert.Contains(t, got, "unknown command :bogus")
	assert.Empty(t, r.sess.Tape().Steps)
}

func TestReplReportsBadKeys(t *testing.T) {
	r, out := newRepl("1q\n")
	require.NoError(t, r.run())
	assert.Contains(t, out.String(), "error: unbound key")
	assert.Equal(t, "1", r.sess.Snapshot().Display)
}

func TestEvalScript(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalScript(&out, session.New(nil), "2+3*4=", false, false))
	assert.Equal(t, "20\n", out.String())
}

func TestEvalScriptDivisionByZero(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalScript(&out, session.New(nil), "8/0=", false, false))
	assert.Equal(t, "Error\n", out.String())
}

func TestEvalScriptTrace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalScript(&out, session.New(nil), "7{Backspace}", true, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Backspace")
	assert.Contains(t, lines[1], "delete")
}

func TestEvalScriptJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evalScript(&out, session.New(nil), "6×7=", false, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	var step models.Step
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &step))
	assert.Equal(t, "×", step.Key)
	assert.Equal(t, "multiply", step.Action)
	assert.Equal(t, "×", step.State.Operator)

	require.NoError(t, json.Unmarshal([]byte(lines[3]), &step))
	assert.Equal(t, "42", step.State.Display)
}

func TestEvalScriptError(t *testing.T) {
	var out bytes.Buffer
	err := evalScript(&out, session.New(nil), "1{", false, false)
	require.ErrorIs(t, err, keypad.ErrUnterminatedKey)
	assert.Empty(t, out.String())
}

func TestPrintKeys(t *testing.T) {
	var out bytes.Buffer
	printKeys(&out, keypad.DefaultKeymap())

	got := out.String()
	assert.Contains(t, got, "Enter      equals\n")
	assert.Contains(t, got, "c          clear\n")
	assert.Contains(t, got, "F9         negate\n")
}
