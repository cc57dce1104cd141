package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"calcpad/internal/keypad"
	"calcpad/internal/models"
	"calcpad/internal/render"
	"calcpad/internal/session"
)

const prompt = "> "

type repl struct {
	in    io.Reader
	out   io.Writer
	sess  *session.Session
	label string
	width int
}

// run reads one key script per line and redraws the panel after each line. Lines
// starting with ':' are meta commands.
func (r *repl) run() error {
	scanner := bufio.NewScanner(r.in)
	r.draw()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":tape":
			printTape(r.out, r.sess.Tape())
			continue
		case ":keys":
			printKeys(r.out, r.sess.Keymap())
			continue
		case ":reset":
			r.sess.Reset()
		default:
			if strings.HasPrefix(line, ":") {
				fmt.Fprintf(r.out, "unknown command %s\n", line)
				continue
			}
			if _, err := r.sess.Run(line); err != nil {
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
		}
		r.draw()
	}
	return scanner.Err()
}

func (r *repl) draw() {
	fmt.Fprint(r.out, render.Panel(r.sess.Snapshot(), r.label, r.width))
	fmt.Fprint(r.out, prompt)
}

func evalScript(out io.Writer, sess *session.Session, script string, trace, asJSON bool) error {
	steps, err := sess.Run(script)

	switch {
	case asJSON:
		enc := json.NewEncoder(out)
		for _, step := range steps {
			if encErr := enc.Encode(step); encErr != nil {
				return fmt.Errorf("encode step %d: %w", step.Seq, encErr)
			}
		}
	case trace:
		for _, step := range steps {
			printStep(out, step)
		}
	}
	if err != nil {
		return err
	}

	if !asJSON && !trace {
		fmt.Fprintln(out, sess.Snapshot().Display)
	}
	return nil
}

func printStep(out io.Writer, step models.Step) {
	fmt.Fprintf(out, "%3d  %-10s %-9s %s %s\n", step.Seq, step.Key, step.Action, step.State.Display, step.State.Operator)
}

func printTape(out io.Writer, tape models.Tape) {
	if len(tape.Steps) == 0 {
		fmt.Fprintln(out, "tape is empty")
		return
	}
	for _, step := range tape.Steps {
		printStep(out, step)
	}
}

func printKeys(out io.Writer, km *keypad.Keymap) {
	for _, key := range km.Keys() {
		b, err := km.Lookup(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "%-10s %s\n", key, b.Name())
	}
}
