package keypad

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"calcpad/internal/calculator"
)

var (
	ErrUnboundKey    = errors.New("unbound key")
	ErrUnknownAction = errors.New("unknown action")
)

type Action string

const (
	ActionDigit    Action = "digit"
	ActionPoint    Action = "point"
	ActionOperator Action = "operator"
	ActionEquals   Action = "equals"
	ActionDelete   Action = "delete"
	ActionClear    Action = "clear"
	ActionNegate   Action = "negate"
)

// Binding is what a key does to the engine.
type Binding struct {
	Action   Action
	Digit    rune
	Operator calculator.Operator
}

// Apply routes the binding to the matching engine operation.
func (b Binding) Apply(e *calculator.Engine) {
	switch b.Action {
	case ActionDigit:
		e.EnterDigit(b.Digit)
	case ActionPoint:
		e.EnterDigit('.')
	case ActionOperator:
		e.ChooseOperator(b.Operator)
	case ActionEquals:
		e.Equals()
	case ActionDelete:
		e.DeleteLast()
	case ActionClear:
		e.ClearAll()
	case ActionNegate:
		e.ToggleSign()
	}
}

// Name is the action name used in keymap files.
func (b Binding) Name() string {
	switch b.Action {
	case ActionDigit:
		return string(b.Digit)
	case ActionPoint:
		return "."
	case ActionOperator:
		return b.Operator.String()
	default:
		return string(b.Action)
	}
}

// ParseAction turns a keymap action name into a binding.
func ParseAction(name string) (Binding, error) {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Binding{Action: ActionDigit, Digit: rune(name[0])}, nil
	}

	switch name {
	case ".":
		return Binding{Action: ActionPoint}, nil
	case "add":
		return Binding{Action: ActionOperator, Operator: calculator.Add}, nil
	case "subtract":
		return Binding{Action: ActionOperator, Operator: calculator.Subtract}, nil
	case "multiply":
		return Binding{Action: ActionOperator, Operator: calculator.Multiply}, nil
	case "divide":
		return Binding{Action: ActionOperator, Operator: calculator.Divide}, nil
	case string(ActionEquals), string(ActionDelete), string(ActionClear), string(ActionNegate):
		return Binding{Action: Action(name)}, nil
	}
	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Keymap maps key names to bindings.
type Keymap struct {
	bindings map[string]Binding
	folded   map[string]string
	fold     cases.Caser
}

func NewKeymap() *Keymap {
	return &Keymap{
		bindings: make(map[string]Binding),
		folded:   make(map[string]string),
		fold:     cases.Fold(),
	}
}

// DefaultKeymap holds the keyboard bindings of the calculator plus the on-screen
// button labels, so pointer events can be routed by label.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	for d := '0'; d <= '9'; d++ {
		km.Bind(string(d), Binding{Action: ActionDigit, Digit: d})
	}

	defaults := map[string]string{
		".":         ".",
		"+":         "add",
		"-":         "subtract",
		"−":         "subtract",
		"*":         "multiply",
		"×":         "multiply",
		"/":         "divide",
		"÷":         "divide",
		"Enter":     "equals",
		"=":         "equals",
		"Backspace": "delete",
		"DEL":       "delete",
		"c":         "clear",
		"AC":        "clear",
		"±":         "negate",
		"F9":        "negate",
	}
	for key, action := range defaults {
		b, err := ParseAction(action)
		if err != nil {
			panic(err)
		}
		km.Bind(key, b)
	}
	return km
}

func (km *Keymap) Bind(key string, b Binding) {
	km.bindings[key] = b
	km.folded[km.fold.String(key)] = key
}

func (km *Keymap) Unbind(key string) {
	delete(km.bindings, key)
	folded := km.fold.String(key)
	if km.folded[folded] == key {
		delete(km.folded, folded)
	}
}

// Lookup resolves a key name. Exact names win; full-width characters are narrowed and
// the name is case folded before giving up, so "C", "ｃ" and "enter" all resolve.
func (km *Keymap) Lookup(key string) (Binding, error) {
	if b, ok := km.bindings[key]; ok {
		return b, nil
	}

	narrow := width.Narrow.String(key)
	if b, ok := km.bindings[narrow]; ok {
		return b, nil
	}
	if name, ok := km.folded[km.fold.String(narrow)]; ok {
		return km.bindings[name], nil
	}
	return Binding{}, fmt.Errorf("%w: %q", ErrUnboundKey, key)
}

// Keys returns the bound key names in sorted order.
func (km *Keymap) Keys() []string {
	keys := make([]string, 0, len(km.bindings))
	for k := range km.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (km *Keymap) Len() int {
	return len(km.bindings)
}
