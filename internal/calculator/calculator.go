package calculator

import (
	"errors"
	"math"
	"strings"
)

// ErrorDisplay is the text shown while the engine is in the fault state.
const ErrorDisplay = "Error"

// ErrDivisionFault describes the only fault the engine knows about: a division by zero
// or any other computation that produced a non-finite value. Transitions never return it;
// it is folded into the state as ErrorDisplay.
var ErrDivisionFault = errors.New("division fault")

type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Glyph returns the symbol a display panel shows for the pending operator.
func (o Operator) Glyph() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

// State is the whole arithmetic state of one calculator. The displayed text and the
// stored operand are kept apart: the text keeps user formatting (trailing point,
// exponential fallback) while the operand is the value used for computation.
type State struct {
	Display    string
	Operand    float64
	HasOperand bool
	Pending    Operator
	Overwrite  bool
}

// Initial returns the state of a freshly created calculator.
func Initial() State {
	return State{Display: "0"}
}

// Faulted reports whether the display holds the error token.
func (s State) Faulted() bool {
	return s.Display == ErrorDisplay
}

// EnterDigit appends a digit or the decimal point to the display.
func EnterDigit(s State, token rune) State {
	if s.Overwrite || s.Faulted() {
		s.Overwrite = false
		if token == '.' {
			s.Display = "0."
		} else {
			s.Display = string(token)
		}
		return s
	}

	switch {
	case token == '.':
		if !strings.Contains(s.Display, ".") {
			s.Display += "."
		}
	case s.Display == "0":
		s.Display = string(token)
	default:
		s.Display = clampLen(s.Display + string(token))
	}
	return s
}

// ChooseOperator selects the next binary operator. When a second operand was typed
// since the last operator, the pending operation is evaluated first (left to right,
// no precedence). Choosing an operator right after another one only replaces it.
func ChooseOperator(s State, next Operator) State {
	current := parseDisplay(s.Display)

	if s.Pending != NoOperator && s.HasOperand && !s.Overwrite {
		res := Apply(s.Pending, s.Operand, current)
		if isFault(res) {
			s.Operand, s.HasOperand = 0, false
			s.Display = ErrorDisplay
		} else {
			s.Operand, s.HasOperand = res, true
			s.Display = clampLen(formatNumber(res))
		}
		s.Pending = next
		s.Overwrite = true
		return s
	}

	s.Operand, s.HasOperand = current, true
	s.Pending = next
	s.Overwrite = true
	s.Display = clampLen(s.Display)
	return s
}

// Apply evaluates a binary operator. Division by exactly zero yields +Inf, the overflow
// sentinel, instead of a signed infinity or NaN.
func Apply(op Operator, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		if b == 0 {
			return math.Inf(1)
		}
		return a / b
	default:
		return math.NaN()
	}
}

// Equals evaluates the pending operation, if any.
func Equals(s State) State {
	if s.Pending == NoOperator || !s.HasOperand {
		s.Display = clampLen(s.Display)
		return s
	}

	res := Apply(s.Pending, s.Operand, parseDisplay(s.Display))
	s.Operand, s.HasOperand = 0, false
	s.Pending = NoOperator
	s.Overwrite = true
	if isFault(res) {
		s.Display = ErrorDisplay
	} else {
		s.Display = clampLen(formatNumber(res))
	}
	return s
}

// ClearAll resets to the initial state.
func ClearAll(State) State {
	return Initial()
}

// DeleteLast removes the last typed character. Right after an operator or equals it
// clears the entry instead.
func DeleteLast(s State) State {
	if s.Overwrite || s.Faulted() {
		s.Display = "0"
		s.Overwrite = false
		return s
	}

	n := len(s.Display)
	if n <= 1 || (n == 2 && s.Display[0] == '-') {
		s.Display = "0"
		return s
	}
	s.Display = s.Display[:n-1]
	return s
}

// ToggleSign flips the leading minus sign of the display.
func ToggleSign(s State) State {
	if s.Display == "0" || s.Faulted() {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

func isFault(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
