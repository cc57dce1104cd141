package calculator

// Engine owns a single calculator State and advances it through the transition
// functions. It is not safe for concurrent use.
type Engine struct {
	state State
}

func NewEngine() *Engine {
	return &Engine{state: Initial()}
}

func (e *Engine) EnterDigit(token rune)      { e.state = EnterDigit(e.state, token) }
func (e *Engine) ChooseOperator(op Operator) { e.state = ChooseOperator(e.state, op) }
func (e *Engine) Equals()                    { e.state = Equals(e.state) }
func (e *Engine) ClearAll()                  { e.state = ClearAll(e.state) }
func (e *Engine) DeleteLast()                { e.state = DeleteLast(e.state) }
func (e *Engine) ToggleSign()                { e.state = ToggleSign(e.state) }
func (e *Engine) Display() string            { return e.state.Display }
func (e *Engine) Pending() Operator          { return e.state.Pending }
func (e *Engine) State() State               { return e.state }
