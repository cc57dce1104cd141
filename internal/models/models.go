package models

// Snapshot is what a display panel needs to draw the calculator.
type Snapshot struct {
	Display   string `json:"display"`
	Operator  string `json:"operator"`
	Overwrite bool   `json:"overwrite"`
	Fault     bool   `json:"fault"`
}

// Step is one key press recorded on a session tape.
type Step struct {
	Seq    int      `json:"seq"`
	Key    string   `json:"key"`
	Action string   `json:"action"`
	State  Snapshot `json:"state"`
}

// Tape is the JSON form of a whole session.
type Tape struct {
	SessionID string `json:"session_id"`
	Steps     []Step `json:"steps"`
}
