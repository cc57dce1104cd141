package logfields

import "log/slog"

// Canonical log field names shared by all packages.
const (
	KeySessionID = "session_id"
	KeyKey       = "key"
	KeyAction    = "action"
	KeyDisplay   = "display"
	KeyOperator  = "operator"
	KeySeq       = "seq"
	KeyPath      = "path"
	KeyBindings  = "bindings"
	KeyError     = "error"
)

func SessionID(id string) slog.Attr { return slog.String(KeySessionID, id) }
func Key(k string) slog.Attr        { return slog.String(KeyKey, k) }
func Action(a string) slog.Attr     { return slog.String(KeyAction, a) }
func Display(d string) slog.Attr    { return slog.String(KeyDisplay, d) }
func Operator(o string) slog.Attr   { return slog.String(KeyOperator, o) }
func Seq(n int) slog.Attr           { return slog.Int(KeySeq, n) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Bindings(n int) slog.Attr      { return slog.Int(KeyBindings, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
