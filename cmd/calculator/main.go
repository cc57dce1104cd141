package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"calcpad/internal/config"
	"calcpad/internal/keypad"
	"calcpad/internal/logfields"
	"calcpad/internal/metrics"
	"calcpad/internal/session"
)

var CLI struct {
	EnvFile     []string `help:"Environment files to try in order" default:".env,../.env,../../.env"`
	Keymap      string   `help:"YAML keymap merged over the default bindings" type:"path"`
	LogLevel    string   `help:"Log level (debug, info, warn, error)"`
	LogFormat   string   `help:"Log format (text, json)"`
	MetricsFile string   `help:"Write Prometheus metrics to this file on exit" type:"path"`

	Repl struct{} `cmd:"" default:"1" help:"Interactive calculator reading key scripts from stdin"`

	Eval struct {
		Script string `arg:"" help:"Key script, e.g. '2+3*4{Enter}'"`
		Trace  bool   `short:"t" help:"Print every step instead of the final display"`
		JSON   bool   `name:"json" help:"Print steps as JSON lines"`
	} `cmd:"" help:"Run a key script on a fresh calculator"`

	Keys struct{} `cmd:"" help:"List the effective key bindings"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("calcpad"),
		kong.Description("Keyboard driven calculator."),
		kong.UsageOnError(),
	)

	if err := run(ctx.Command(), os.Stdin, os.Stdout); err != nil {
		slog.Error("Command failed", logfields.Error(err))
		os.Exit(1)
	}
}

func run(command string, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	km, err := loadKeymap(cfg.KeymapFile)
	if err != nil {
		return err
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if cfg.MetricsFile != "" {
		prom := metrics.NewPrometheusRecorder(nil)
		rec = prom
		defer func() {
			if err := prom.WriteTextfile(cfg.MetricsFile); err != nil {
				slog.Error("Failed to write metrics", logfields.Path(cfg.MetricsFile), logfields.Error(err))
			}
		}()
	}

	sess := session.New(km, session.WithRecorder(rec), session.WithLogger(slog.Default()))

	switch command {
	case "repl":
		r := &repl{in: in, out: out, sess: sess, label: cfg.Label, width: cfg.Width}
		return r.run()
	case "eval <script>":
		return evalScript(out, sess, CLI.Eval.Script, CLI.Eval.Trace, CLI.Eval.JSON)
	case "keys":
		printKeys(out, km)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.EnvFile...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if CLI.Keymap != "" {
		cfg.KeymapFile = CLI.Keymap
	}
	if CLI.MetricsFile != "" {
		cfg.MetricsFile = CLI.MetricsFile
	}
	if CLI.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(CLI.LogFormat)
	}
	if CLI.LogLevel != "" {
		if err := cfg.SetLogLevel(CLI.LogLevel); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadKeymap(path string) (*keypad.Keymap, error) {
	if path == "" {
		return keypad.DefaultKeymap(), nil
	}
	km, err := keypad.LoadKeymap(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded keymap", logfields.Path(path), logfields.Bindings(km.Len()))
	return km, nil
}
