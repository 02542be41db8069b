package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
)

// EnvLog overrides the configured level, e.g. TOKDUMP_LOG=debug.
// TOKDUMP_LOG=json turns on JSON output at trace level.
const EnvLog = "TOKDUMP_LOG"

var lg hclog.Logger

func init() {
	SetLogger(newLogger(os.Stderr, hclog.Off, false))
}

// Logger returns the global logger.
func Logger() hclog.Logger {
	return lg
}

// SetLogger sets the global logger.
func SetLogger(l hclog.Logger) {
	lg = l
}

// Named returns a sub-logger of the global logger, e.g. "tokdump.driver".
func Named(name string) hclog.Logger {
	return lg.Named(name)
}

// Setup replaces the global logger with one writing to w at level.
// EnvLog, when set, wins over level. Logs never go to the token stream.
func Setup(w io.Writer, level string) error {
	json := false
	if env := strings.TrimSpace(os.Getenv(EnvLog)); env != "" {
		if strings.EqualFold(env, "json") {
			json, env = true, "trace"
		}
		level = env
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetLogger(newLogger(w, lvl, json))
	return nil
}

func newLogger(w io.Writer, lvl hclog.Level, json bool) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "tokdump",
		Level:      lvl,
		Output:     w,
		JSONFormat: json,
	})
}

// ParseLevel accepts off|error|warn|info|debug|trace, case-insensitive.
// Empty means off.
func ParseLevel(level string) (hclog.Level, error) {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case "", "off":
		return hclog.Off, nil
	case "trace", "debug", "info", "warn", "error":
		return hclog.LevelFromString(l), nil
	default:
		return hclog.NoLevel, fmt.Errorf("invalid log level %q (expected off|error|warn|info|debug|trace)", level)
	}
}
