package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/turnpath/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("turnpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
turnpath - minimum turn-weighted cost through a maze, and every tile on an optimal route.

Usage:
  turnpath [options] MAZE_FILE

Arguments:
  MAZE_FILE
    Text maze: '#' wall, '.' open, 'S' start, 'E' end.

Options:
`)
		flagSet.PrintDefaults()
	}

	settingsFlag := flagSet.String("config", "", "Path to an .hcl or .yaml settings file.")
	cFlag := flagSet.String("c", "", "Path to a settings file (shorthand).")
	penaltyFlag := flagSet.Int64("turn-penalty", 0, "Cost of one 90° turn. Overrides the settings file.")
	stepFlag := flagSet.Int64("step-cost", 0, "Cost of one step forward. Overrides the settings file.")
	headingFlag := flagSet.String("heading", "", "Start heading: north, east, south or west. Overrides the settings file.")
	expectCostFlag := flagSet.Int64("expect-cost", 0, "Fail unless the minimum cost equals this value.")
	expectTilesFlag := flagSet.Int("expect-tiles", 0, "Fail unless the optimal tile count equals this value.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if flagSet.NArg() == 0 {
		slog.Debug("No maze path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected exactly one MAZE_FILE, got %d", flagSet.NArg())
	}

	settingsPath := *settingsFlag
	if settingsPath == "" {
		settingsPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg := app.Config{
		MazePath:     flagSet.Arg(0),
		SettingsPath: settingsPath,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}
	if set["turn-penalty"] {
		if *penaltyFlag < 0 {
			return nil, false, usageError("invalid turn-penalty: must be non-negative")
		}
		cfg.TurnPenalty = penaltyFlag
	}
	if set["step-cost"] {
		if *stepFlag < 0 {
			return nil, false, usageError("invalid step-cost: must be non-negative")
		}
		cfg.StepCost = stepFlag
	}
	if set["heading"] {
		cfg.Heading = headingFlag
	}
	if set["expect-cost"] {
		cfg.ExpectCost = expectCostFlag
	}
	if set["expect-tiles"] {
		cfg.ExpectTiles = expectTilesFlag
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
