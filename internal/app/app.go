package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/internal/config"
	"github.com/katalvlaran/turnpath/internal/ctxlog"
	"github.com/katalvlaran/turnpath/route"
)

// ErrExpectation indicates a computed answer differs from the one the
// caller asserted with --expect-cost or --expect-tiles.
var ErrExpectation = errors.New("app: answer does not match expectation")

// App is one configured run of the solver.
type App struct {
	outW   io.Writer
	config *Config
	logger *slog.Logger
}

// NewApp creates an App writing answers to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		config: cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run loads settings and the maze, computes both answers from a single
// solve, prints them and checks any expectations.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	settings, err := a.settings(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	maze, err := loadMaze(ctx, a.config.MazePath)
	if err != nil {
		return err
	}
	logger.Info("Maze loaded.",
		"width", maze.Width,
		"height", maze.Height,
		"regions", len(maze.Components()),
		"took", time.Since(start),
	)

	start = time.Now()
	rep, err := route.Analyze(maze,
		route.WithCostModel(settings.Model),
		route.WithHeading(settings.Heading),
	)
	if err != nil {
		return err
	}
	logger.Info("Maze solved.",
		"reachable", rep.Reachable,
		"min_cost", rep.MinCost,
		"tiles", rep.Tiles,
		"took", time.Since(start),
	)

	if rep.Reachable {
		fmt.Fprintf(a.outW, "min cost: %d\n", rep.MinCost)
	} else {
		fmt.Fprintln(a.outW, "min cost: unreachable")
	}
	fmt.Fprintf(a.outW, "optimal tiles: %d\n", rep.Tiles)

	return a.check(rep)
}

// settings resolves the settings file (if any) and applies flag overrides.
func (a *App) settings(ctx context.Context) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := config.Default()
	if a.config.SettingsPath != "" {
		loaded, err := config.Load(a.config.SettingsPath)
		if err != nil {
			return config.Settings{}, err
		}
		s = loaded
		logger.Debug("Settings file loaded.", "path", a.config.SettingsPath)
	}

	if a.config.TurnPenalty != nil {
		s.Model.TurnPenalty = *a.config.TurnPenalty
	}
	if a.config.StepCost != nil {
		s.Model.StepCost = *a.config.StepCost
	}
	if a.config.Heading != nil {
		d, err := gridgraph.ParseDirection(*a.config.Heading)
		if err != nil {
			return config.Settings{}, err
		}
		s.Heading = d
	}
	if err := s.Model.Validate(); err != nil {
		return config.Settings{}, err
	}
	logger.Debug("Settings resolved.",
		"turn_penalty", s.Model.TurnPenalty,
		"step_cost", s.Model.StepCost,
		"heading", s.Heading.String(),
		"max_edge", s.Model.MaxEdge(),
	)

	return s, nil
}

func loadMaze(ctx context.Context, path string) (*gridgraph.Maze, error) {
	ctxlog.FromContext(ctx).Debug("Loading maze.", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze %s: %w", path, err)
	}
	defer f.Close()

	m, err := gridgraph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse maze %s: %w", path, err)
	}

	return m, nil
}

// check compares the report against --expect-* values.
func (a *App) check(rep *route.Report) error {
	if want := a.config.ExpectCost; want != nil && *want != rep.MinCost {
		return fmt.Errorf("%w: min cost = %d, want %d", ErrExpectation, rep.MinCost, *want)
	}
	if want := a.config.ExpectTiles; want != nil && *want != rep.Tiles {
		return fmt.Errorf("%w: optimal tiles = %d, want %d", ErrExpectation, rep.Tiles, *want)
	}

	return nil
}
