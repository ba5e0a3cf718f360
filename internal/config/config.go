package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/turncost"
)

// ErrUnknownFormat indicates a settings file extension other than .hcl,
// .yaml or .yml.
var ErrUnknownFormat = errors.New("config: unknown settings file format")

// Settings holds everything the solver can be tuned with.
type Settings struct {
	Model   turncost.Model
	Heading gridgraph.Direction
}

// Default returns the canonical puzzle settings.
func Default() Settings {
	return Settings{
		Model:   turncost.Default(),
		Heading: gridgraph.East,
	}
}

// fields is the decoded, still-optional form shared by both formats.
type fields struct {
	TurnPenalty  *int64
	StepCost     *int64
	StartHeading *string
}

// apply overlays the set fields on s and validates the result.
func (f fields) apply(s Settings) (Settings, error) {
	if f.TurnPenalty != nil {
		s.Model.TurnPenalty = *f.TurnPenalty
	}
	if f.StepCost != nil {
		s.Model.StepCost = *f.StepCost
	}
	if f.StartHeading != nil {
		d, err := gridgraph.ParseDirection(*f.StartHeading)
		if err != nil {
			return Settings{}, fmt.Errorf("config: start_heading: %w", err)
		}
		s.Heading = d
	}
	if err := s.Model.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}

	return s, nil
}

// Load reads the settings file at path, choosing the decoder by extension.
func Load(path string) (Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(src, path)
	case ".yaml", ".yml":
		return LoadYAML(src)
	default:
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
