package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MazePath     string // maze text file
	SettingsPath string // optional .hcl / .yaml settings file

	LogFormat string
	LogLevel  string

	// Flag overrides applied on top of the settings file; nil means unset.
	TurnPenalty *int64
	StepCost    *int64
	Heading     *string

	// Self-check expectations; nil means unchecked.
	ExpectCost  *int64
	ExpectTiles *int
}

// NewConfig validates cfg and returns a copy the App can own.
// MazePath is the only required field.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MazePath == "" {
		return nil, errors.New("MazePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
