package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	TurnPenalty  *int64  `yaml:"turn_penalty"`
	StepCost     *int64  `yaml:"step_cost"`
	StartHeading *string `yaml:"start_heading"`
}

// LoadYAML decodes YAML settings from src. Unknown keys are rejected and
// an empty document yields the defaults.
func LoadYAML(src []byte) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var parsed yamlFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("config: failed to decode YAML: %w", err)
	}

	return fields{
		TurnPenalty:  parsed.TurnPenalty,
		StepCost:     parsed.StepCost,
		StartHeading: parsed.StartHeading,
	}.apply(Default())
}
