package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/turnpath/turncost"
)

// hclFile is the top-level structure of a settings file for decoding.
type hclFile struct {
	TurnPenalty  *int64  `hcl:"turn_penalty,optional"`
	StepCost     *int64  `hcl:"step_cost,optional"`
	StartHeading *string `hcl:"start_heading,optional"`
}

// evalContext exposes the canonical settings to expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"canonical": cty.ObjectVal(map[string]cty.Value{
				"turn_penalty":  cty.NumberIntVal(turncost.DefaultTurnPenalty),
				"step_cost":     cty.NumberIntVal(turncost.DefaultStepCost),
				"start_heading": cty.StringVal("east"),
			}),
		},
	}
}

// LoadHCL decodes HCL settings from src. filename is only used in
// diagnostics.
func LoadHCL(src []byte, filename string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}

	return fields{
		TurnPenalty:  parsed.TurnPenalty,
		StepCost:     parsed.StepCost,
		StartHeading: parsed.StartHeading,
	}.apply(Default())
}
