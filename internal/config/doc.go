// Package config loads solver settings (turn penalty, step cost, start
// heading) from an HCL or YAML file. Keys missing from the file keep the
// canonical defaults; the result is validated before it is returned.
//
// HCL files may reference the canonical values through the `canonical`
// object, e.g.
//
//	turn_penalty  = canonical.turn_penalty * 2
//	start_heading = "north"
package config
