// Package app wires settings, maze loading, the solvers and reporting
// into a single run. It owns the process-level logger.
package app
