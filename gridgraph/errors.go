package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a rune outside the tile alphabet.
	ErrUnknownTile = errors.New("gridgraph: unknown tile")
	// ErrMissingSource indicates no source marker was found.
	ErrMissingSource = errors.New("gridgraph: source marker 'S' not found")
	// ErrDuplicateSource indicates more than one source marker.
	ErrDuplicateSource = errors.New("gridgraph: more than one source marker 'S'")
	// ErrMissingTarget indicates no target marker was found.
	ErrMissingTarget = errors.New("gridgraph: target marker 'E' not found")
	// ErrDuplicateTarget indicates more than one target marker.
	ErrDuplicateTarget = errors.New("gridgraph: more than one target marker 'E'")
	// ErrBadDirection indicates a heading name that could not be parsed.
	ErrBadDirection = errors.New("gridgraph: unknown direction")
)
