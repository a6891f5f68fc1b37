package table

import "errors"

var (
	ErrInvalidTable     = errors.New("invalid unit table")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidName      = errors.New("invalid unit name")
	ErrDuplicateUnit    = errors.New("duplicate unit")
	ErrDuplicateSymbol  = errors.New("duplicate symbol")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrInvalidEdge      = errors.New("invalid conversion edge")
	ErrHubEdge          = errors.New("hub unit must not declare a conversion")
	ErrSelfReference    = errors.New("unit converts through itself")
	ErrConflictingEdges = errors.New("conflicting conversion fields")
)
