package rtf

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrConstruction  = errors.New("construction error")
	ErrMergeConflict = errors.New("merge conflict")
	ErrLookup        = errors.New("lookup error")
)

// ConstructionError reports a call that would have introduced invalid state:
// bad range bounds, a bad footnote position or bad table dimensions.
// The model is left unchanged.
type ConstructionError struct {
	Op  string
	Msg string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("rtf: %s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

func constructionError(op, format string, args ...any) error {
	return &ConstructionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// MergeConflictError reports a merge request that is out of the grid bounds
// or overlaps an existing merged region. The grid is not modified.
type MergeConflictError struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Msg     string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("rtf: merge at (%d,%d) spanning %dx%d: %s",
		e.Row, e.Col, e.RowSpan, e.ColSpan, e.Msg)
}

// Is reports whether target is ErrMergeConflict.
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// LookupError reports an address that does not resolve: a merged-away cell,
// a cell outside the grid or an unknown resource index.
type LookupError struct {
	What string
	Msg  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("rtf: lookup %s: %s", e.What, e.Msg)
}

// Is reports whether target is ErrLookup.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}
