package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and the workflow engine
// return these (optionally wrapped) so call sites can branch with errors.Is.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: row or reference entry does not exist
// - ErrConflict: a guarded write lost to a concurrent one
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
