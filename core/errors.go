package core

import "errors"

// Error policy: every failure mode is a package-level sentinel, matched by
// callers with errors.Is, never by string comparison. Invariant-violation
// errors (ErrFaceOverflow, ErrUnknownFace, ErrNotPicked) indicate a bug in a
// caller that skipped or mis-ran an admissibility check; they are not
// expected to surface from a correctly sequenced search.
var (
	// ErrInvalidVertexCount is returned by NewComplex when n is outside
	// [4, MaxVertices].
	ErrInvalidVertexCount = errors.New("core: vertex count out of range")
	// ErrFaceOverflow is returned when AddTet would give a face a third
	// cofacet; a correct admissibility pass never lets this happen.
	ErrFaceOverflow = errors.New("core: face already has two cofacets")
	// ErrUnknownFace is returned by RemoveTet bookkeeping when a face
	// record referenced by an addedRecord no longer exists.
	ErrUnknownFace = errors.New("core: face record not found during undo")
	// ErrNotPicked is returned by RemoveTet when there is no pick to undo.
	ErrNotPicked = errors.New("core: no picked tetrahedron to remove")
	// ErrLabelGap names a candidate that introduces a vertex label more
	// than one past the current label count. AddTet does not return it:
	// root-fan seeding adds several labels at once, and CandidatesFor caps
	// fresh labels instead.
	ErrLabelGap = errors.New("core: candidate introduces a non-contiguous vertex label")
)
