package classify

import "errors"

// Error policy: sentinel package vars only, matched via errors.Is; context
// is attached with fmt.Errorf("...: %w", ErrX) at call sites, following
// builder/errors.go's policy.

var (
	// ErrChiOutOfRange indicates a vertex-link Euler characteristic fell
	// outside {2,1,0,-1,-2,-3} (§4.5's bucket table); a correct Admissibility
	// pass should never let this surface, so it marks an internal bug.
	ErrChiOutOfRange = errors.New("classify: vertex link chi out of range")

	// ErrSinkIO indicates a classification output file could not be opened,
	// written, or flushed.
	ErrSinkIO = errors.New("classify: output file error")
)
