package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mobius-tri/lextet/admissibility"
	"github.com/mobius-tri/lextet/canon"
	"github.com/mobius-tri/lextet/classify"
	"github.com/mobius-tri/lextet/core"
)

// Summary reports per-Run counters, surfaced by -v and by cmd/lextet.
type Summary struct {
	Triangulations int
	RootDegreesRun []int
}

// Run is the Driver Shell of §4.6: for every admissible root-edge degree d,
// seed the root fan and drive the Search Driver to completion, writing
// every leaf it finds through a classify.Sink. ctx is checked only between
// root-edge-degree passes (see doc.go): a single triangulation's recursion
// is never interrupted mid-proof.
func Run(ctx context.Context, n int, opts ...Option) (Summary, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sink := cfg.sink
	if sink == nil {
		var err error
		sink, err = classify.NewSink(".")
		if err != nil {
			return Summary{}, err
		}
		defer sink.Close()
	}

	var summary Summary

	// A session id tags every log line of this Run purely for correlating
	// -r/-m worker processes in verbose mode; it never affects deterministic
	// output (emitted files, exit codes — §8's idempotence property).
	if cfg.logger != nil {
		cfg.logger = cfg.logger.With("session", uuid.New().String())
	}

	minD, maxD := 3, n-2
	if cfg.irreducibleOnly {
		maxD = n - 3
	}

	for d := minD; d <= maxD; d++ {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		c, err := core.NewComplex(n)
		if err != nil {
			return summary, err
		}
		if err := seedRootFan(c, d); err != nil {
			return summary, fmt.Errorf("search: seed root fan d=%d: %w", d, err)
		}

		dr := &driver{
			c:       c,
			n:       n,
			cache:   canon.NewCache(),
			opts:    cfg,
			sink:    sink,
			summary: &summary,
		}
		if err := dr.step(); err != nil {
			return summary, err
		}
		summary.RootDegreesRun = append(summary.RootDegreesRun, d)
		if cfg.logger != nil {
			cfg.logger.Info("root edge degree complete",
				"d", d, "triangulations", summary.Triangulations)
		}
	}
	return summary, nil
}

// seedRootFan builds the d-tetrahedron root fan of §4.6 around edge (0,1)
// using labels 2..d+1 closed cyclically back to label 2.
func seedRootFan(c *core.Complex, d int) error {
	ring := make([]int, d)
	for i := range ring {
		ring[i] = i + 2
	}
	for i := 0; i < d; i++ {
		a, b := ring[i], ring[(i+1)%d]
		if _, _, err := c.AddTet(core.Sorted(0, 1, a, b), true); err != nil {
			return err
		}
	}
	return nil
}

// driver holds the per-root-degree recursion state: the Complex being
// grown, the automorphism cache threaded through canon.IsMinLex, and the
// shared Summary/Sink every leaf reports to.
type driver struct {
	c       *core.Complex
	n       int
	cache   *canon.Cache
	opts    Options
	sink    *classify.Sink
	summary *Summary
}

// splitLevel is the §4.4 "tunable near half the target tetrahedron count"
// depth at which res/mod filtering applies, approximated here as half of n
// (the target vertex count is the only size parameter available up front;
// a run's eventual tetrahedron count is data-dependent and unknown until
// the leaf is reached).
func (dr *driver) splitLevel() int { return dr.n / 2 }

func (dr *driver) atSplitLevel() bool {
	_, _, _, ntP := dr.c.PickCounts()
	return ntP == dr.splitLevel()
}

func (dr *driver) isLeaf() bool {
	if dr.c.NV() < dr.n {
		return false
	}
	for v := 0; v < dr.c.NV(); v++ {
		if !dr.c.CompleteP(v) {
			return false
		}
	}
	return true
}

// step is the Search Driver's recursive core (§4.4): at a leaf, classify
// and emit; otherwise compute the next slot, try every admissible,
// canonical completion in increasing order, recursing on each and undoing
// before the next.
func (dr *driver) step() error {
	if dr.isLeaf() {
		return dr.emit()
	}

	v0, v1, ok := nextSlot(dr.c, dr.n)
	if !ok {
		return nil
	}
	rootDeg12, _ := dr.c.EdgeDegP(0, 1)
	atSplit := dr.opts.mod > 1 && dr.atSplitLevel()

	for i, t := range candidatesFor(dr.c, v0, v1) {
		if atSplit && i%dr.opts.mod != dr.opts.res {
			continue
		}
		if !admissibility.PreCheck(dr.c, t) {
			continue
		}

		_, newlyCompleteP, err := dr.c.AddTet(t, true)
		if err != nil {
			return err
		}

		if admissibility.PostCheck(dr.c, t, rootDeg12, newlyCompleteP) &&
			!dr.hasContractibleEdge(t) &&
			canon.IsMinLex(dr.c, dr.cache) {
			if err := dr.step(); err != nil {
				return err
			}
		}

		_, newlyIncompleteP, err := dr.c.RemoveTet()
		if err != nil {
			return err
		}
		for _, v := range newlyIncompleteP {
			dr.cache.Purge(v)
		}
	}
	return nil
}

// hasContractibleEdge implements §9's irreducible-mode edge rejection,
// mirroring original_source/lextet.c's do_tetrahedron irreducible branch
// (~line 2305): only active when -i is set and the target vertex count
// exceeds 5 (below that every edge is trivially contractible and the check
// would reject everything); checked once per newly-committed tetrahedron t,
// over each of t's four vertices that is already complete-in-A, paired
// against every A-adjacent vertex not among t's own earlier-indexed
// vertices that is itself complete-in-A. A single contractible pairing
// rejects t outright.
func (dr *driver) hasContractibleEdge(t core.Tetrahedron) bool {
	if !dr.opts.irreducibleOnly || dr.n <= 5 {
		return false
	}
	for i, v := range t {
		if !dr.c.CompleteA(v) {
			continue
		}
		for vi := 0; vi < dr.c.NV(); vi++ {
			deg12, _ := dr.c.EdgeDegA(v, vi)
			if deg12 == 0 {
				continue
			}
			earlier := false
			for j := 0; j < i; j++ {
				if t[j] == vi {
					earlier = true
					break
				}
			}
			if earlier || !dr.c.CompleteA(vi) {
				continue
			}
			if admissibility.Contractible(dr.c, v, vi) {
				return true
			}
		}
	}
	return false
}

func (dr *driver) emit() error {
	key, err := classify.Classify(dr.c)
	if err != nil {
		return err
	}
	line := classify.EncodeLine(dr.c.NV(), dr.c.Picks())
	if err := dr.sink.Emit(key, line); err != nil {
		return err
	}
	dr.summary.Triangulations++
	return nil
}
