package classify

import "fmt"

// Buckets counts, over every vertex of a complete triangulation, how many
// vertex links fall into each of §4.5's seven shape classes.
type Buckets struct {
	E2, E1           int // sphere, projective plane
	E0T, E0K         int // torus, Klein bottle (chi_v == 0)
	E91T, E91K       int // chi_v == -1
	E92T, E92K       int // chi_v == -2
	E93T, E93K       int // chi_v == -3
}

// add buckets one vertex link of Euler characteristic chiV, using betti (the
// link's first Betti number, columns-minus-rank of its boundary matrix, see
// Rank2) to split the orientable/non-orientable ties at chiV <= 0: a link
// with a 2-cycle (betti >= 1) is torus-style, one with none (betti == 0) is
// Klein-bottle-style. Per DESIGN.md, the *_T counters at chiV<0 are expected
// to stay at zero for every NV<=10 triangulation this module can enumerate
// in practice; they are still tracked for structural symmetry with E0T.
func (b *Buckets) add(chiV, betti int) error {
	switch chiV {
	case 2:
		b.E2++
	case 1:
		b.E1++
	case 0:
		if betti >= 1 {
			b.E0T++
		} else {
			b.E0K++
		}
	case -1:
		if betti >= 1 {
			b.E91T++
		} else {
			b.E91K++
		}
	case -2:
		if betti >= 1 {
			b.E92T++
		} else {
			b.E92K++
		}
	case -3:
		if betti >= 1 {
			b.E93T++
		} else {
			b.E93K++
		}
	default:
		return fmt.Errorf("classify: chi_v=%d: %w", chiV, ErrChiOutOfRange)
	}
	return nil
}

// Key is the classification key of §4.5, assembled once per complete
// triangulation and used to name its output file.
type Key struct {
	NV int
	Buckets
	Chi int
}

// FileName returns the output file name §6 specifies for k.
func (k Key) FileName() string {
	return fmt.Sprintf(
		"3-manifolds_%dv_%d_%d_%d_%d_%d_%d_%d_%d_%d_%d_Eul%d.lex",
		k.NV, k.E2, k.E1, k.E0T, k.E0K,
		k.E91T, k.E91K, k.E92T, k.E92K, k.E93T, k.E93K, k.Chi,
	)
}
