package translate

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnostics is the per-triangulation face-vector/degree-sequence summary
// printed to the informational stream (§6: "considered informational
// only"), computed the way lex_to_gap.c computes it: a vertex's degree is
// its raw occurrence count across the line's characters, halved and offset
// by 2.
type Diagnostics struct {
	Index              int
	F0, F1, F2, F3, G2 int
	Degrees            []int
	histogram          map[int]int
	maxDegree          int
}

// Analyze computes the diagnostics for the index-th decoded triangulation.
func Analyze(index int, tets [][4]int) Diagnostics {
	occurrences := make(map[int]int)
	maxLabel := 0
	for _, t := range tets {
		for _, v := range t {
			occurrences[v]++
			if v > maxLabel {
				maxLabel = v
			}
		}
	}

	f0 := maxLabel
	degrees := make([]int, f0)
	hist := make(map[int]int)
	maxDeg := 0
	for v := 1; v <= f0; v++ {
		d := occurrences[v]/2 + 2
		degrees[v-1] = d
		hist[d]++
		if d > maxDeg {
			maxDeg = d
		}
	}
	sort.Ints(degrees)

	f3 := len(tets)
	f1 := f3 + f0
	f2 := 2*f1 - 2*f0
	g2 := f1 - 4*f0 + 10

	return Diagnostics{
		Index: index, F0: f0, F1: f1, F2: f2, F3: f3, G2: g2,
		Degrees: degrees, histogram: hist, maxDegree: maxDeg,
	}
}

// String renders d in lex_to_gap.c's own "## ..." stdout format.
func (d Diagnostics) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %d, f = (%d,%d,%d,%d), g_2 = %d.\n##  deg = ",
		d.Index, d.F0, d.F1, d.F2, d.F3, d.G2)
	for i, deg := range d.Degrees {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", deg)
	}
	fmt.Fprintf(&sb, "\n##  n_4,... = %d", d.histogram[4])
	for v := 5; v <= d.maxDegree; v++ {
		fmt.Fprintf(&sb, ",%d", d.histogram[v])
	}
	return sb.String()
}
