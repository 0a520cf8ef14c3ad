package classify

import "testing"

// TestBucketsAddSplitsOnBettiNotRank pins add's contract directly: the
// second argument must be the first Betti number (cols-rank), where >=1
// means torus-style and 0 means Klein-bottle-style. Feeding it a raw matrix
// rank instead (which is rarely 0) would leave every *_K counter dead.
func TestBucketsAddSplitsOnBettiNotRank(t *testing.T) {
	cases := []struct {
		chiV, betti int
		want        func(Buckets) int
	}{
		{0, 1, func(b Buckets) int { return b.E0T }},
		{0, 0, func(b Buckets) int { return b.E0K }},
		{-1, 1, func(b Buckets) int { return b.E91T }},
		{-1, 0, func(b Buckets) int { return b.E91K }},
		{-2, 1, func(b Buckets) int { return b.E92T }},
		{-2, 0, func(b Buckets) int { return b.E92K }},
		{-3, 1, func(b Buckets) int { return b.E93T }},
		{-3, 0, func(b Buckets) int { return b.E93K }},
	}
	for _, tc := range cases {
		var b Buckets
		if err := b.add(tc.chiV, tc.betti); err != nil {
			t.Fatalf("add(%d, %d): %v", tc.chiV, tc.betti, err)
		}
		if got := tc.want(b); got != 1 {
			t.Errorf("add(%d, %d): expected target bucket at 1, got %d (buckets=%+v)", tc.chiV, tc.betti, got, b)
		}
	}
}
