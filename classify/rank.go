package classify

import (
	"fmt"
	"math"

	"github.com/mobius-tri/lextet/matrix"
)

// epsPivot is the zero-pivot tolerance used while searching for a row-swap
// candidate; boundary-matrix entries are exactly 0, +1 or -1, so anything
// this small is genuinely a zero, not accumulated float error.
const epsPivot = 1e-9

// Rank2 computes the rank of m over the rationals via Gaussian elimination
// to row-echelon form with partial (row-swap) pivoting, adapted from
// matrix.LU's Doolittle elimination style (fixed loop order, *Dense fast
// path) but WITH pivoting added: m is a link boundary matrix (rows =
// link-edges, columns = link-faces, entries in {-1,0,+1}) and is neither
// guaranteed square nor guaranteed to avoid a zero leading entry the way
// matrix.LU's no-pivot contract assumes, so the teacher's LU is adapted
// rather than reused verbatim (see DESIGN.md).
//
// Contract: m non-nil. Complexity: O(min(r,c)*r*c).
func Rank2(m *matrix.Dense) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("classify: nil matrix: %w", matrix.ErrNilMatrix)
	}

	rows, cols := m.Rows(), m.Cols()
	work := make([][]float64, rows)
	for i := range work {
		work[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			work[i][j] = v
		}
	}

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivotRow := -1
		best := epsPivot
		for r := rank; r < rows; r++ {
			if mag := math.Abs(work[r][col]); mag > best {
				best = mag
				pivotRow = r
			}
		}
		if pivotRow == -1 {
			continue
		}
		work[rank], work[pivotRow] = work[pivotRow], work[rank]

		pivot := work[rank][col]
		for r := rank + 1; r < rows; r++ {
			factor := work[r][col] / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				work[r][c] -= factor * work[rank][c]
			}
		}
		rank++
	}
	return rank, nil
}
