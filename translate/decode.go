package translate

import "fmt"

// alphabet is the same a...z,A...Z base-52 label alphabet classify.EncodeLine
// writes with; DecodeLine is built as its exact inverse so the round-trip
// property of §8 holds (re-parsing an emitted line and re-adding it via
// core.Complex.AddTet reconstructs the same classification).
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var charIndex = buildCharIndex()

func buildCharIndex() map[byte]int {
	m := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = i
	}
	return m
}

// DecodeLine parses one base-52-encoded triangulation line into its pick
// list of 1-based vertex labels, four per tetrahedron, in pick order.
func DecodeLine(line string) ([][4]int, error) {
	if len(line) == 0 || len(line)%4 != 0 {
		return nil, fmt.Errorf("translate: line length %d is not a positive multiple of 4", len(line))
	}
	tets := make([][4]int, len(line)/4)
	for i := range tets {
		for j := 0; j < 4; j++ {
			ch := line[i*4+j]
			idx, ok := charIndex[ch]
			if !ok {
				return nil, fmt.Errorf("translate: unknown label character %q", ch)
			}
			tets[i][j] = idx + 1
		}
	}
	return tets, nil
}
