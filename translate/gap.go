package translate

import (
	"fmt"
	"strings"
)

// EncodeGAP renders a decoded pick list as a GAP array literal, soft-wrapped
// near 72 columns per §6 (see doc.go's AI-Hints on why this module actually
// performs the wrap the reference only stubbed out).
func EncodeGAP(tets [][4]int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	lineLen := 1
	for i, t := range tets {
		chunk := fmt.Sprintf("[%d,%d,%d,%d]", t[0], t[1], t[2], t[3])
		if i > 0 {
			chunk = "," + chunk
		}
		if lineLen+len(chunk) > 72 {
			sb.WriteString("\n  ")
			lineLen = 2
		}
		sb.WriteString(chunk)
		lineLen += len(chunk)
	}
	sb.WriteByte(']')
	return sb.String()
}
