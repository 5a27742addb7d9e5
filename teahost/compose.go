package teahost

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// composeAt overlays block on base with its top-left corner at cell
// (x, y). Splicing is ANSI-aware so styled base content survives on both
// sides of the block. Rows outside the base are dropped.
func composeAt(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, blockLine := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		blockWidth := ansi.StringWidth(blockLine)
		if blockWidth == 0 {
			continue
		}

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		end := x + blockWidth
		result := ansi.Cut(baseLine, 0, x) + blockLine
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
