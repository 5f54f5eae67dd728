package termsim

import (
	"strings"

	"periph.io/x/devices/v3/segmux/segcode"
)

// RenderRows is the height of a rendered frame.
const RenderRows = 5

// Render draws a frame as ASCII art, one string per row. Each digit is six
// columns wide and digits are separated by a space:
//
//	 ---
//	|   |
//	 ---
//	|   |
//	 --- .
func Render(frame [NumDigits]segcode.Code) []string {
	var rows [RenderRows]strings.Builder
	for i, c := range frame {
		g := glyph(c)
		for r := range rows {
			if i > 0 {
				rows[r].WriteByte(' ')
			}
			rows[r].WriteString(g[r])
		}
	}
	out := make([]string, RenderRows)
	for r := range rows {
		out[r] = rows[r].String()
	}
	return out
}

func glyph(c segcode.Code) [RenderRows]string {
	h := func(m segcode.Code) string {
		if c.Lit(m) {
			return "---"
		}
		return "   "
	}
	v := func(m segcode.Code) string {
		if c.Lit(m) {
			return "|"
		}
		return " "
	}
	dp := " "
	if c.Lit(segcode.SegDP) {
		dp = "."
	}
	return [RenderRows]string{
		" " + h(segcode.SegA) + "  ",
		v(segcode.SegF) + "   " + v(segcode.SegB) + " ",
		" " + h(segcode.SegG) + "  ",
		v(segcode.SegE) + "   " + v(segcode.SegC) + " ",
		" " + h(segcode.SegD) + " " + dp,
	}
}
