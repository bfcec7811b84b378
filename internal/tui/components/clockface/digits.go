package clockface

import "strings"

const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// BigDigits renders digits and colons in a five row block font. Anything
// after the first space (a time zone suffix) is appended as plain text on
// the bottom row.
func BigDigits(s string) string {
	digits, suffix, _ := strings.Cut(s, " ")

	var rows [glyphHeight][]string
	for _, r := range digits {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = strings.Join(rows[i], " ")
	}
	if suffix != "" {
		width := 0
		for _, l := range lines {
			if w := len([]rune(l)); w > width {
				width = w
			}
		}
		for i := range lines {
			pad := width - len([]rune(lines[i]))
			lines[i] += strings.Repeat(" ", pad) + "  "
			if i < glyphHeight-1 {
				lines[i] += strings.Repeat(" ", len([]rune(suffix)))
			}
		}
		lines[glyphHeight-1] += suffix
	}
	return strings.Join(lines, "\n")
}
