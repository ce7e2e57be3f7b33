package export

import (
	"strings"
	"unicode/utf8"
)

// wrap splits text into lines of at most width runes. Runs of whitespace
// collapse to a single space; words longer than width are broken.
// Empty or all-whitespace text yields no lines.
func wrap(text string, width int) []string {
	if width <= 0 {
		width = 1
	}

	var (
		lines  []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if curLen > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)

		if n > width {
			flush()
			runes := []rune(word)
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			cur.WriteString(string(runes))
			curLen = len(runes)
			continue
		}

		switch {
		case curLen == 0:
			cur.WriteString(word)
			curLen = n
		case curLen+1+n <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curLen += 1 + n
		default:
			flush()
			cur.WriteString(word)
			curLen = n
		}
	}
	flush()

	return lines
}
