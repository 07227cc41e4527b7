package dialogue

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width terminal columns, then
// keeps at most maxLines of them. Newlines in text force a break. A single
// word wider than width gets a line of its own and is not split.
func Wrap(text string, width, maxLines int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		cur := ""
		for _, word := range strings.Fields(para) {
			if cur == "" {
				cur = word
				continue
			}
			if runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width {
				cur += " " + word
				continue
			}
			lines = append(lines, cur)
			cur = word
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
