package view

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Abbreviate shortens name to at most maxWidth terminal cells by cutting
// out the middle and inserting "...". Grapheme clusters are never split.
// Names that fit are returned as is.
func Abbreviate(name string, maxWidth int) string {
	if uniseg.StringWidth(name) <= maxWidth {
		return name
	}

	clusters := graphemes(name)
	if maxWidth <= len(abbreviateMark) {
		return strings.Join(takeWidth(clusters, maxWidth), "")
	}

	budget := (maxWidth - len(abbreviateMark)) / 2
	head := takeWidth(clusters, budget)

	reversed := make([]string, len(clusters))
	for i, c := range clusters {
		reversed[len(clusters)-1-i] = c
	}
	tail := takeWidth(reversed, budget)
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}

	return strings.Join(head, "") + abbreviateMark + strings.Join(tail, "")
}

// takeWidth returns the leading clusters that fit in width cells
func takeWidth(clusters []string, width int) []string {
	var out []string
	used := 0
	for _, c := range clusters {
		w := uniseg.StringWidth(c)
		if used+w > width {
			break
		}
		used += w
		out = append(out, c)
	}
	return out
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// padRight pads s with spaces up to width terminal cells
func padRight(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
