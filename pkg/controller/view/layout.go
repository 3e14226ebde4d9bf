package view

const (
	columnGap      = "  "
	totalSpacing   = 2 * len(columnGap)
	minName        = 20
	minModified    = 15
	minRelative    = 10
	abbreviateMark = "..."
)

// Layout holds the widths of the three table columns
type Layout struct {
	Name     int
	Modified int
	Relative int
}

// NewLayout splits a terminal width 5:3:2 between the name, modified time
// and relative time columns, then applies per-column minimums.
func NewLayout(termWidth int) Layout {
	available := termWidth - totalSpacing
	if available < 0 {
		available = 0
	}

	name := available * 5 / 10
	modified := available * 3 / 10
	relative := available - name - modified

	return Layout{
		Name:     max(name, minName),
		Modified: max(modified, minModified),
		Relative: max(relative, minRelative),
	}
}
