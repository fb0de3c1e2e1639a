package mle

import (
	"fmt"
	"strings"
)

// SummaryTable holds the summary values for a fitted model.  The
// columns are pre-formatted strings; String lays them out under a
// title and a block of top-level facts about the fit.
type SummaryTable struct {

	// Title of the table
	Title string

	// Values at the top of the summary, shown two per line
	Top []string

	// Column names
	ColNames []string

	// Cols[j] is the j^th column of the table
	Cols [][]string

	// Messages displayed below the table
	Msg []string
}

// String returns the table as a string.
func (s *SummaryTable) String() string {

	// Column widths
	wx := make([]int, len(s.Cols))
	for j, col := range s.Cols {
		wx[j] = len(s.ColNames[j])
		for _, v := range col {
			if len(v) > wx[j] {
				wx[j] = len(v)
			}
		}
		wx[j] += 2
	}

	// Total width of the table
	var tw int
	for _, w := range wx {
		tw += w
	}
	if tw < len(s.Title) {
		tw = len(s.Title)
	}
	for _, v := range s.Top {
		if tw < len(v) {
			tw = len(v)
		}
	}

	line := func(c string) string {
		return strings.Repeat(c, tw) + "\n"
	}

	var b strings.Builder

	// Center the title
	k := (tw - len(s.Title)) / 2
	if k < 0 {
		k = 0
	}
	b.WriteString(strings.Repeat(" ", k))
	b.WriteString(s.Title)
	b.WriteString("\n")
	b.WriteString(line("="))

	for _, v := range s.Top {
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString(line("-"))

	for j, na := range s.ColNames {
		fmt.Fprintf(&b, "%*s", wx[j], na)
	}
	b.WriteString("\n")
	b.WriteString(line("-"))

	var nrow int
	if len(s.Cols) > 0 {
		nrow = len(s.Cols[0])
	}
	for i := 0; i < nrow; i++ {
		for j := range s.Cols {
			fmt.Fprintf(&b, "%*s", wx[j], s.Cols[j][i])
		}
		b.WriteString("\n")
	}
	b.WriteString(line("-"))

	for _, msg := range s.Msg {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	return b.String()
}
