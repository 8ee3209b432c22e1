package boxscore

import (
	"strconv"
	"strings"
)

// Cell is a single table cell as extracted from the source page. A cell is
// either a plain value or a value with an embedded hyperlink; the shape is
// decided by the source column, not per row.
type Cell struct {
	Text string
	Href string
}

// Plain builds a cell without a hyperlink.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// Linked builds a cell carrying both display text and a hyperlink.
func Linked(text, href string) Cell {
	return Cell{Text: text, Href: href}
}

// IsLinked reports whether the cell carries a hyperlink.
func (c Cell) IsLinked() bool {
	return c.Href != ""
}

// RawTable is a positional table exactly as lifted off the source page:
// header names plus cell rows. Header names may repeat; DedupeColumns
// resolves repeats positionally before any header-keyed access.
type RawTable struct {
	Columns []string
	Rows    [][]Cell
}

// IsEmpty reports whether the table carries no data rows. A nil table is
// empty: an absent source table and a present-but-blank one are handled
// identically downstream.
func (t *RawTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// ColumnIndex returns the position of a named column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// DedupeColumns renames repeated headers positionally: the second "Yds"
// becomes "Yds.1", the third "Yds.2", and so on. The per-category rename
// tables are keyed on these positional names, so disambiguation must be
// stable regardless of what the repeated headers actually say.
func DedupeColumns(columns []string) []string {
	seen := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, col := range columns {
		n := seen[col]
		seen[col] = n + 1
		if n == 0 {
			out[i] = col
			continue
		}
		out[i] = col + "." + strconv.Itoa(n)
	}
	return out
}

// PlayerIDFromHref derives the stable player identifier from a player page
// hyperlink: the last path segment with its extension stripped, so
// ".../players/J/JeffJu00.htm" yields "JeffJu00". Returns "" when no
// identity can be extracted.
func PlayerIDFromHref(href string) string {
	if href == "" {
		return ""
	}
	segment := href
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.LastIndex(segment, "."); idx >= 0 {
		segment = segment[:idx]
	}
	return segment
}
