package pfr

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/boxscore"
)

// Stat tables on a game page, by table id.
const (
	tableOffense           = "player_offense"
	tableScoring           = "scoring"
	tableKicking           = "kicking"
	tableDefense           = "player_defense"
	tableReturns           = "returns"
	tableAdvancedPassing   = "passing_advanced"
	tableAdvancedRushing   = "rushing_advanced"
	tableAdvancedReceiving = "receiving_advanced"
	tableAdvancedDefense   = "defense_advanced"
	tableHomeSnapCounts    = "home_snap_counts"
	tableVisitorSnapCounts = "vis_snap_counts"
)

// ParseGameTables extracts every stat table from a game page. Most tables
// on the page are wrapped in HTML comments and only revealed by site
// JavaScript, so the comment markers are stripped before parsing. A table
// missing from the page comes back nil; that is normal for games without a
// given category.
func ParseGameTables(html string) (boxscore.GameTables, error) {
	doc, err := parseCleanHTML(html)
	if err != nil {
		return boxscore.GameTables{}, err
	}

	return boxscore.GameTables{
		Offense:           extractTable(doc, tableOffense),
		Scoring:           extractTable(doc, tableScoring),
		Kicking:           extractTable(doc, tableKicking),
		Defense:           extractTable(doc, tableDefense),
		Returns:           extractTable(doc, tableReturns),
		AdvancedPassing:   extractTable(doc, tableAdvancedPassing),
		AdvancedRushing:   extractTable(doc, tableAdvancedRushing),
		AdvancedReceiving: extractTable(doc, tableAdvancedReceiving),
		AdvancedDefense:   extractTable(doc, tableAdvancedDefense),
		HomeSnapCounts:    extractTable(doc, tableHomeSnapCounts),
		VisitorSnapCounts: extractTable(doc, tableVisitorSnapCounts),
	}, nil
}

// parseCleanHTML parses a page after removing comment markers. The site
// ships most stat tables inside <!-- --> blocks.
func parseCleanHTML(html string) (*goquery.Document, error) {
	clean := strings.ReplaceAll(html, "<!--", "")
	clean = strings.ReplaceAll(clean, "-->", "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// extractTable lifts one table into positional form: header names from the
// last thead row (earlier thead rows are grouping banners like "Passing"),
// one cell per th/td in each tbody row, keeping each cell's text and first
// link. Returns nil when the table is not on the page.
func extractTable(doc *goquery.Document, id string) *boxscore.RawTable {
	sel := doc.Find("table#" + id)
	if sel.Length() == 0 {
		return nil
	}
	table := sel.First()

	var columns []string
	table.Find("thead tr").Last().Find("th,td").Each(func(_ int, h *goquery.Selection) {
		columns = append(columns, strings.TrimSpace(h.Text()))
	})

	raw := &boxscore.RawTable{Columns: columns}
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		// Mid-table header repeats carry the thead class.
		if strings.Contains(tr.AttrOr("class", ""), "thead") {
			return
		}
		var cells []boxscore.Cell
		tr.Find("th,td").Each(func(_ int, td *goquery.Selection) {
			text := strings.TrimSpace(td.Text())
			href := td.Find("a").First().AttrOr("href", "")
			cells = append(cells, boxscore.Cell{Text: text, Href: href})
		})
		if len(cells) > 0 {
			raw.Rows = append(raw.Rows, cells)
		}
	})
	return raw
}
