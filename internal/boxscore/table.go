package boxscore

// Row maps canonical column names to string values. A key absent from the
// map is a null: the distinction between "" and absent matters because the
// validator treats empty strings as missing for everything except position.
type Row map[string]string

// Table is a normalized per-category stat table for a single game. Rows are
// keyed by the shared merge fields and carry category-specific stat columns
// under canonical names. Columns preserves a deterministic column order.
type Table struct {
	Category string
	Columns  []string
	Rows     []Row
}

// NewTable creates an empty table for a category. An empty table is a valid
// merge input contributing no rows.
func NewTable(category string) *Table {
	return &Table{Category: category}
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// HasColumn reports whether the table declares a column.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// EnsureColumn registers a column name if not already present.
func (t *Table) EnsureColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// SetAll assigns the same value to a column in every row, registering the
// column. Used for attaching game context (date, week, teams).
func (t *Table) SetAll(name, value string) {
	t.EnsureColumn(name)
	for _, row := range t.Rows {
		row[name] = value
	}
}

// DropColumn removes a column and its values from every row.
func (t *Table) DropColumn(name string) {
	kept := t.Columns[:0]
	for _, col := range t.Columns {
		if col != name {
			kept = append(kept, col)
		}
	}
	t.Columns = kept
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// AppendRow adds a row. Columns must be registered separately: map
// iteration order is not deterministic, and column order must be.
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy. Merge and dedup operate on copies so category
// tables can be reused by callers (and by tests) without aliasing surprises.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Category: t.Category,
		Columns:  append([]string(nil), t.Columns...),
		Rows:     make([]Row, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		cp := make(Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out.Rows = append(out.Rows, cp)
	}
	return out
}
