package boxscore

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports a cell that could not be coerced to its field's
// type. It is the only fatal error the pipeline produces: the caller
// decides whether to abort the batch or skip the record.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s: value %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

type statKind int

const (
	statInt statKind = iota
	statFloat
)

type statField struct {
	index int
	kind  statKind
}

// Validator turns reconciled rows into Records. It is not safe for
// concurrent use: it caches which unknown columns it has already warned
// about.
type Validator struct {
	fields map[string]statField
	warned map[string]bool
}

// NewValidator indexes Record's stat fields by their column names.
func NewValidator() *Validator {
	v := &Validator{
		fields: make(map[string]statField),
		warned: make(map[string]bool),
	}
	rt := reflect.TypeOf(Record{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Type.Kind() != reflect.Pointer {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "" {
			continue
		}
		kind := statFloat
		if f.Type.Elem().Kind() == reflect.Int {
			kind = statInt
		}
		v.fields[tag] = statField{index: i, kind: kind}
	}
	return v
}

// identity and context columns are coerced explicitly, not via the stat
// field index.
var identityColumns = map[string]bool{
	ColPlayer: true, ColPlayerID: true, ColTeam: true, ColPosition: true,
	ColDate: true, ColWeek: true, ColSeason: true, ColHomeAway: true,
	ColHomeTeam: true, ColAwayTeam: true, ColSourceURL: true,
}

// ValidateRow coerces one row into a Record. Percentage strings become
// fractions. Empty cells are missing values, except position, which may
// legitimately be empty. A row without a player_id is invalid.
func (v *Validator) ValidateRow(row Row) (*Record, error) {
	rec := &Record{
		Player:    row[ColPlayer],
		PlayerID:  row[ColPlayerID],
		Team:      row[ColTeam],
		Position:  row[ColPosition],
		HomeAway:  row[ColHomeAway],
		HomeTeam:  row[ColHomeTeam],
		AwayTeam:  row[ColAwayTeam],
		SourceURL: row[ColSourceURL],
	}
	if rec.PlayerID == "" {
		return nil, &ValidationError{Field: ColPlayerID, Value: "", Err: fmt.Errorf("missing")}
	}

	if raw := row[ColDate]; raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, &ValidationError{Field: ColDate, Value: raw, Err: err}
		}
		rec.Date = date
	}
	for _, col := range []string{ColWeek, ColSeason} {
		raw := row[col]
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ValidationError{Field: col, Value: raw, Err: err}
		}
		if col == ColWeek {
			rec.Week = n
		} else {
			rec.Season = n
		}
	}

	rv := reflect.ValueOf(rec).Elem()
	for col, raw := range row {
		if identityColumns[col] {
			continue
		}
		field, ok := v.fields[col]
		if !ok {
			if !v.warned[col] {
				v.warned[col] = true
				log.Printf("[validate] ⚠️ unknown column %q ignored", col)
			}
			continue
		}
		value := normalizeCell(raw)
		if value == "" {
			continue
		}
		if err := setStat(rv.Field(field.index), field.kind, value); err != nil {
			return nil, &ValidationError{Field: col, Value: raw, Err: err}
		}
	}
	return rec, nil
}

// ValidateAll coerces every row, failing on the first invalid one.
func (v *Validator) ValidateAll(t *Table) ([]Record, error) {
	records := make([]Record, 0, len(t.Rows))
	for i, row := range t.Rows {
		rec, err := v.ValidateRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// normalizeCell converts a trailing-percent string to its fractional form.
// When the numeric part does not parse the raw string is returned intact so
// that coercion fails loudly instead of zeroing the value.
func normalizeCell(raw string) string {
	if !strings.HasSuffix(raw, "%") {
		return raw
	}
	num := strings.TrimSuffix(raw, "%")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f/100, 'f', -1, 64)
}

func setStat(field reflect.Value, kind statKind, value string) error {
	switch kind {
	case statInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(&n))
	default:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(&f))
	}
	return nil
}
