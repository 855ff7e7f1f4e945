package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/warehouse"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05.999999999"
)

var ErrNotSerializable = eris.New("value is not serializable")

type Row map[string]any

// String returns the value of a column as text. NULL and missing columns yield "".
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

type Records struct {
	Columns []string
	Rows    []Row
}

func (r Records) IsEmpty() bool {
	return len(r.Rows) == 0
}

func (r Records) Has(column string) bool {
	for _, c := range r.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Distinct drops rows whose values on the given columns were already seen.
func (r Records) Distinct(columns ...string) Records {
	seen := map[string]bool{}
	var rows []Row
	for _, row := range r.Rows {
		parts := make([]string, len(columns))
		for i, c := range columns {
			parts[i] = row.String(c)
		}
		key := strings.Join(parts, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}
	return Records{Columns: r.Columns, Rows: rows}
}

func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Shape normalizes column names and renders every date value as ISO-8601 text.
// It fails with ErrNotSerializable when a value is of a type it does not know.
func Shape(table warehouse.Table) (Records, error) {
	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = NormalizeColumn(c)
	}

	rows := make([]Row, 0, len(table.Rows))
	for _, values := range table.Rows {
		row := make(Row, len(columns))
		for i, c := range columns {
			if i >= len(values) {
				row[c] = nil
				continue
			}
			v, err := Serializable(values[i])
			if err != nil {
				return Records{}, eris.Wrapf(err, "column %s", c)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	return Records{Columns: columns, Rows: rows}, nil
}

// Serializable passes through values that are already plain JSON-like scalars
// and converts dates to text. Anything else is rejected.
func Serializable(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return value, nil
	case []byte:
		return string(value), nil
	case time.Time:
		return ISODate(value)
	case *time.Time:
		if value == nil {
			return nil, nil
		}
		return ISODate(*value)
	default:
		return nil, eris.Wrapf(ErrNotSerializable, "type %T", v)
	}
}

// ISODate renders a date or datetime as ISO-8601. A value without a clock part
// in UTC is treated as a plain date. Only time values are accepted.
func ISODate(v any) (string, error) {
	t, ok := v.(time.Time)
	if !ok {
		return "", eris.Wrapf(ErrNotSerializable, "type %T", v)
	}

	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout), nil
	}
	if t.Location() == time.UTC {
		return t.Format(dateTimeLayout), nil
	}
	return t.Format(dateTimeLayout + "Z07:00"), nil
}
