package exledger

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Row is a single transaction line of a Ledger.
//
// A Row is immutable: fields are only read, filtered and grouped. Columns
// listed in the schema for normalization also carry their decimal value.
type Row struct {
	index  int
	fields map[string]string
	values map[string]decimal.Decimal
}

// newRow maps a CSV record on the header. Columns past the end of the record are absent,
// the record must not be longer than the header.
func newRow(index int, header []string, record []string) Row {
	r := Row{index: index, fields: make(map[string]string, len(header))}
	for i, col := range header {
		if i >= len(record) {
			break
		}
		r.fields[col] = record[i]
	}
	return r
}

// Index returns the position of the row in its original ledger.
func (r Row) Index() int { return r.index }

// Field returns the raw text of a column, and false if the column is absent.
func (r Row) Field(column string) (string, bool) {
	v, ok := r.fields[column]
	return v, ok
}

// Value returns the text representation of a column as it must be written
// back: normalized columns are written as plain decimals.
func (r Row) Value(column string) string {
	if d, ok := r.values[column]; ok {
		return d.String()
	}
	return r.fields[column]
}

// Decimal returns the numeric value of a column.
//
// The normalized value is used when there is one, otherwise the raw text is
// normalized on the fly. It returns a *SchemaViolationError if the column is
// absent and a *MalformedAmountError if it is not a number.
func (r Row) Decimal(column string) (decimal.Decimal, error) {
	if d, ok := r.values[column]; ok {
		return d, nil
	}
	raw, ok := r.fields[column]
	if !ok {
		return decimal.Zero, &SchemaViolationError{Row: r.index, Column: column}
	}
	d, err := NormalizeCurrencyAmount(raw)
	if err != nil {
		return decimal.Zero, &MalformedAmountError{Raw: raw, Row: r.index, Column: column, Err: err}
	}
	return d, nil
}

// normalized returns a copy of r where column holds its decimal value.
func (r Row) normalized(column string) (Row, error) {
	raw, ok := r.fields[column]
	if !ok || raw == "" {
		// an empty cell is a null, it stays as is.
		return r, nil
	}
	d, err := NormalizeCurrencyAmount(raw)
	if err != nil {
		return r, &MalformedAmountError{Raw: raw, Row: r.index, Column: column, Err: err}
	}
	values := maps.Clone(r.values)
	if values == nil {
		values = make(map[string]decimal.Decimal)
	}
	values[column] = d
	r.values = values
	return r, nil
}
