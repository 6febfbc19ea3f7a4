package exledger

import (
	"fmt"
	"slices"
)

// Ledger is the ordered list of rows of one exchange export.
//
// A Ledger is never modified once built, it can be partitioned and
// aggregated any number of times, including concurrently.
type Ledger struct {
	schema *ExchangeSchema
	header []string
	rows   []Row
}

// NewLedger builds a ledger from CSV records whose column names are given by header.
//
// The header must contain the schema type column and currency columns,
// otherwise a *SchemaViolationError is returned with Row set to HeaderRow.
// Every record must hold them too, a shorter record returns a
// *SchemaViolationError with its index. A record with more fields than the
// header returns ErrExtraFields.
// Columns the schema lists for normalization are parsed into decimals, a
// field that is not a number returns a *MalformedAmountError.
func NewLedger(schema *ExchangeSchema, header []string, records [][]string) (*Ledger, error) {
	required := append([]string{schema.TypeColumn()}, schema.CurrencyColumns()...)
	for _, col := range required {
		if !slices.Contains(header, col) {
			return nil, &SchemaViolationError{Row: HeaderRow, Column: col}
		}
	}

	l := &Ledger{
		schema: schema,
		header: slices.Clone(header),
		rows:   make([]Row, 0, len(records)),
	}
	for i, record := range records {
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields for %d columns", ErrExtraFields, i, len(record), len(header))
		}
		row := newRow(i, l.header, record)
		for _, col := range required {
			if _, ok := row.Field(col); !ok {
				return nil, &SchemaViolationError{Row: i, Column: col}
			}
		}
		for _, col := range schema.NormalizedColumns() {
			var err error
			if row, err = row.normalized(col); err != nil {
				return nil, err
			}
		}
		l.rows = append(l.rows, row)
	}
	return l, nil
}

// Schema returns the schema the ledger was read with.
func (l *Ledger) Schema() *ExchangeSchema { return l.schema }

// Header returns the column names in file order.
func (l *Ledger) Header() []string { return slices.Clone(l.header) }

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.rows) }

// Row returns the i-th row.
func (l *Ledger) Row(i int) Row { return l.rows[i] }

// Rows returns all the rows, in ledger order.
func (l *Ledger) Rows() []Row { return slices.Clone(l.rows) }
