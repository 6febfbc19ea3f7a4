package exledger

import (
	"errors"
	"fmt"
	"strings"
)

// HeaderRow is the row index reported when a violation is found in the CSV header.
const HeaderRow = -1

// ErrIncompletePartition is returned when a partition does not account for
// every row of the ledger. It denotes a bug, not a data problem.
var ErrIncompletePartition = errors.New("incomplete partition")

// ErrExtraFields is returned when a ledger row has more fields than its header has columns.
var ErrExtraFields = errors.New("more fields than columns")

// UnknownExchangeError is returned when an exchange identifier is not registered.
type UnknownExchangeError struct {
	Name  string   // the identifier that was asked for
	Known []string // all registered identifiers, sorted
}

func (e *UnknownExchangeError) Error() string {
	return fmt.Sprintf("exchange %q not recognized, available exchanges: %s", e.Name, strings.Join(e.Known, ", "))
}

// SchemaViolationError is returned when a column expected by the schema is
// missing from a ledger row.
type SchemaViolationError struct {
	Row    int // zero based row index, or HeaderRow
	Column string
}

func (e *SchemaViolationError) Error() string {
	if e.Row == HeaderRow {
		return fmt.Sprintf("column %q missing from ledger header", e.Column)
	}
	return fmt.Sprintf("column %q missing from ledger row %d", e.Column, e.Row)
}

// MalformedAmountError is returned when a field cannot be parsed as a number.
//
// Row and Column are left empty when the failure does not come from a ledger.
type MalformedAmountError struct {
	Raw    string
	Row    int
	Column string
	Err    error
}

func (e *MalformedAmountError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("malformed amount %q", e.Raw)
	}
	return fmt.Sprintf("malformed amount %q in column %q of row %d", e.Raw, e.Column, e.Row)
}

func (e *MalformedAmountError) Unwrap() error { return e.Err }
