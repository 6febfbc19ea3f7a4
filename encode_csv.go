package exledger

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM is written by some exchanges in front of their exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeLedger reads a CSV export from 'r' using 'schema'.
//
// The first record is the header naming the columns. Records may be shorter
// than the header as long as they hold the type and currency columns, missing
// trailing columns are absent from the row. An empty file is an empty
// ledger with the schema columns.
func DecodeLedger(r io.Reader, schema *ExchangeSchema) (*Ledger, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return NewLedger(schema, schema.Columns(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read all CSV records: %w", err)
	}
	return NewLedger(schema, header, records)
}

// EncodeRows writes 'header' and 'rows' to 'w' in CSV format.
//
// Normalized columns are written as plain decimals.
func EncodeRows(w io.Writer, header []string, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row.Value(col)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row %d: %w", row.Index(), err)
		}
	}
	writer.Flush()
	return writer.Error()
}
