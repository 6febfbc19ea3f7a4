package exledger

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	l := mustDecode(t, mustResolve(t, "Nexo"), nexoCSV)

	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	if l.Schema().Name() != "Nexo" {
		t.Errorf("Schema().Name() = %q, want %q", l.Schema().Name(), "Nexo")
	}
	row := l.Row(1)
	if got, _ := row.Field("Type"); got != "Deposit" {
		t.Errorf("row 1 Type = %q, want %q", got, "Deposit")
	}
	// normalized columns keep their raw text and carry their decimal value.
	if got, _ := row.Field("USD Equivalent"); got != "$1,000.00" {
		t.Errorf("row 1 raw USD Equivalent = %q, want %q", got, "$1,000.00")
	}
	if got := row.Value("USD Equivalent"); got != "1000" {
		t.Errorf("row 1 USD Equivalent = %q, want %q", got, "1000")
	}
}

func TestDecodeLedger_BOM(t *testing.T) {
	content := "\xEF\xBB\xBFUser_ID,UTC_Time,Account,Operation,Coin,Change,Remark\n1,t,Spot,Deposit,BTC,1,\n"
	l := mustDecode(t, mustResolve(t, "Binance"), content)

	if got := l.Header()[0]; got != "User_ID" {
		t.Errorf("first column = %q, want %q", got, "User_ID")
	}
}

func TestDecodeLedger_MissingHeaderColumn(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		column  string
	}{
		{name: "type", content: "Transaction,Input Currency,Output Currency\nNXT1,BTC,BTC\n", column: "Type"},
		{name: "currency", content: "Transaction,Type,Input Currency\nNXT1,Interest,BTC\n", column: "Output Currency"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.content), mustResolve(t, "Nexo"))
			var violation *SchemaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("DecodeLedger() error = %v, want a *SchemaViolationError", err)
			}
			if violation.Row != HeaderRow || violation.Column != tc.column {
				t.Errorf("SchemaViolationError = %+v, want header column %q", violation, tc.column)
			}
		})
	}
}

func TestDecodeLedger_MalformedNormalizedColumn(t *testing.T) {
	content := "Transaction,Type,Input Currency,Output Currency,USD Equivalent\nNXT1,Interest,BTC,BTC,$1\nNXT2,Interest,BTC,BTC,unknown\n"
	_, err := DecodeLedger(strings.NewReader(content), mustResolve(t, "Nexo"))

	var malformed *MalformedAmountError
	if !errors.As(err, &malformed) {
		t.Fatalf("DecodeLedger() error = %v, want a *MalformedAmountError", err)
	}
	if malformed.Row != 1 || malformed.Column != "USD Equivalent" {
		t.Errorf("MalformedAmountError = %+v, want row 1 column \"USD Equivalent\"", malformed)
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	nexo := mustResolve(t, "Nexo")
	l, err := DecodeLedger(strings.NewReader(""), nexo)
	if err != nil {
		t.Fatalf("DecodeLedger() of an empty file unexpected error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if !slices.Equal(l.Header(), nexo.Columns()) {
		t.Errorf("Header() = %q, want the schema columns %q", l.Header(), nexo.Columns())
	}
}

func TestDecodeLedger_ShortRow(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		row     int
		column  string
	}{
		{
			name:    "no currency",
			content: "Transaction,Type,Input Currency,Output Currency\nNXT1,Interest,BTC,BTC\nNXT2,Deposit\n",
			row:     1,
			column:  "Input Currency",
		},
		{
			name:    "no output currency",
			content: "Transaction,Type,Input Currency,Output Currency\nNXT1,Interest,BTC\n",
			row:     0,
			column:  "Output Currency",
		},
		{
			name:    "no type",
			content: "Transaction,Type,Input Currency,Output Currency\nNXT1,Interest,BTC,BTC\nNXT2\n",
			row:     1,
			column:  "Type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.content), mustResolve(t, "Nexo"))
			var violation *SchemaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("DecodeLedger() error = %v, want a *SchemaViolationError", err)
			}
			if violation.Row != tc.row || violation.Column != tc.column {
				t.Errorf("SchemaViolationError = %+v, want row %d column %q", violation, tc.row, tc.column)
			}
		})
	}
}

func TestDecodeLedger_ShortOptionalColumns(t *testing.T) {
	// trailing columns the schema does not require may be missing.
	l := mustDecode(t, mustResolve(t, "Nexo"), "Transaction,Type,Input Currency,Output Currency,Input Amount\nNXT1,Interest,BTC,BTC\n")
	if _, ok := l.Row(0).Field("Input Amount"); ok {
		t.Error("Field(\"Input Amount\") found in a short row")
	}
}

func TestDecodeLedger_ExtraFields(t *testing.T) {
	content := "Transaction,Type,Input Currency,Output Currency\nNXT1,Interest,BTC,BTC\nNXT2,Interest,BTC,BTC,EXTRA,DATA\n"
	_, err := DecodeLedger(strings.NewReader(content), mustResolve(t, "Nexo"))
	if !errors.Is(err, ErrExtraFields) {
		t.Fatalf("DecodeLedger() error = %v, want ErrExtraFields", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("error %q does not name the row", err)
	}
}

func TestEncodeRows(t *testing.T) {
	l := mustDecode(t, mustResolve(t, "Nexo"), nexoCSV)
	p, err := Partition(l, "Type")
	if err != nil {
		t.Fatalf("Partition() unexpected error: %v", err)
	}
	deposit, _ := p.Group("Deposit")

	var buf bytes.Buffer
	if err := EncodeRows(&buf, l.Header(), deposit.Rows); err != nil {
		t.Fatalf("EncodeRows() unexpected error: %v", err)
	}

	want := "Transaction,Type,Input Currency,Output Currency,Input Amount,Output Amount,Date / Time (UTC),USD Equivalent,Average Price\n" +
		"NXT2,Deposit,USDC,USDC,1000,1000,2024-01-02 00:00:00,1000,\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeRows() =\n%s\nwant\n%s", got, want)
	}

	// the encoded rows can be read back with the same schema.
	back := mustDecode(t, mustResolve(t, "Nexo"), buf.String())
	if !slices.Equal(back.Header(), l.Header()) || back.Len() != 1 {
		t.Errorf("decoded back %d rows with header %q", back.Len(), back.Header())
	}
}
