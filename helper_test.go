package exledger

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// nexoCSV is a small Nexo export used across tests.
const nexoCSV = `Transaction,Type,Input Currency,Output Currency,Input Amount,Output Amount,Date / Time (UTC),USD Equivalent,Average Price
NXT1,Interest,BTC,BTC,0.1,0.1,2024-01-01 00:00:00,$100.00,
NXT2,Deposit,USDC,USDC,1000,1000,2024-01-02 00:00:00,"$1,000.00",
NXT3,Interest,BTC,BTC,0.2,0.2,2024-01-03 00:00:00,$250.00,
NXT4,Transfer to Nexo Wallet,USDC,USDC,500,500,2024-01-04 00:00:00,$500.00,
NXT5,Interest,ETH,ETH,0.5,0.5,2024-01-05 00:00:00,$900.50,
`

// mustResolve returns the schema of a default exchange.
func mustResolve(t *testing.T, name string) *ExchangeSchema {
	t.Helper()
	s, err := Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) unexpected error: %v", name, err)
	}
	return s
}

// mustDecode decodes a CSV ledger.
func mustDecode(t *testing.T, schema *ExchangeSchema, content string) *Ledger {
	t.Helper()
	l, err := DecodeLedger(strings.NewReader(content), schema)
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	return l
}

// dec is a helper for test to create decimal from const string.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// USD is a helper for test to create usd money from const string.
func USD(s string) Money { return M(dec(s), "USD") }
