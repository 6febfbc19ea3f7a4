package exledger

import (
	"errors"
	"testing"
)

func TestNormalizeCurrencyAmount(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "$1,234.50", want: "1234.50"},
		{raw: "  42  ", want: "42"},
		{raw: "42", want: "42"},
		{raw: "-$12.00", want: "-12"},
		{raw: "$-12.00", want: "-12"},
		{raw: "€ 1 000.25", want: "1000.25"},
		{raw: "\t$0.000001\n", want: "0.000001"},
		{raw: "1,000,000", want: "1000000"},
		{raw: "£7", want: "7"},
		{raw: "1 234 567,000.5", want: "1234567000.5"},
		{raw: "- $ 3.5", want: "-3.5"},
		{raw: "100 €", want: "100"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := NormalizeCurrencyAmount(tc.raw)
			if err != nil {
				t.Fatalf("NormalizeCurrencyAmount(%q) unexpected error: %v", tc.raw, err)
			}
			if !got.Equal(dec(tc.want)) {
				t.Errorf("NormalizeCurrencyAmount(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeCurrencyAmount_Malformed(t *testing.T) {
	for _, raw := range []string{
		"", "   ", "$", "-$", "1.2.3", "abc", "$12.5x", "--1",
		"12$34", "1 2", "1,23", "1,,000", ",100", "100,", "0.123,456", "1,2345",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeCurrencyAmount(raw)
			var malformed *MalformedAmountError
			if !errors.As(err, &malformed) {
				t.Fatalf("NormalizeCurrencyAmount(%q) error = %v, want a *MalformedAmountError", raw, err)
			}
			if malformed.Raw != raw {
				t.Errorf("MalformedAmountError.Raw = %q, want %q", malformed.Raw, raw)
			}
		})
	}
}
