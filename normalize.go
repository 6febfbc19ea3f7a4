package exledger

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NormalizeCurrencyAmount parses a monetary display string into a decimal.
//
// Currency symbols and white spaces around the number, and thousands
// separators inside it, are removed before parsing, so that "$1,234.50" is
// 1234.50 and "  42  " is 42. A minus sign may come before or after the
// leading currency symbol. A thousands separator is a comma or a space that
// is followed by a group of exactly three digits in the integer part. No
// currency conversion takes place: the value is in the unit the field was
// expressed in.
//
// It returns a *MalformedAmountError if what remains is not a number.
func NormalizeCurrencyAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimFunc(raw, isFormatting)
	sign := ""
	if rest, found := strings.CutPrefix(s, "-"); found {
		sign, s = "-", strings.TrimLeftFunc(rest, isFormatting)
	}

	digits, ok := ungroup(s)
	if !ok || digits == "" {
		return decimal.Zero, &MalformedAmountError{Raw: raw}
	}
	d, err := decimal.NewFromString(sign + digits)
	if err != nil {
		return decimal.Zero, &MalformedAmountError{Raw: raw, Err: err}
	}
	return d, nil
}

// isFormatting reports whether r may surround an amount.
func isFormatting(r rune) bool { return unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) }

// ungroup removes the thousands separators of s. It returns false if s
// contains a separator that does not split digit groups.
func ungroup(s string) (string, bool) {
	runes := []rune(s)
	var b strings.Builder
	fraction := false
	for i, r := range runes {
		switch {
		case r == '.':
			fraction = true
		case r == ',' || unicode.IsSpace(r):
			if fraction || !isGroupSeparator(runes, i) {
				return "", false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// isGroupSeparator reports whether runes[i] sits between a digit and a group of three digits.
func isGroupSeparator(runes []rune, i int) bool {
	if i == 0 || !isDigit(runes[i-1]) {
		return false
	}
	n := 0
	for j := i + 1; j < len(runes) && isDigit(runes[j]); j++ {
		n++
	}
	return n == 3
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
