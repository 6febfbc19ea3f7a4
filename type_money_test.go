package exledger

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{m: USD("350"), want: "$350.00"},
		{m: USD("1234.5"), want: "$1,234.50"},
		{m: USD("0.004"), want: "$0.00"},
		{m: M(0, "USD"), want: "$0.00"},
		{m: M(dec("12.345"), ""), want: "12.35"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	got := M(0, "").Add(USD("1.5")).Add(USD("2.25"))
	if !got.Equal(USD("3.75")) {
		t.Errorf("Add() = %v, want $3.75", got)
	}
	if got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want %q", got.Currency(), "USD")
	}
}

func TestMoney_AddMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add() of different currencies did not panic")
		}
	}()
	USD("1").Add(M(1, "EUR"))
}

func TestQuantity(t *testing.T) {
	q := Q(dec("0.1")).Add(Q(dec("0.2")))
	if !q.Equal(Q(dec("0.3"))) {
		t.Errorf("Add() = %v, want 0.3", q)
	}
	if q.String() != "0.3" {
		t.Errorf("String() = %q, want %q", q.String(), "0.3")
	}
	if !Q(0).IsZero() {
		t.Error("Q(0).IsZero() = false")
	}
}
