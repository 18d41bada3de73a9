package money

import (
	"errors"
	"testing"
)

func TestToProcessorUnits(t *testing.T) {
	cases := []struct {
		name     string
		amount   int64
		currency string
		want     int64
	}{
		{"two-decimal USD", 1999, "USD", 1999},
		{"two-decimal EUR zero", 0, "EUR", 0},
		{"zero-decimal JPY", 1999, "JPY", 1999},
		{"three-decimal KWD", 1999, "KWD", 1999},
		{"special ISK scales up", 500, "ISK", 50000},
		{"special UGX scales up", 1, "UGX", 100},
		{"special HUF maps 1:1", 12345, "HUF", 12345},
		{"special TWD maps 1:1", 990, "TWD", 990},
		{"lowercase currency", 1999, "usd", 1999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToProcessorUnits(tc.amount, tc.currency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}

	t.Run("unsupported currency", func(t *testing.T) {
		if _, err := ToProcessorUnits(100, ""); !errors.Is(err, ErrUnsupportedCurrency) {
			t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	amounts := []int64{0, 1, 7, 99, 100, 1999, 123456789}
	for _, currency := range BoundaryCurrencies() {
		for _, amount := range amounts {
			processor, err := ToProcessorUnits(amount, currency)
			if err != nil {
				t.Fatalf("%s: to processor: %v", currency, err)
			}
			back, err := ToLocalUnits(processor, currency)
			if err != nil {
				t.Fatalf("%s: to local: %v", currency, err)
			}
			if back != amount {
				t.Fatalf("%s: round trip %d -> %d -> %d", currency, amount, processor, back)
			}
		}
	}
}

func TestToLocalUnits_ScalesDown(t *testing.T) {
	got, err := ToLocalUnits(50000, "ISK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 500 {
		t.Fatalf("got %d, want 500", got)
	}
}
