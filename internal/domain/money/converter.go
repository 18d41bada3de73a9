package money

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Subunit conversion between the local ledger and the processor API.
//
// The ledger stores amounts as fractional integers in the currency's own
// subunit; the processor wants its smallest chargeable unit. The two agree
// for most currencies (divisor 100) but diverge for three classes:
//
//   - zero-decimal: the processor unit is the major unit (divisor 1)
//   - three-decimal: divisor 1000 on both sides
//   - special cases: the processor insists on divisor 100 even though the
//     currency has no minor unit in practice; where the ledger carries
//     divisor 1 for those (ISK, UGX) the amount is scaled, where it already
//     carries 100 (HUF, TWD) it maps 1:1
//
// Conversion is (amount / localDivisor) * processorDivisor, computed in
// decimal so no float rounding can drift, and it is exactly invertible for
// every supported currency.

var ErrUnsupportedCurrency = errors.New("unsupported currency")

var zeroDecimal = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "VND": {}, "VUV": {},
	"XAF": {}, "XOF": {}, "XPF": {},
}

var threeDecimal = map[string]struct{}{
	"BHD": {}, "JOD": {}, "KWD": {}, "OMR": {}, "TND": {},
}

// specialHundred maps currencies the processor treats as divisor-100 despite
// their nominal decimal places, keyed to the divisor the local ledger uses.
var specialHundred = map[string]int64{
	"ISK": 1,
	"UGX": 1,
	"HUF": 100,
	"TWD": 100,
}

func divisors(currency string) (local, processor int64, ok bool) {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return 0, 0, false
	}
	if d, found := specialHundred[c]; found {
		return d, 100, true
	}
	if _, found := zeroDecimal[c]; found {
		return 1, 1, true
	}
	if _, found := threeDecimal[c]; found {
		return 1000, 1000, true
	}
	return 100, 100, true
}

// ToProcessorUnits converts a ledger-subunit amount into the processor's
// smallest-unit integer representation.
func ToProcessorUnits(amount int64, currency string) (int64, error) {
	local, processor, ok := divisors(currency)
	if !ok {
		return 0, ErrUnsupportedCurrency
	}
	if local == processor {
		return amount, nil
	}
	out := decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(local)).
		Mul(decimal.NewFromInt(processor))
	return out.IntPart(), nil
}

// ToLocalUnits is the inverse of ToProcessorUnits.
func ToLocalUnits(amount int64, currency string) (int64, error) {
	local, processor, ok := divisors(currency)
	if !ok {
		return 0, ErrUnsupportedCurrency
	}
	if local == processor {
		return amount, nil
	}
	out := decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(processor)).
		Mul(decimal.NewFromInt(local))
	return out.IntPart(), nil
}

// BoundaryCurrencies lists one representative per conversion class plus the
// full special-case set, sorted, for table-driven tests.
func BoundaryCurrencies() []string {
	out := []string{"USD", "JPY", "KWD"}
	for c := range specialHundred {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
