// Package normalize converts base denom integers into display units,
// percentages and allocation ratios. All functions are pure and use exact
// decimal arithmetic so the same input always yields the same output.
package normalize

import (
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

var (
	microPerUnit = sdkmath.LegacyNewDec(types.MicroPerUnit)
	hundred      = sdkmath.LegacyNewDec(100)
	half         = sdkmath.LegacyNewDecWithPrec(5, 1)
)

// ToDisplayUnits divides a base denom amount by 1,000,000. No rounding.
func ToDisplayUnits(micro sdkmath.Int) sdkmath.LegacyDec {
	return ToDisplayUnitsDec(sdkmath.LegacyNewDecFromInt(micro))
}

// ToDisplayUnitsDec is ToDisplayUnits for base denom amounts that keep a
// fractional part, such as summed reward amounts.
func ToDisplayUnitsDec(micro sdkmath.LegacyDec) sdkmath.LegacyDec {
	return micro.Quo(microPerUnit)
}

// ToUsdValue returns (micro/1e6)*price rounded half-up to 2 decimal places.
func ToUsdValue(micro sdkmath.Int, usdPricePerUnit sdkmath.LegacyDec) sdkmath.LegacyDec {
	return RoundHalfUp(ToDisplayUnits(micro).Mul(usdPricePerUnit), 2)
}

// ToAllocationPercent returns (part*100)/whole rounded half-up to 2 decimal
// places. A zero whole yields zero rather than an undefined value.
func ToAllocationPercent(part, whole sdkmath.Int) sdkmath.LegacyDec {
	if whole.IsZero() {
		return sdkmath.LegacyZeroDec()
	}
	pct := sdkmath.LegacyNewDecFromInt(part).Mul(hundred).QuoInt(whole)
	return RoundHalfUp(pct, 2)
}

// ToPercent multiplies a fraction by 100.
func ToPercent(fraction sdkmath.LegacyDec) sdkmath.LegacyDec {
	return fraction.Mul(hundred)
}

// RoundHalfUp rounds d to the given number of decimal places, with ties going
// away from zero.
func RoundHalfUp(d sdkmath.LegacyDec, places int64) sdkmath.LegacyDec {
	scale := sdkmath.LegacyNewDec(10).Power(uint64(places))
	scaled := d.Mul(scale)
	if scaled.IsNegative() {
		scaled = scaled.Sub(half)
	} else {
		scaled = scaled.Add(half)
	}
	return scaled.TruncateDec().Quo(scale)
}

// ParseDec parses an upstream decimal string. param names the field in the
// returned InvalidParameterError.
func ParseDec(param, value string) (sdkmath.LegacyDec, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return sdkmath.LegacyDec{}, types.NewInvalidParameterError(param, value, "empty value")
	}
	d, err := sdkmath.LegacyNewDecFromStr(v)
	if err != nil {
		return sdkmath.LegacyDec{}, types.NewInvalidParameterError(param, value, "not a decimal")
	}
	return d, nil
}

// ParseMicro parses a base denom amount. Upstream sometimes renders integer
// amounts with a fractional part ("1000.000000"); the fraction is truncated.
func ParseMicro(param, value string) (sdkmath.Int, error) {
	d, err := ParseDec(param, value)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return d.TruncateInt(), nil
}

// CoinDisplay converts a coin in the base denom to display units. Coins that
// are already in the display denom are returned as-is.
func CoinDisplay(c types.Coin) (sdkmath.LegacyDec, error) {
	if c.Amount == "" {
		return sdkmath.LegacyZeroDec(), nil
	}
	if strings.EqualFold(c.Denom, types.DisplayDenom) {
		return ParseDec("amount", c.Amount)
	}
	micro, err := ParseMicro("amount", c.Amount)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return ToDisplayUnits(micro), nil
}

// Format renders d without trailing fractional zeros, e.g. "12.5" or "40".
// A nil decimal renders as "0".
func Format(d sdkmath.LegacyDec) string {
	if d.IsNil() {
		return "0"
	}
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
