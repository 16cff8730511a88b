package normalize

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

func dec(t *testing.T, s string) sdkmath.LegacyDec {
	t.Helper()
	d, err := sdkmath.LegacyNewDecFromStr(s)
	require.NoError(t, err)
	return d
}

func TestToDisplayUnits(t *testing.T) {
	assert.True(t, dec(t, "3").Equal(ToDisplayUnits(sdkmath.NewInt(3_000_000))))
	assert.True(t, dec(t, "0.000001").Equal(ToDisplayUnits(sdkmath.NewInt(1))))
	assert.True(t, sdkmath.LegacyZeroDec().Equal(ToDisplayUnits(sdkmath.ZeroInt())))
	// no rounding is applied
	assert.True(t, dec(t, "1.234567").Equal(ToDisplayUnits(sdkmath.NewInt(1_234_567))))
}

func TestToDisplayUnitsDec(t *testing.T) {
	assert.True(t, dec(t, "2.0000022").Equal(ToDisplayUnitsDec(dec(t, "2000002.2"))))
	assert.True(t, dec(t, "0.0000005").Equal(ToDisplayUnitsDec(dec(t, "0.5"))))
}

func TestToUsdValue(t *testing.T) {
	tests := []struct {
		name     string
		micro    int64
		price    string
		expected string
	}{
		{"whole units", 2_000_000, "0.5", "1.00"},
		{"rounds half up", 1_000_000, "0.125", "0.13"},
		{"rounds down", 1_000_000, "0.124", "0.12"},
		{"zero amount", 0, "1.5", "0"},
		{"fractional units", 1_500_000, "0.07", "0.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUsdValue(sdkmath.NewInt(tt.micro), dec(t, tt.price))
			assert.True(t, dec(t, tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestToAllocationPercent(t *testing.T) {
	t.Run("quarter", func(t *testing.T) {
		got := ToAllocationPercent(sdkmath.NewInt(50), sdkmath.NewInt(200))
		assert.True(t, dec(t, "25.00").Equal(got))
	})
	t.Run("zero whole is defined", func(t *testing.T) {
		got := ToAllocationPercent(sdkmath.ZeroInt(), sdkmath.ZeroInt())
		assert.True(t, got.IsZero())
		assert.Equal(t, "0", Format(got))
	})
	t.Run("non zero part over zero whole", func(t *testing.T) {
		got := ToAllocationPercent(sdkmath.NewInt(10), sdkmath.ZeroInt())
		assert.True(t, got.IsZero())
	})
	t.Run("rounds to two places", func(t *testing.T) {
		// 1/3 = 33.333...%
		got := ToAllocationPercent(sdkmath.NewInt(1), sdkmath.NewInt(3))
		assert.True(t, dec(t, "33.33").Equal(got), "got %s", got)
		// 2/3 = 66.666...%
		got = ToAllocationPercent(sdkmath.NewInt(2), sdkmath.NewInt(3))
		assert.True(t, dec(t, "66.67").Equal(got), "got %s", got)
	})
}

func TestToPercent(t *testing.T) {
	assert.True(t, dec(t, "12.5").Equal(ToPercent(dec(t, "0.125"))))
	assert.True(t, dec(t, "100").Equal(ToPercent(sdkmath.LegacyOneDec())))
}

func TestRoundHalfUp(t *testing.T) {
	assert.True(t, dec(t, "2").Equal(RoundHalfUp(dec(t, "1.5"), 0)))
	assert.True(t, dec(t, "1").Equal(RoundHalfUp(dec(t, "1.49"), 0)))
	assert.True(t, dec(t, "-2").Equal(RoundHalfUp(dec(t, "-1.5"), 0)))
	assert.True(t, dec(t, "0.01").Equal(RoundHalfUp(dec(t, "0.005"), 2)))
}

func TestParseDec(t *testing.T) {
	d, err := ParseDec("x", " 0.25 ")
	require.NoError(t, err)
	assert.True(t, dec(t, "0.25").Equal(d))

	_, err = ParseDec("x", "abc")
	require.Error(t, err)
	assert.True(t, types.IsInvalidParameterError(err))

	_, err = ParseDec("x", "")
	assert.True(t, types.IsInvalidParameterError(err))
}

func TestParseMicro(t *testing.T) {
	v, err := ParseMicro("amount", "1000.999999")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v.Int64())
}

func TestCoinDisplay(t *testing.T) {
	d, err := CoinDisplay(types.NewBaseCoin("2500000"))
	require.NoError(t, err)
	assert.True(t, dec(t, "2.5").Equal(d))

	d, err = CoinDisplay(types.Coin{Amount: "2.5", Denom: "NYM"})
	require.NoError(t, err)
	assert.True(t, dec(t, "2.5").Equal(d))

	d, err = CoinDisplay(types.Coin{})
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		in   sdkmath.LegacyDec
		want string
	}{
		{sdkmath.LegacyNewDec(40), "40"},
		{sdkmath.LegacyNewDecWithPrec(125, 1), "12.5"},
		{sdkmath.LegacyNewDecWithPrec(521, 4), "0.0521"},
		{sdkmath.LegacyZeroDec(), "0"},
		{sdkmath.LegacyNewDec(-3), "-3"},
		{sdkmath.LegacyDec{}, "0"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Format(tc.in))
	}
}
