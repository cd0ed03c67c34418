package vehicles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeNumber(t *testing.T) {
	{
		v := NormalizeNumber("850 km/h")
		num, ok := v.Number()
		require.True(t, ok)
		require.Equal(t, 850.0, num)
	}
	{
		v := NormalizeNumber("9.83 m")
		num, ok := v.Number()
		require.True(t, ok)
		require.Equal(t, 9.8, num)
	}
	{
		// digits of several values concatenated blow past the bound
		// and must not be stored as a bogus number
		v := NormalizeNumber("1,234.5 km/h")
		require.True(t, v.IsNone())
	}
	{
		v := NormalizeNumber("-0.35")
		num, ok := v.Number()
		require.True(t, ok)
		// the sign is not a digit, it gets stripped with the rest
		require.Equal(t, 0.3, num)
	}
	{
		require.True(t, NormalizeNumber("").IsNone())
		require.True(t, NormalizeNumber("N/A").IsNone())
		require.True(t, NormalizeNumber("1.2.3").IsNone())
	}
}

func TestNormalizeFreeText(t *testing.T) {
	def := Text("Unknown")
	{
		v := NormalizeFreeText("  Packard   V-1650-7\n", def)
		text, ok := v.Text()
		require.True(t, ok)
		require.Equal(t, "Packard V-1650-7", text)
	}
	{
		require.Equal(t, def, NormalizeFreeText("", def))
		require.Equal(t, def, NormalizeFreeText("  \n\t ", def))
	}
}

func TestNormalizeDigits(t *testing.T) {
	{
		v := NormalizeDigits("3 people", NoValue())
		text, ok := v.Text()
		require.True(t, ok)
		require.Equal(t, "3", text)
	}
	{
		require.True(t, NormalizeDigits("people", NoValue()).IsNone())
	}
}

func TestDecodeRank(t *testing.T) {
	require.Equal(t, 4, DecodeRank("IV"))
	require.Equal(t, 4, DecodeRank("iv"))
	require.Equal(t, 8, DecodeRank(" VIII "))
	require.Equal(t, 0, DecodeRank("IX"))
	require.Equal(t, 0, DecodeRank("Unknown"))
	require.Equal(t, 0, DecodeRank(""))
}
