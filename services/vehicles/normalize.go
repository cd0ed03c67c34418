package vehicles

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"wtdata-backend/lib/htmlutil"
)

// Normalizers are total: whatever the source page contains, they
// return a value or the defined fallback, they never fail. One
// malformed field must not abort extraction of the rest of a record.

// NumericBound is the largest magnitude a normalized number may have.
// Anything beyond it is treated as corrupted source text (typically
// digits of several values concatenated together) and becomes
// "no value".
const NumericBound = 999.9

// NormalizeFreeText strips non-printable characters and trims the
// result; empty results become `def`.
func NormalizeFreeText(raw string, def Value) Value {
	cleaned := htmlutil.CleanText(raw)
	if cleaned == "" {
		return def
	}
	return Text(cleaned)
}

// NormalizeNumber keeps only digits and decimal points from the raw
// text, parses the remainder and rounds it to one decimal place.
// Unparseable or out-of-range input yields "no value".
func NormalizeNumber(raw string) Value {
	var b strings.Builder
	for _, c := range raw {
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteRune(c)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return NoValue()
	}

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return NoValue()
	}
	num = math.Round(num*10) / 10
	if num < -NumericBound || num > NumericBound {
		slog.Warn("numeric value out of range", "raw", raw, "parsed", num)
		return NoValue()
	}
	return Number(num)
}

// NormalizeDigits keeps only decimal digit characters; empty results
// become `def`.
func NormalizeDigits(raw string, def Value) Value {
	var b strings.Builder
	for _, c := range raw {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return def
	}
	return Text(b.String())
}

var romanRanks = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4,
	"V": 5, "VI": 6, "VII": 7, "VIII": 8,
}

// DecodeRank maps a roman-numeral rank to its 1-8 ordinal,
// case-insensitively. Unrecognized symbols map to 0.
func DecodeRank(raw string) int {
	return romanRanks[strings.ToUpper(strings.TrimSpace(raw))]
}
