// Package pricing renders prices for human display.
//
// The storefront deals in Kenyan shillings and whole amounts only. Catalog
// documents store prices as free-form strings ("45000", "KSh 45,000") or omit
// them entirely, so formatting must accept anything and never fail: inputs
// that cannot be turned into a finite number render as the "Price on request"
// sentinel instead.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sentinel is displayed when no usable price is available
const Sentinel = "Price on request"

var printer = message.NewPrinter(language.English)

// Format renders a price value as a display string.
//
// Accepted inputs: nil, string, and the common numeric types. Strings are
// stripped down to digits and the decimal point before parsing. Negative
// values clamp to zero. The result uses thousands grouping with no decimals,
// e.g. Format(90000) == "KSh 90,000". Re-formatting the sentinel yields the
// sentinel again.
func Format(price any) string {
	switch v := price.(type) {
	case nil:
		return Sentinel
	case string:
		return formatString(v)
	case *string:
		if v == nil {
			return Sentinel
		}
		return formatString(*v)
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return formatNumber(float64(v))
	case int32:
		return formatNumber(float64(v))
	case int64:
		return formatNumber(float64(v))
	default:
		return Sentinel
	}
}

func formatString(raw string) string {
	if raw == "" {
		return Sentinel
	}

	// Keep digits and the decimal point, drop currency symbols and grouping
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Sentinel
	}

	return formatNumber(parsed)
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Sentinel
	}

	v = math.Max(0, v)

	return printer.Sprintf("KSh %v", number.Decimal(v, number.MaxFractionDigits(0)))
}
