// Package money formats rupee amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// locale drives digit grouping; en-IN groups thousands, then lakhs and crores.
var locale = language.MustParse("en-IN")

// FormatINR formats a whole-rupee amount with the rupee sign, locale digit
// grouping and no fractional digits, e.g. 18999 -> "₹18,999".
func FormatINR(amount int64) string {
	return message.NewPrinter(locale).Sprintf("₹%d", amount)
}
