// Package money formats whole-rupee amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// INR renders v with Indian digit grouping, e.g. 1549000 -> "₹15,49,000".
func INR(v int64) string {
	return printer.Sprintf("₹%v", number.Decimal(v))
}
