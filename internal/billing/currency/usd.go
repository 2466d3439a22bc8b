// Package currency formats cent amounts as US dollars.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const centsPerDollar = 100

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders cents as en-US dollars, e.g. 173000 -> "$1,730.00".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / centsPerDollar
	frac := cents % centsPerDollar
	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", dollars), frac)
}

// Dollars converts cents to an exact decimal dollar value.
func Dollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
