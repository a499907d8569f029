package reconciler

import "strings"

const fractionSeparator = "."

// NormalizePrice converts price text into integer price digits.
// Everything from the first period is discarded (not rounded), every other non-digit is removed:
//
//	5'990.00 руб. -> 5990
//	5'990.60 руб. -> 5990
//	5'990,60 руб. -> 599060
//
// Comma is not a fraction separator, its fraction digits become a part of the price.
func NormalizePrice(price string) string {
	integer, _, _ := strings.Cut(price, fractionSeparator)

	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, integer)
}
