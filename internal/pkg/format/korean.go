// Package format renders payroll figures the way the Korean UI displays them.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var korean = message.NewPrinter(language.Korean)

// Currency formats an amount with ko-KR thousands separators and the won
// suffix, e.g. 10000 -> "10,000원".
func Currency(amount int64) string {
	return korean.Sprintf("%d", amount) + "원"
}

// Hours formats an hour count with ko-KR separators and the hours suffix,
// e.g. 7.5 -> "7.5시간", 1234 -> "1,234시간".
func Hours(hours float64) string {
	whole := int64(hours)
	s := korean.Sprintf("%d", whole)
	if frac := hours - float64(whole); frac > 1e-9 {
		// keep one decimal place, matching the duration rounding
		s += strconv.FormatFloat(frac, 'f', 1, 64)[1:]
	}
	return s + "시간"
}

var groupUnits = []string{"", "만", "억", "조"}

var digitChars = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// NumberToKorean spells out an amount grouped by 10000 with 만/억/조 unit
// labels and 천/백/십 digit groups inside each chunk, e.g. 75000 -> "7만5천".
// Values below 1000 render as plain digits; zero renders as the empty string.
func NumberToKorean(n int64) string {
	if n <= 0 {
		return ""
	}
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}

	result := ""
	unitIndex := 0
	for n > 0 {
		chunk := n % 10000
		if chunk > 0 {
			result = chunkToKorean(chunk) + groupUnits[unitIndex] + result
		}
		n /= 10000
		unitIndex++
	}
	return result
}

// chunkToKorean renders a 0..9999 chunk as digit-labeled thousands, hundreds,
// tens and ones, e.g. 5230 -> "5천2백3십".
func chunkToKorean(chunk int64) string {
	s := ""
	if thousands := chunk / 1000; thousands > 0 {
		s += digitChars[thousands] + "천"
	}
	if hundreds := (chunk % 1000) / 100; hundreds > 0 {
		s += digitChars[hundreds] + "백"
	}
	if tens := (chunk % 100) / 10; tens > 0 {
		s += digitChars[tens] + "십"
	}
	if ones := chunk % 10; ones > 0 {
		s += digitChars[ones]
	}
	return s
}
