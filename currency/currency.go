// Package currency converts between typed text, pt-BR currency strings and
// numeric amounts.
package currency

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Marker prefixes every formatted amount.
const Marker = "R$"

const (
	decimalSeparator   = ","
	thousandsSeparator = "."
	displayPlaces      = 2
)

// Mask renders the digits found in raw as an amount in cents, the way the
// amount fields are masked on every keystroke. Only the digit sequence of
// raw matters: "R$ 1.234,56", "123456" and "12a34-56" all mask the same.
func Mask(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return render("0.00")
	}

	cents, err := decimal.NewFromString(digits)
	if err != nil {
		return render("0.00")
	}
	return render(cents.Shift(-displayPlaces).StringFixed(displayPlaces))
}

// Parse reads a formatted amount back into a number. It returns NaN when
// text is empty or what is left after stripping the formatting is not a
// number. Dot placement is not validated and exponent notation is refused.
func Parse(text string) float64 {
	if text == "" {
		return math.NaN()
	}

	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	s = strings.Replace(s, Marker, "", 1)
	s = strings.ReplaceAll(s, thousandsSeparator, "")
	s = strings.Replace(s, decimalSeparator, ".", 1)

	// Typed amounts never carry an exponent, and converting a huge one to
	// float64 is unbounded work.
	if strings.ContainsAny(s, "eE") {
		return math.NaN()
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.NaN()
	}
	f, _ := d.Float64()
	return f
}

// Format renders amount as pt-BR currency with two decimals, rounding half
// away from zero on the shortest decimal form of the float.
func Format(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return Marker + " NaN"
	case math.IsInf(amount, 1):
		return Marker + " ∞"
	case math.IsInf(amount, -1):
		return Marker + " -∞"
	}
	return render(decimal.NewFromFloat(amount).StringFixed(displayPlaces))
}

// FormatPercent renders a percentage with two decimals, e.g. "16.00%".
func FormatPercent(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "NaN%"
	}
	return decimal.NewFromFloat(pct).StringFixed(displayPlaces) + "%"
}

// render takes a fixed-point string such as "-1234.50".
func render(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return Marker + " " + sign + groupThousands(whole) + decimalSeparator + frac
}

func groupThousands(whole string) string {
	n := len(whole)
	if n <= 3 {
		return whole
	}

	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(whole[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
