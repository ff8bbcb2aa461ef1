package debitnote

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders amounts as locale-formatted currency strings.
// The primary path is CLDR-driven; when the configured ISO code cannot be
// resolved, a manual symbol-prefixed, comma-grouped fallback takes over so
// formatting can never fail.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
	hasUnit bool
	symbol  string
}

// NewCurrencyFormatter builds a formatter for the given ISO currency code and
// BCP 47 locale. symbol is the prefix used by the manual fallback.
func NewCurrencyFormatter(code, locale, symbol string) *CurrencyFormatter {
	f := &CurrencyFormatter{symbol: symbol}
	if unit, err := currency.ParseISO(code); err == nil {
		f.unit = unit
		f.hasUnit = true
		f.printer = message.NewPrinter(language.Make(locale))
	}
	return f
}

// Format renders v as a currency string. Non-finite input is coerced to zero.
func (f *CurrencyFormatter) Format(v float64) string {
	if !isFinite(v) {
		v = 0
	}
	if f.hasUnit && f.printer != nil {
		if s := f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(v))); s != "" {
			return s
		}
	}
	return f.fallback(v)
}

func (f *CurrencyFormatter) fallback(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupThousands(fmt.Sprintf("%.2f", v))
	if neg {
		return "-" + f.symbol + s
	}
	return f.symbol + s
}

func groupThousands(s string) string {
	intPart, frac, found := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if found {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
