package parse

import (
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DecimalWith matches a decimal number using sep as the decimal separator:
// digits with an optional fraction ("12", "12.5") or a bare fraction (".5").
// Once the separator has been read a fraction must follow.
func DecimalWith(sep rune) Parser[string] {
	fraction := Seq2(Char(sep), Number, func(s rune, digits string) string {
		return string(s) + digits
	})
	leading := Then(Number, func(integral string) Parser[string] {
		return Select(XOr(fraction, Return("")), func(f string) string {
			return integral + f
		})
	})
	return XOr(leading, fraction)
}

// DecimalFor matches a decimal number using the separator of locale.
func DecimalFor(locale language.Tag) Parser[string] {
	return DecimalWith(DecimalSeparator(locale))
}

var (
	// DecimalInvariant matches a decimal number with "." as the separator.
	DecimalInvariant = DecimalWith('.')

	// Decimal matches a decimal number using the separator of the locale
	// configured in the environment. The locale is looked up every time the
	// parser runs.
	Decimal Parser[string] = func(in Cursor) Result[string] {
		return localDecimal(EnvironmentLocale())(in)
	}

	// decimals caches the parser built for each locale Decimal has seen.
	decimals sync.Map
)

func localDecimal(locale language.Tag) Parser[string] {
	if p, ok := decimals.Load(locale); ok {
		return p.(Parser[string])
	}
	p, _ := decimals.LoadOrStore(locale, DecimalFor(locale))
	return p.(Parser[string])
}

// DecimalSeparator returns the rune locale writes between the integral and
// fractional part of a number.
func DecimalSeparator(locale language.Tag) rune {
	formatted := message.NewPrinter(locale).Sprintf("%.1f", 1.5)
	for _, r := range formatted {
		if !unicode.IsDigit(r) {
			return r
		}
	}
	return '.'
}

// EnvironmentLocale returns the numeric locale selected by LC_ALL,
// LC_NUMERIC or LANG, in that order of precedence. The C and POSIX locales,
// and anything unparseable, map to language.Und.
func EnvironmentLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if value == "C" || value == "POSIX" {
			return language.Und
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err != nil {
			return language.Und
		}
		return tag
	}
	return language.Und
}
