package parse

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// CharFunc matches a single rune for which pred holds. On failure the
// description is reported as the only expectation and no input is consumed.
func CharFunc(pred func(rune) bool, description string) Parser[rune] {
	return func(in Cursor) Result[rune] {
		if !in.AtEnd() {
			if c := in.Current(); pred(c) {
				return Success(c, in.Advance())
			}
		}
		return Fail[rune](&Failure{At: in, Expected: []string{description}})
	}
}

// Char matches the rune c.
func Char(c rune) Parser[rune] {
	return CharFunc(func(r rune) bool { return r == c }, string(c))
}

// Chars matches any rune of set.
func Chars(set string) Parser[rune] {
	return CharFunc(func(r rune) bool {
		return strings.ContainsRune(set, r)
	}, alternatives(set))
}

// CharExcept matches any rune not in set.
func CharExcept(set string) Parser[rune] {
	return CharExceptFunc(func(r rune) bool {
		return strings.ContainsRune(set, r)
	}, alternatives(set))
}

// CharExceptFunc matches any rune for which pred does not hold.
func CharExceptFunc(pred func(rune) bool, description string) Parser[rune] {
	return CharFunc(func(r rune) bool { return !pred(r) }, "any character except "+description)
}

// IgnoreCaseChar matches c regardless of case. Case folding is locale
// independent.
func IgnoreCaseChar(c rune) Parser[rune] {
	want := fold(string(c))
	return CharFunc(func(r rune) bool {
		return fold(string(r)) == want
	}, string(c))
}

func alternatives(set string) string {
	parts := make([]string, 0, len(set))
	for _, r := range set {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, "|")
}

// fold applies Unicode simple case folding. A Caser keeps state between
// calls, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

var (
	WhiteSpace    = CharFunc(unicode.IsSpace, "whitespace")
	Digit         = CharFunc(unicode.IsDigit, "digit")
	Numeric       = CharFunc(unicode.IsNumber, "numeric character")
	Letter        = CharFunc(unicode.IsLetter, "letter")
	LetterOrDigit = CharFunc(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}, "letter or digit")
	Lower   = CharFunc(unicode.IsLower, "lowercase letter")
	Upper   = CharFunc(unicode.IsUpper, "uppercase letter")
	AnyChar = CharFunc(func(rune) bool { return true }, "any character")
)
