package parse

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDecimalWith(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[string]
		input string
		want  string
	}{
		{"comma", DecimalWith(','), "123,45", "123,45"},
		{"invariant", DecimalInvariant, "123.45", "123.45"},
		{"integral only", DecimalInvariant, "123", "123"},
		{"leading separator", DecimalInvariant, ".5", ".5"},
		{"other separator is left over", DecimalInvariant, "1,5", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseOK(t, tt.p, tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecimalRequiresFraction(t *testing.T) {
	err := parseErr(t, DecimalWith(','), "12,")
	if want := "1:4: unexpected end of input; expected numeric character"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	parseErr(t, DecimalInvariant, "x")
}

func TestDecimalSeparator(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want rune
	}{
		{language.Und, '.'},
		{language.AmericanEnglish, '.'},
		{language.French, ','},
		{language.German, ','},
	}
	for _, tt := range tests {
		if got := DecimalSeparator(tt.tag); got != tt.want {
			t.Errorf("DecimalSeparator(%v) = %q, want %q", tt.tag, got, tt.want)
		}
	}
	if got := parseOK(t, DecimalFor(language.German), "1,5"); got != "1,5" {
		t.Errorf("got %q, want %q", got, "1,5")
	}
}

func TestEnvironmentLocale(t *testing.T) {
	tests := []struct {
		lcAll, lcNumeric, lang string
		want                   string
	}{
		{"", "", "", "und"},
		{"C", "", "fr_FR.UTF-8", "und"},
		{"", "de_DE.UTF-8", "en_US.UTF-8", "de-DE"},
		{"", "", "fr_FR.UTF-8@euro", "fr-FR"},
		{"POSIX", "", "", "und"},
	}
	for _, tt := range tests {
		t.Setenv("LC_ALL", tt.lcAll)
		t.Setenv("LC_NUMERIC", tt.lcNumeric)
		t.Setenv("LANG", tt.lang)
		if got := EnvironmentLocale().String(); got != tt.want {
			t.Errorf("LC_ALL=%q LC_NUMERIC=%q LANG=%q: got %s, want %s",
				tt.lcAll, tt.lcNumeric, tt.lang, got, tt.want)
		}
	}
}

func TestDecimalFollowsEnvironment(t *testing.T) {
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "")

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	if got := parseOK(t, Decimal, "3,14"); got != "3,14" {
		t.Errorf("fr_FR: got %q, want %q", got, "3,14")
	}

	t.Setenv("LC_ALL", "C")
	if got := parseOK(t, Decimal, "3.14"); got != "3.14" {
		t.Errorf("C: got %q, want %q", got, "3.14")
	}

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	if got := parseOK(t, Decimal, "2,5"); got != "2,5" {
		t.Errorf("fr_FR again: got %q, want %q", got, "2,5")
	}
	if _, ok := decimals.Load(language.MustParse("fr-FR")); !ok {
		t.Error("parser for fr-FR was not cached")
	}
}
