package parse

import (
	"slices"
	"testing"
)

func TestOr(t *testing.T) {
	keyword := Text(Or(String("return"), String("function"), String("switch"), String("if")))
	for _, in := range []string{"return", "if", "switch"} {
		if got := parseOK(t, keyword, in); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
	}
}

func TestOrBacktracksAfterPartialMatch(t *testing.T) {
	p := Text(Or(String("foo"), String("far")))
	if got := parseOK(t, p, "far"); got != "far" {
		t.Errorf("got %q, want %q", got, "far")
	}
}

func TestOrReportsFurthestFailure(t *testing.T) {
	ab := Seq2(Char('a'), Char('b'), func(a, b rune) string { return string([]rune{a, b}) })
	p := Or(ab, ReturnAs(Char('c'), "c"))

	err := parseErr(t, p, "ax")
	if want := "1:2: unexpected 'x'; expected b"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	tied := Or(String("foo"), String("fab"), String("foo"))
	err = parseErr(t, tied, "fxx")
	if !slices.Equal(err.Expected(), []string{"o", "a"}) {
		t.Errorf("Expected = %v, want [o a]", err.Expected())
	}
}

func TestXOr(t *testing.T) {
	p := XOr(Text(String("foo")), Identifier(Letter, LetterOrDigit))
	if got := parseOK(t, p, "bar"); got != "bar" {
		t.Errorf("got %q, want %q", got, "bar")
	}

	err := parseErr(t, p, "far")
	pos := err.Position()
	if pos.Offset != 1 || pos.Line != 1 || pos.Column != 2 {
		t.Errorf("failure at %+v, want offset 1 at 1:2", pos)
	}
	if want := "1:2: unexpected 'a'; expected o"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestXOrFallsThroughWithoutConsumption(t *testing.T) {
	p := XOr(Text(String("foo")), Text(String("bar")))
	if got := parseOK(t, p, "bar"); got != "bar" {
		t.Errorf("got %q, want %q", got, "bar")
	}
	err := parseErr(t, p, "xyz")
	if !slices.Equal(err.Expected(), []string{"foo", "bar"}) {
		t.Errorf("Expected = %v, want [foo bar]", err.Expected())
	}
}

var (
	testIdentifier = Identifier(Letter, LetterOrDigit)
	testLabel      = Left(Token(testIdentifier), Token(Char(':')))
)

func TestOptional(t *testing.T) {
	type instruction struct {
		name     string
		operands []string
	}
	instr := Seq2(Token(Text(Many(LetterOrDigit))), XDelimitedBy(Token(testIdentifier), Char(',')),
		func(name string, operands []string) instruction {
			return instruction{name, operands}
		})
	type line struct {
		label       Option[string]
		instruction Option[instruction]
	}
	assemblyLine := Seq2(Optional(testLabel), Optional(instr), func(l Option[string], i Option[instruction]) line {
		return line{l, i}
	})

	got := parseOK(t, assemblyLine, "test: mov ax, bx")
	if label, ok := got.label.Get(); !ok || label != "test" {
		t.Errorf("label = %q, %v", label, ok)
	}
	in, _ := got.instruction.Get()
	if in.name != "mov" || !slices.Equal(in.operands, []string{"ax", "bx"}) {
		t.Errorf("instruction = %+v", in)
	}

	got = parseOK(t, assemblyLine, "mov ax, bx")
	if got.label.IsDefined() {
		t.Error("label should not be defined")
	}
	if in, ok := got.instruction.Get(); !ok || in.name != "mov" {
		t.Errorf("instruction = %+v, %v", in, ok)
	}
}

func TestOptionalAlwaysSucceeds(t *testing.T) {
	for _, in := range []string{"", "x", "ab", "a:"} {
		r := Optional(testLabel).TryParse(in)
		if !r.Ok() {
			t.Errorf("Optional failed on %q: %v", in, r.Failure())
		}
	}
}

func TestXOptional(t *testing.T) {
	err := parseErr(t, XOptional(testLabel), "invalid label:")
	if want := "1:9: unexpected 'l'; expected :"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	r := XOptional(testLabel).TryParse("123")
	if !r.Ok() || r.Value().IsDefined() || r.Remainder().Offset() != 0 {
		t.Errorf("non-consuming failure should give None at the start, got %+v", r)
	}
}

func TestPreview(t *testing.T) {
	type tag struct {
		name    string
		hashtag string
		hasHash bool
	}
	p := Seq3(testIdentifier, Preview(Char('#')), Text(Until(AnyChar, LineTerminator)),
		func(name string, hash Option[rune], rest string) tag {
			return tag{name, rest, !hash.IsEmpty()}
		})

	got := parseOK(t, p, "foo#bar123")
	if got != (tag{"foo", "#bar123", true}) {
		t.Errorf("got %+v", got)
	}
	got = parseOK(t, p, "foo_bar123")
	if got != (tag{"foo", "_bar123", false}) {
		t.Errorf("got %+v", got)
	}
}

func keyword(text string) Parser[string] {
	return ReturnAs(Then(IgnoreCase(text), func([]rune) Parser[struct{}] {
		return Not(Or(LetterOrDigit, Char('_')))
	}), text)
}

func TestNot(t *testing.T) {
	ret := keyword("return")
	if got := parseOK(t, ret, "return"); got != "return" {
		t.Errorf("got %q, want %q", got, "return")
	}
	parseErr(t, ret, "return_")
	parseErr(t, ret, "returna")

	r := Not(Char('x')).TryParse("y")
	if !r.Ok() || r.Remainder().Offset() != 0 {
		t.Error("Not should succeed without consuming input")
	}
	r = Not(Char('x')).TryParse("x")
	if r.Ok() || r.Failure().Consumed || r.Failure().At.Offset() != 0 {
		t.Error("Not should fail without consuming input")
	}
}

func TestExcept(t *testing.T) {
	validChars := Except(AnyChar, Or(Chars(`'{}=,`), WhiteSpace))
	if got := parseOK(t, validChars, "t"); got != 't' {
		t.Errorf("got %q, want 't'", got)
	}
	err := parseErr(t, validChars, " ")
	if err.Position().Offset != 0 {
		t.Errorf("failure at %d, want 0", err.Position().Offset)
	}
}

func TestNamed(t *testing.T) {
	quotedText := Named(Contained(Text(Many(CharExcept(`"`))), Char('"'), Char('"')), "quoted text")
	err := parseErr(t, quotedText, "foo")
	if want := "1:1: unexpected 'f'; expected quoted text"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if got := parseOK(t, quotedText, `"hi"`); got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestEnd(t *testing.T) {
	if got := parseOK(t, End(Number), "12"); got != "12" {
		t.Errorf("got %q, want %q", got, "12")
	}
	err := parseErr(t, End(Number), "12_")
	if want := "1:3: unexpected '_'; expected end of input"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
