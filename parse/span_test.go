package parse

import "testing"

type word struct {
	text   string
	pos    Position
	length int
}

func (w word) SetPos(start Position, length int) word {
	w.pos = start
	w.length = length
	return w
}

func TestSpan(t *testing.T) {
	words := Many(Token(Span(testIdentifier)))
	got := parseOK(t, words, " aaa bbb ")
	if len(got) != 2 {
		t.Fatalf("got %d spans, want 2", len(got))
	}

	tests := []struct {
		value      string
		start, end int
	}{
		{"aaa", 1, 4},
		{"bbb", 5, 8},
	}
	for i, tt := range tests {
		s := got[i]
		if s.Value != tt.value || s.Start.Offset != tt.start || s.End.Offset != tt.end || s.Length != 3 {
			t.Errorf("span %d = %+v, want %q at [%d, %d)", i, s, tt.value, tt.start, tt.end)
		}
	}
}

func TestSpanAcrossLines(t *testing.T) {
	got := parseOK(t, Many(Token(Span(testIdentifier))), "aaa\n  bbb")
	if len(got) != 2 {
		t.Fatalf("got %d spans, want 2", len(got))
	}
	if want := (Position{Offset: 6, Line: 2, Column: 3}); got[1].Start != want {
		t.Errorf("Start = %+v, want %+v", got[1].Start, want)
	}
	if want := (Position{Offset: 9, Line: 2, Column: 6}); got[1].End != want {
		t.Errorf("End = %+v, want %+v", got[1].End, want)
	}
}

func TestSpanInWhere(t *testing.T) {
	early := Where(Span(Number), func(s TextSpan[string]) bool { return s.Start.Offset <= 10 })
	p := Right(Many(Char(' ')), early)

	if got := parseOK(t, p, "   42"); got.Value != "42" {
		t.Errorf("got %q, want %q", got.Value, "42")
	}
	parseErr(t, p, "            42")
}

func TestPositioned(t *testing.T) {
	p := Many(Token(Positioned(Select(testIdentifier, func(s string) word { return word{text: s} }))))
	got := parseOK(t, p, "alpha\n beta")
	if len(got) != 2 {
		t.Fatalf("got %d words, want 2", len(got))
	}
	if got[0].pos != (Position{Offset: 0, Line: 1, Column: 1}) || got[0].length != 5 {
		t.Errorf("alpha = %+v", got[0])
	}
	if got[1].pos != (Position{Offset: 7, Line: 2, Column: 2}) || got[1].length != 4 {
		t.Errorf("beta = %+v", got[1])
	}
}
