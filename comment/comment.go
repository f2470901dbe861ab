// Package comment builds parsers for the comment syntax of a language from
// its markers.
package comment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/combo/parse"
)

// ErrNotConfigured is returned when a parser is requested for a kind of
// comment the syntax has no markers for.
var ErrNotConfigured = errors.New("comment syntax not configured")

type Option func(*Syntax)

// WithSingleLine sets the marker that starts a comment running to the end of
// the line.
func WithSingleLine(marker string) Option {
	return func(s *Syntax) {
		s.single = marker
	}
}

// WithMultiLine sets the markers that open and close a block comment.
func WithMultiLine(open, close string) Option {
	return func(s *Syntax) {
		s.open = open
		s.close = close
	}
}

// WithNewLine sets the characters that end a single-line comment. Every rune
// of newline counts on its own, so "\r\n" stops at either.
func WithNewLine(newline string) Option {
	return func(s *Syntax) {
		s.newline = newline
	}
}

// Syntax holds the comment markers of a language.
type Syntax struct {
	single  string
	open    string
	close   string
	newline string
}

// New returns a syntax with only the markers given in opts. The newline
// defaults to "\n".
func New(opts ...Option) *Syntax {
	s := &Syntax{newline: "\n"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default is the C family syntax: "//" line comments and "/* */" blocks.
func Default() *Syntax {
	return New(WithSingleLine("//"), WithMultiLine("/*", "*/"))
}

func (s *Syntax) HasSingleLine() bool { return s.single != "" }

func (s *Syntax) HasMultiLine() bool { return s.open != "" && s.close != "" }

// SingleLine returns a parser for a line comment. Its value is the text
// after the marker, up to but not including the line end.
func (s *Syntax) SingleLine() (parse.Parser[string], error) {
	if !s.HasSingleLine() {
		return nil, fmt.Errorf("single-line comment: %w", ErrNotConfigured)
	}
	return parse.Right(parse.String(s.single), parse.Text(parse.Many(parse.CharExcept(s.newline)))), nil
}

// MultiLine returns a parser for a block comment. Its value is the text
// between the markers; the closing marker is consumed.
func (s *Syntax) MultiLine() (parse.Parser[string], error) {
	if !s.HasMultiLine() {
		return nil, fmt.Errorf("multi-line comment: %w", ErrNotConfigured)
	}
	closing := parse.String(s.close)
	body := parse.Text(parse.Until(parse.AnyChar, closing))
	return parse.Contained(body, parse.String(s.open), closing), nil
}

// Any returns a parser for either kind of comment the syntax defines.
func (s *Syntax) Any() (parse.Parser[string], error) {
	single, serr := s.SingleLine()
	multi, merr := s.MultiLine()
	switch {
	case serr == nil && merr == nil:
		return parse.Or(single, multi), nil
	case serr == nil:
		return single, nil
	case merr == nil:
		return multi, nil
	}
	return nil, fmt.Errorf("comment: %w", ErrNotConfigured)
}

// Extract scans text and returns every comment in it with its span. Input
// outside comments is skipped, and so is an opening marker that is never
// closed.
func (s *Syntax) Extract(file, text string) ([]parse.TextSpan[string], error) {
	comment, err := s.Any()
	if err != nil {
		return nil, fmt.Errorf("extract comments: %w", err)
	}
	found := parse.Span(comment)
	starts := s.starts()

	var comments []parse.TextSpan[string]
	for in := parse.NewFileCursor(file, text); !in.AtEnd(); {
		if !strings.ContainsRune(starts, in.Current()) {
			in = in.Advance()
			continue
		}
		r := found(in)
		if r.Ok() {
			comments = append(comments, r.Value())
			in = r.Remainder()
			continue
		}
		// A block comment still open at the end of input means no closing
		// marker follows, so later opening markers cannot match either.
		if r.Failure().At.AtEnd() && s.HasMultiLine() {
			single, err := s.SingleLine()
			if err != nil {
				break
			}
			found = parse.Span(single)
		}
		in = in.Advance()
	}
	return comments, nil
}

// starts lists the runes a comment can begin with.
func (s *Syntax) starts() string {
	var b strings.Builder
	if s.HasSingleLine() {
		b.WriteRune([]rune(s.single)[0])
	}
	if s.HasMultiLine() {
		b.WriteRune([]rune(s.open)[0])
	}
	return b.String()
}
