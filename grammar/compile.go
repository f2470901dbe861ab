package grammar

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/combo/comment"
	"github.com/dhamidi/combo/parse"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("combo.grammar")

type Option func(*compiler)

// WithExclusive makes alternatives, options and repetitions commit to a
// branch once it has matched its first token.
func WithExclusive() Option {
	return func(c *compiler) {
		c.exclusive = true
	}
}

// WithSkip replaces what is skipped after every token of a syntactic
// production. The default skips whitespace.
func WithSkip(skip parse.Parser[string]) Option {
	return func(c *compiler) {
		c.skip = skip
	}
}

// WithComments skips comments of the given syntax along with whitespace.
func WithComments(syntax *comment.Syntax) Option {
	return func(c *compiler) {
		c.comments = syntax
	}
}

type compiler struct {
	exclusive bool
	skip      parse.Parser[string]
	comments  *comment.Syntax
	syntactic map[string]parse.Parser[*Node]
	lexical   map[string]parse.Parser[[]rune]
	errs      []error
}

// Compile verifies g and builds a parser for its start production.
//
// Productions whose name begins with a lowercase letter are lexical: they
// match characters with nothing skipped in between and produce a single
// leaf node. All other productions are syntactic: they produce a node with
// one child per token or production they matched, and skip whitespace after
// every token. Alternatives are tried in order and the first match wins.
// Left-recursive productions do not terminate.
func Compile(g ebnf.Grammar, start string, opts ...Option) (parse.Parser[*Node], error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		skip:      parse.Text(parse.Many(parse.WhiteSpace)),
		syntactic: make(map[string]parse.Parser[*Node]),
		lexical:   make(map[string]parse.Parser[[]rune]),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.comments != nil {
		skip, err := skipComments(c.comments)
		if err != nil {
			return nil, fmt.Errorf("compile grammar: %w", err)
		}
		c.skip = skip
	}

	for _, name := range slices.Sorted(maps.Keys(g)) {
		prod := g[name]
		if isLexical(name) {
			c.lexical[name] = c.lex(prod.Expr)
		} else {
			c.syntactic[name] = c.production(name, prod.Expr)
		}
	}
	if err := errors.Join(c.errs...); err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}

	log.Debugf("compiled %d syntactic and %d lexical productions, starting at %s",
		len(c.syntactic), len(c.lexical), start)
	return parse.Right(c.skip, c.ref(start)), nil
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

func skipComments(syntax *comment.Syntax) (parse.Parser[string], error) {
	comments, err := syntax.Any()
	if err != nil {
		return nil, err
	}
	blank := parse.Or(parse.Text(parse.AtLeastOnce(parse.WhiteSpace)), comments)
	return parse.Select(parse.Many(blank), func(parts []string) string {
		return strings.Join(parts, "")
	}), nil
}

// ref refers to a production from syntactic context.
func (c *compiler) ref(name string) parse.Parser[*Node] {
	if isLexical(name) {
		return c.token(name, parse.Named(c.lexRef(name), name))
	}
	return parse.Ref(func() parse.Parser[*Node] { return c.syntactic[name] })
}

func (c *compiler) lexRef(name string) parse.Parser[[]rune] {
	return parse.Ref(func() parse.Parser[[]rune] { return c.lexical[name] })
}

// token matches p and the skip after it and produces a leaf covering p.
func (c *compiler) token(kind string, p parse.Parser[[]rune]) parse.Parser[*Node] {
	leaf := parse.Select(parse.Span(p), func(s parse.TextSpan[[]rune]) *Node {
		return newLeaf(kind, string(s.Value), Span{Start: s.Start, End: s.End})
	})
	return parse.Left(leaf, c.skip)
}

func (c *compiler) production(name string, expr ebnf.Expression) parse.Parser[*Node] {
	return parse.Select(parse.Span(c.syntax(expr)), func(s parse.TextSpan[[]*Node]) *Node {
		n := newBranch(name)
		for _, child := range s.Value {
			n.AddChild(child)
		}
		if len(n.Children) == 0 {
			n.Span = Span{Start: s.Start, End: s.Start}
		}
		return n
	})
}

func (c *compiler) syntax(expr ebnf.Expression) parse.Parser[[]*Node] {
	switch e := expr.(type) {
	case nil:
		return parse.Return([]*Node{})
	case *ebnf.Token:
		return parse.Once(c.token("", parse.String(e.String)))
	case *ebnf.Range:
		return parse.Once(c.token("", charRange(e)))
	case *ebnf.Name:
		return parse.Once(c.ref(e.String))
	case ebnf.Sequence:
		p := c.syntax(e[0])
		for _, item := range e[1:] {
			p = parse.Concat(p, c.syntax(item))
		}
		return p
	case ebnf.Alternative:
		alts := make([]parse.Parser[[]*Node], len(e))
		for i, alt := range e {
			alts[i] = c.syntax(alt)
		}
		return choose(c.exclusive, alts)
	case *ebnf.Group:
		return c.syntax(e.Body)
	case *ebnf.Option:
		return optional(c.exclusive, c.syntax(e.Body))
	case *ebnf.Repetition:
		return repeat(c.exclusive, c.syntax(e.Body))
	}
	c.unsupported(expr)
	return parse.Return([]*Node{})
}

func (c *compiler) lex(expr ebnf.Expression) parse.Parser[[]rune] {
	switch e := expr.(type) {
	case nil:
		return parse.Return([]rune{})
	case *ebnf.Token:
		return parse.String(e.String)
	case *ebnf.Range:
		return charRange(e)
	case *ebnf.Name:
		return c.lexRef(e.String)
	case ebnf.Sequence:
		p := c.lex(e[0])
		for _, item := range e[1:] {
			p = parse.Concat(p, c.lex(item))
		}
		return p
	case ebnf.Alternative:
		alts := make([]parse.Parser[[]rune], len(e))
		for i, alt := range e {
			alts[i] = c.lex(alt)
		}
		return choose(c.exclusive, alts)
	case *ebnf.Group:
		return c.lex(e.Body)
	case *ebnf.Option:
		return optional(c.exclusive, c.lex(e.Body))
	case *ebnf.Repetition:
		return repeat(c.exclusive, c.lex(e.Body))
	}
	c.unsupported(expr)
	return parse.Return([]rune{})
}

func (c *compiler) unsupported(expr ebnf.Expression) {
	if bad, ok := expr.(*ebnf.Bad); ok {
		c.errs = append(c.errs, fmt.Errorf("%s: %s", bad.Pos(), bad.Error))
		return
	}
	c.errs = append(c.errs, fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr))
}

func charRange(r *ebnf.Range) parse.Parser[[]rune] {
	lo, _ := utf8.DecodeRuneInString(r.Begin.String)
	hi, _ := utf8.DecodeRuneInString(r.End.String)
	in := func(ch rune) bool { return ch >= lo && ch <= hi }
	return parse.Once(parse.CharFunc(in, fmt.Sprintf("%q…%q", r.Begin.String, r.End.String)))
}

func choose[T any](exclusive bool, alts []parse.Parser[T]) parse.Parser[T] {
	switch {
	case len(alts) == 1:
		return alts[0]
	case exclusive:
		return parse.XOr(alts[0], alts[1], alts[2:]...)
	}
	return parse.Or(alts[0], alts[1], alts[2:]...)
}

func optional[T any](exclusive bool, p parse.Parser[[]T]) parse.Parser[[]T] {
	o := parse.Optional(p)
	if exclusive {
		o = parse.XOptional(p)
	}
	return parse.Select(o, func(v parse.Option[[]T]) []T { return v.GetOrElse(nil) })
}

func repeat[T any](exclusive bool, p parse.Parser[[]T]) parse.Parser[[]T] {
	m := parse.Many(p)
	if exclusive {
		m = parse.XMany(p)
	}
	return parse.Select(m, func(items [][]T) []T {
		var flat []T
		for _, item := range items {
			flat = append(flat, item...)
		}
		return flat
	})
}
