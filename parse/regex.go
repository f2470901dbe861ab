package parse

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regex matches pattern at the cursor and returns the matched text. The
// pattern uses .NET regular expression syntax. Matching is anchored: the
// parser never skips input looking for a match. Regex panics if pattern does
// not compile. Wrap it in Named to report something other than the pattern:
//
//	parse.Named(parse.Regex(`[a-z]+`), "word")
func Regex(pattern string) Parser[string] {
	return Select(RegexMatch(pattern), func(m *regexp2.Match) string {
		return m.String()
	})
}

// RegexMatch is like Regex but returns the match, giving access to its
// capture groups.
func RegexMatch(pattern string) Parser[*regexp2.Match] {
	p, err := CompileRegex(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileRegex is like RegexMatch but returns an error for an invalid
// pattern.
func CompileRegex(pattern string) (Parser[*regexp2.Match], error) {
	re, err := regexp2.Compile(`^(?:`+pattern+`)`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile regex %q: %w", pattern, err)
	}
	description := "string matching regex `" + pattern + "`"
	return func(in Cursor) Result[*regexp2.Match] {
		m, err := re.FindRunesMatch(in.rest())
		if err != nil {
			return Fail[*regexp2.Match](&Failure{
				At:         in,
				Expected:   []string{description},
				Unexpected: err.Error(),
			})
		}
		if m == nil {
			return Fail[*regexp2.Match](&Failure{At: in, Expected: []string{description}})
		}
		return Success(m, in.advanceN(m.Length))
	}, nil
}
