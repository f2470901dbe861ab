// Package grammar turns EBNF grammars, in the notation of
// golang.org/x/exp/ebnf, into parsers that produce concrete syntax trees.
package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"golang.org/x/exp/ebnf"
)

// Load reads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Read(filename, f)
}

// Read parses an EBNF grammar from r. filename is used in error positions.
func Read(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Errors splits an error from Load, Read or Compile into the individual
// grammar errors it carries.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
		// x/exp/ebnf reports a list of errors as an unexported slice type.
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			errs := make([]error, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				if item, ok := v.Index(i).Interface().(error); ok {
					errs = append(errs, item)
				}
			}
			return errs
		}
	}
	return []error{err}
}
