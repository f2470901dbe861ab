package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/combo/grammar"
	"github.com/dhamidi/combo/parse"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is the latest parse of an open text document. Exactly one of
// Tree and Err is set.
type Document struct {
	URI  string
	Path string
	Text string
	Tree *grammar.Node
	Err  *parse.Error
}

// Documents parses and keeps the documents a client has open.
type Documents struct {
	mu     sync.RWMutex
	parser parse.Parser[*grammar.Node]
	docs   map[string]*Document
}

func NewDocuments(p parse.Parser[*grammar.Node]) *Documents {
	return &Documents{
		parser: p,
		docs:   make(map[string]*Document),
	}
}

// Update parses text as the new content of uri.
func (d *Documents) Update(uri, text string) *Document {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	doc := &Document{URI: uri, Path: path, Text: text}

	tree, err := parse.Run(parse.End(d.parser), parse.NewFileCursor(path, text))
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			doc.Err = perr
		}
	} else {
		doc.Tree = tree
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = doc
	return doc
}

func (d *Documents) Get(uri string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.docs[uri]
}

func (d *Documents) Remove(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

// Diagnostics reports the parse failure of doc, if any. The result is never
// nil so that publishing it clears earlier diagnostics.
func (doc *Document) Diagnostics(source string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.Err == nil {
		return diagnostics
	}

	start := toProtocolPosition(doc.Err.Position())
	end := start
	if !doc.Err.Failure.At.AtEnd() && doc.Err.Failure.At.Current() != '\n' {
		end.Character++
	}
	severity := protocol.DiagnosticSeverityError
	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  doc.Err.Failure.String(),
	})
}

// NodesAt returns the chain of nodes covering the zero-based line and
// character, from the root down to the innermost node.
func (doc *Document) NodesAt(line, character int) []*grammar.Node {
	if doc.Tree == nil {
		return nil
	}
	line, column := line+1, character+1

	var chain []*grammar.Node
	doc.Tree.Walk(func(n *grammar.Node) bool {
		if !covers(n.Span, line, column) {
			return false
		}
		chain = append(chain, n)
		return true
	})
	return chain
}

func covers(span grammar.Span, line, column int) bool {
	after := span.Start.Line < line || (span.Start.Line == line && span.Start.Column <= column)
	before := line < span.End.Line || (line == span.End.Line && column < span.End.Column)
	return after && before
}

func toProtocolPosition(p parse.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(p.Column - 1),
	}
}

func describe(chain []*grammar.Node) string {
	kinds := make([]string, len(chain))
	for i, n := range chain {
		kinds[i] = n.Kind
	}
	return strings.Join(kinds, " > ")
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}
