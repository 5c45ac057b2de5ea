package lang

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "mutant.dev/pkg/mutant/internal/model"
)

func grammarFor(language m.Language) (*sitter.Language, error) {
	switch language {
	case m.Python:
		return python.GetLanguage(), nil
	case m.JavaScript:
		return javascript.GetLanguage(), nil
	case m.TypeScript:
		return typescript.GetLanguage(), nil
	case m.TSX:
		return tsx.GetLanguage(), nil
	case m.Rust:
		return rust.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", m.ErrUnsupportedLanguage, language)
	}
}

// Parser parses source bytes into a Tree for one Language. A Parser is not
// safe for concurrent use; callers needing concurrency should construct one
// Parser per goroutine (they are cheap).
type Parser struct {
	language m.Language
	grammar  *sitter.Language
}

// NewParser builds a Parser for the given language, failing with
// model.ErrUnsupportedLanguage if no grammar is registered for it.
func NewParser(language m.Language) (*Parser, error) {
	grammar, err := grammarFor(language)
	if err != nil {
		return nil, err
	}

	return &Parser{language: language, grammar: grammar}, nil
}

// Parse produces a concrete syntax tree over source. The caller owns the
// returned Tree and must call Close when done with it.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.grammar)

	raw, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s source: %w", p.language, err)
	}

	return &Tree{raw: raw, Source: source}, nil
}

// functionNodeKinds names the grammar node kinds that represent a named
// function definition, per language, used by FindFunction for the
// "-f <function>" scope lookup.
var functionNodeKinds = map[m.Language]map[string]bool{
	m.Python:     {"function_definition": true},
	m.JavaScript: {"function_declaration": true, "method_definition": true},
	m.TypeScript: {"function_declaration": true, "method_definition": true},
	m.TSX:        {"function_declaration": true, "method_definition": true},
	m.Rust:       {"function_item": true},
}

// nameNodeKinds names the child node kinds carrying a function's identifier,
// per language.
var nameNodeKinds = map[string]bool{
	"identifier":          true, // python, javascript, rust
	"property_identifier": true, // javascript/typescript method names
	"type_identifier":     true,
}

// FindFunction locates the definition node for the named function within
// tree, by depth-first search. It fails with model.ErrFunctionNotFound if no
// matching definition exists.
func FindFunction(tree *Tree, language m.Language, name string) (Node, error) {
	kinds := functionNodeKinds[language]

	var found Node

	tree.RootNode().Walk(func(n Node) bool {
		if !found.IsNil() {
			return false
		}

		if kinds[n.Kind()] && functionName(n) == name {
			found = n
			return false
		}

		return true
	})

	if found.IsNil() {
		return Node{}, fmt.Errorf("%w: %q", m.ErrFunctionNotFound, name)
	}

	return found, nil
}

// functionName returns the identifier text of a function-definition node's
// first name-shaped child, or "" if none is found.
func functionName(n Node) string {
	for _, child := range n.Children() {
		if nameNodeKinds[child.Kind()] {
			return child.Content()
		}
	}

	return ""
}
