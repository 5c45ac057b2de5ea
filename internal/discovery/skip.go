package discovery

import (
	"strings"

	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// byteRange is a half-open [start, end) span to exclude from discovery.
type byteRange struct {
	start, end uint32
}

func (r byteRange) contains(start, end uint32) bool {
	return start >= r.start && end <= r.end
}

// containerKinds name the grammar node kinds whose first statement may be a
// docstring, per language: module/program/source_file, function, and class
// bodies.
var containerKinds = map[m.Language]map[string]bool{
	m.Python:     setOf("module", "function_definition", "class_definition"),
	m.JavaScript: setOf("program", "function_declaration", "method_definition", "class_declaration"),
	m.TypeScript: setOf("program", "function_declaration", "method_definition", "class_declaration"),
	m.TSX:        setOf("program", "function_declaration", "method_definition", "class_declaration"),
	m.Rust:       setOf("source_file", "function_item", "mod_item", "impl_item"),
}

// topLevelKinds hold statements directly (no separate block wrapper node).
var topLevelKinds = setOf("module", "program", "source_file")

var blockKinds = setOf("block", "statement_block", "class_body", "declaration_list")

var stringKinds = setOf("string", "string_literal", "template_string")

// docstringRange reports the byte range of a docstring literal: the first
// string-expression statement of a module/class/function body.
func docstringRange(n lang.Node, language m.Language) (byteRange, bool) {
	kinds := containerKinds[language]
	if kinds == nil || !kinds[n.Kind()] {
		return byteRange{}, false
	}

	body := n

	if !topLevelKinds[n.Kind()] {
		found := false

		for _, child := range n.Children() {
			if blockKinds[child.Kind()] {
				body = child
				found = true

				break
			}
		}

		if !found {
			return byteRange{}, false
		}
	}

	if body.ChildCount() == 0 {
		return byteRange{}, false
	}

	first := body.Child(0)
	if first.Kind() == "{" {
		first = body.Child(1)
	}

	if first.Kind() != "expression_statement" || first.ChildCount() != 1 {
		return byteRange{}, false
	}

	literal := first.Child(0)
	if !stringKinds[literal.Kind()] {
		return byteRange{}, false
	}

	return byteRange{first.StartByte(), first.EndByte()}, true
}

var callKinds = setOf("call", "call_expression")

// loggingFacadeSuffixes are the method-call suffixes recognized as logging
// facades, beyond the bare dotted heads "log"/"logger"/"logging".
var loggingFacadeSuffixes = []string{".debug", ".info", ".warning", ".warn", ".error", ".critical"}

// loggingCallRange reports the byte range of a call whose callee is a known
// logging facade.
func loggingCallRange(n lang.Node) (byteRange, bool) {
	if !callKinds[n.Kind()] || n.ChildCount() == 0 {
		return byteRange{}, false
	}

	if !isLoggingFacade(n.Child(0).Content()) {
		return byteRange{}, false
	}

	return byteRange{n.StartByte(), n.EndByte()}, true
}

func isLoggingFacade(dottedHead string) bool {
	switch dottedHead {
	case "log", "logger", "logging":
		return true
	}

	for _, suffix := range loggingFacadeSuffixes {
		if strings.HasSuffix(dottedHead, suffix) {
			return true
		}
	}

	return false
}

var concatExprKinds = setOf("binary_operator", "binary_expression")

// stringConcatRange reports the byte range of a string-concatenation
// expression composed purely of string literals and identifiers. Mutating
// message assembly produces noisy, rarely killable mutants.
func stringConcatRange(n lang.Node) (byteRange, bool) {
	if !concatExprKinds[n.Kind()] {
		return byteRange{}, false
	}

	if !isPureStringConcat(n) || !containsStringLeaf(n) {
		return byteRange{}, false
	}

	return byteRange{n.StartByte(), n.EndByte()}, true
}

// isPureStringConcat recognizes a tree of nested "+" expressions whose
// leaves are all string literals or identifiers. An expression of
// identifiers alone does not qualify: without at least one string literal
// leaf (checked separately) `a + b` is ordinary arithmetic, not message
// assembly.
func isPureStringConcat(n lang.Node) bool {
	switch n.Kind() {
	case "string", "string_literal", "template_string", "concatenated_string":
		return true
	case "identifier":
		return true
	case "binary_operator", "binary_expression":
		hasPlus := false

		for _, child := range n.Children() {
			if child.Content() == "+" {
				hasPlus = true
				continue
			}

			if !isPureStringConcat(child) {
				return false
			}
		}

		return hasPlus
	default:
		return false
	}
}

func containsStringLeaf(n lang.Node) bool {
	switch n.Kind() {
	case "string", "string_literal", "template_string", "concatenated_string":
		return true
	}

	for _, child := range n.Children() {
		if containsStringLeaf(child) {
			return true
		}
	}

	return false
}

func setOf(values ...string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}

	return out
}

// collectSkipRanges walks root once to find every subtree that discovery's
// main walk must not descend into: docstrings, logging-facade call
// arguments, and pure string-concatenation expressions.
func collectSkipRanges(root lang.Node, language m.Language) []byteRange {
	var ranges []byteRange

	root.Walk(func(n lang.Node) bool {
		if r, ok := docstringRange(n, language); ok {
			ranges = append(ranges, r)
		}

		if r, ok := loggingCallRange(n); ok {
			ranges = append(ranges, r)
			return false
		}

		if r, ok := stringConcatRange(n); ok {
			ranges = append(ranges, r)
			return false
		}

		return true
	})

	return ranges
}
