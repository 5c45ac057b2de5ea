package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// logicalFlip is keyed per-language since spelling differs: Python spells
// short-circuit operators as words, the C-family grammars as symbols.
var logicalFlip = map[m.Language]map[string]string{
	m.Python:     {"and": "or", "or": "and"},
	m.JavaScript: {"&&": "||", "||": "&&"},
	m.TypeScript: {"&&": "||", "||": "&&"},
	m.TSX:        {"&&": "||", "||": "&&"},
	m.Rust:       {"&&": "||", "||": "&&"},
}

var logicalOperator = Operator{
	Tag:       "logical",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		return findLogicalOp(n, flipTables(logicalFlip)) != ""
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		if !binaryExprKinds[n.Kind()] {
			return 0, 0, "", false
		}

		for _, child := range n.Children() {
			for _, table := range logicalFlip {
				if replacement, ok := table[child.Content()]; ok {
					return child.StartByte(), child.EndByte(), replacement, true
				}
			}
		}

		return 0, 0, "", false
	},
}

// flipTables merges the per-language flip tables into one symbol set for
// predicate checks: a site qualifies if any language's spelling matches;
// the per-language table is only needed to pick the correct replacement.
func flipTables(tables map[m.Language]map[string]string) map[string]bool {
	out := map[string]bool{}
	for _, table := range tables {
		for k := range table {
			out[k] = true
		}
	}

	return out
}

func findLogicalOp(n lang.Node, symbols map[string]bool) string {
	if !binaryExprKinds[n.Kind()] {
		return ""
	}

	for _, child := range n.Children() {
		if symbols[child.Content()] {
			return child.Content()
		}
	}

	return ""
}

// booleanLiteralFlip recognizes the true/false token text across languages;
// the replacement keeps the matched spelling's case.
var booleanLiteralFlip = map[string]string{
	"true":  "false",
	"false": "true",
	"True":  "False",
	"False": "True",
}

var booleanOperator = Operator{
	Tag:       "boolean",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		return n.ChildCount() == 0 && booleanLiteralFlip[n.Content()] != ""
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		replacement, ok := booleanLiteralFlip[n.Content()]
		if !ok {
			return 0, 0, "", false
		}

		return n.StartByte(), n.EndByte(), replacement, true
	},
}

// notOperatorKinds are the unary-not node kinds per grammar: python names it
// "not_operator", the C-family grammars fold it into "unary_expression"
// (disambiguated below by the operator token itself).
var notOperatorKinds = setOf("not_operator", "unary_expression")

var notRemovalOperator = Operator{
	Tag:       "not_removal",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, ok := findNotOperand(n)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		operand, ok := findNotOperand(n)
		if !ok {
			return 0, 0, "", false
		}

		return n.StartByte(), n.EndByte(), operand.Content(), true
	},
}

// findNotOperand recognizes a unary logical-not node and returns its inner
// operand: a node with exactly two children, one of which is the literal
// "not" (python) or "!" (C-family) token.
func findNotOperand(n lang.Node) (lang.Node, bool) {
	if !notOperatorKinds[n.Kind()] || n.ChildCount() != 2 {
		return lang.Node{}, false
	}

	first, second := n.Child(0), n.Child(1)

	switch first.Content() {
	case "not", "!":
		return second, true
	}

	switch second.Content() {
	case "not", "!":
		return first, true
	}

	return lang.Node{}, false
}
