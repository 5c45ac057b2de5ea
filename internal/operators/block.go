package operators

import (
	"strings"

	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// conditionalKinds are the grammar node kinds whose body is a candidate site
// for block_removal, per language: Python's if/elif/else are three distinct
// node kinds, the C-family grammars fold elif into a nested if_statement
// inside an else_clause.
var conditionalKinds = setOf(
	"if_statement", "elif_clause", "else_clause", // python, javascript, typescript, tsx
	"if_expression", // rust
)

// blockBodyKinds are the grammar node kinds for a conditional's body block.
var blockBodyKinds = setOf("block", "statement_block")

var blockRemovalOperator = Operator{
	Tag:       "block_removal",
	Languages: allLanguages,
	Predicate: func(n lang.Node, language m.Language) bool {
		_, ok := findConditionalBody(n)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, language m.Language) (uint32, uint32, string, bool) {
		body, ok := findConditionalBody(n)
		if !ok {
			return 0, 0, "", false
		}

		if language == m.Python {
			return pythonBlockRewrite(body)
		}

		return body.StartByte(), body.EndByte(), "{}", true
	},
}

// findConditionalBody returns n's direct body-block child, skipping a
// no-op body that is already a single pass/empty statement.
func findConditionalBody(n lang.Node) (lang.Node, bool) {
	if !conditionalKinds[n.Kind()] {
		return lang.Node{}, false
	}

	for _, child := range n.Children() {
		if !blockBodyKinds[child.Kind()] {
			continue
		}

		if strings.TrimSpace(child.Content()) == "pass" || strings.TrimSpace(child.Content()) == "{}" {
			return lang.Node{}, false
		}

		return child, true
	}

	return lang.Node{}, false
}

// pythonBlockRewrite replaces a Python block with "pass" on a fresh line at
// the block's own indent, so the result stays valid under the
// whitespace-sensitive grammar whatever the block's original line count.
func pythonBlockRewrite(body lang.Node) (uint32, uint32, string, bool) {
	indent := strings.Repeat(" ", body.StartColumn()-1)
	return body.StartByte(), body.EndByte(), "\n" + indent + "pass", true
}
