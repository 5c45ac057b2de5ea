package operators

import (
	"strings"

	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// stringLiteralKinds are the grammar node kinds for a string literal, per
// language. Discovery's skip rules (docstrings, logging-call arguments,
// pure string concatenation) filter out the sites this operator should
// never fire on before the catalog ever sees them.
var stringLiteralKinds = setOf("string", "string_literal", "template_string")

var stringLiteralOperator = Operator{
	Tag:       "string_literal",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		return stringLiteralKinds[n.Kind()] && !isEmptyStringLiteral(n.Content())
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		replacement, ok := emptyStringLiteral(n.Content())
		if !ok {
			return 0, 0, "", false
		}

		return n.StartByte(), n.EndByte(), replacement, true
	},
}

// quoteChars are the characters this operator recognizes as string
// delimiters, across Python/JS/TS/Rust.
const quoteChars = "\"'`"

// emptyStringLiteral rewrites content to an empty literal using the same
// quote character (and any literal prefix, e.g. Python's f/r/b), by pairing
// the first quote character found with the last occurrence of that same
// character.
func emptyStringLiteral(content string) (string, bool) {
	openIdx := strings.IndexAny(content, quoteChars)
	if openIdx < 0 {
		return "", false
	}

	quote := content[openIdx]
	closeIdx := strings.LastIndexByte(content, quote)
	if closeIdx <= openIdx {
		return "", false
	}

	return content[:openIdx+1] + string(quote), true
}

// isEmptyStringLiteral reports whether content is already an empty literal
// (no characters between its opening and closing quote).
func isEmptyStringLiteral(content string) bool {
	openIdx := strings.IndexAny(content, quoteChars)
	if openIdx < 0 {
		return true
	}

	quote := content[openIdx]
	closeIdx := strings.LastIndexByte(content, quote)

	return closeIdx <= openIdx+1
}
