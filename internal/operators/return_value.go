package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// returnStatementKinds are the grammar node kinds for a return statement
// carrying an expression, per language.
var returnStatementKinds = setOf("return_statement", "return_expression")

// nullLiteralByLanguage is the language's null/empty-return spelling. Rust
// has no single universal null value; Default::default() is the one fixed
// alternative emitted, one mutant per return site.
var nullLiteralByLanguage = map[m.Language]string{
	m.Python:     "None",
	m.JavaScript: "null",
	m.TypeScript: "null",
	m.TSX:        "null",
	m.Rust:       "Default::default()",
}

var returnValueOperator = Operator{
	Tag:       "return_value",
	Languages: allLanguages,
	Predicate: func(n lang.Node, language m.Language) bool {
		expr, ok := findReturnExpr(n)
		if !ok {
			return false
		}

		return expr.Content() != nullLiteralByLanguage[language]
	},
	Rewrite: func(n lang.Node, source []byte, language m.Language) (uint32, uint32, string, bool) {
		expr, ok := findReturnExpr(n)
		if !ok {
			return 0, 0, "", false
		}

		return expr.StartByte(), expr.EndByte(), nullLiteralByLanguage[language], true
	},
}

// findReturnExpr returns a return statement's expression child: the first
// child that is neither the "return" keyword nor a trailing statement
// terminator. ok is false for a bare "return"/"return;" with no expression.
func findReturnExpr(n lang.Node) (lang.Node, bool) {
	if !returnStatementKinds[n.Kind()] {
		return lang.Node{}, false
	}

	for _, child := range n.Children() {
		switch child.Content() {
		case "return", ";":
			continue
		}

		return child, true
	}

	return lang.Node{}, false
}
