package operators

import "mutant.dev/pkg/mutant/internal/lang"

// binaryExprKinds are the grammar node kinds that wrap a binary operator
// token as one of their children, across the supported grammars. Python
// separates arithmetic ("binary_operator"), boolean ("boolean_operator")
// and chained comparisons ("comparison_operator") into distinct node kinds;
// the C-family grammars (JS/TS/TSX/Rust) fold all three into
// "binary_expression" and disambiguate by the operator token itself.
var binaryExprKinds = map[string]bool{
	"binary_operator":     true, // python arithmetic
	"comparison_operator": true, // python comparisons
	"boolean_operator":    true, // python and/or
	"binary_expression":   true, // javascript/typescript/tsx/rust
}

// findOpChild returns the first direct child of n whose content exactly
// matches one of symbols. ok is false if n
// is not itself a binary/comparison-shaped node or no child matches.
func findOpChild(n lang.Node, symbols map[string]bool) (op lang.Node, ok bool) {
	if !binaryExprKinds[n.Kind()] {
		return lang.Node{}, false
	}

	for _, child := range n.Children() {
		if symbols[child.Content()] {
			return child, true
		}
	}

	return lang.Node{}, false
}

func setOf(symbols ...string) map[string]bool {
	out := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		out[s] = true
	}

	return out
}
