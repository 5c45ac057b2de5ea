package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// membershipFlip and identityFlip cover the Python-only membership and
// identity operators: `in`/`not in` and `is`/`is not` are spelled as two
// adjacent tokens in tree-sitter-python's comparison_operator grammar
// rather than one compound token, so both operators scan adjacent children
// instead of matching a single child's content (contrast with findOpChild
// in common.go, used by the single-token operators).
var membershipFlip = map[string]string{"in": "not in", "not in": "in"}
var identityFlip = map[string]string{"is": "is not", "is not": "is"}

var membershipOperator = Operator{
	Tag:       "membership",
	Languages: []m.Language{m.Python},
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, _, _, ok := findMembershipSite(n)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		start, end, text, ok := findMembershipSite(n)
		if !ok {
			return 0, 0, "", false
		}

		return start, end, membershipFlip[text], true
	},
}

var identityOperator = Operator{
	Tag:       "identity",
	Languages: []m.Language{m.Python},
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, _, _, ok := findIdentitySite(n)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		start, end, text, ok := findIdentitySite(n)
		if !ok {
			return 0, 0, "", false
		}

		return start, end, identityFlip[text], true
	},
}

// findMembershipSite locates an `in` or `not in` operator among n's direct
// children, returning the span of the full operator (both tokens for the
// "not in" form) and the canonical operator text.
func findMembershipSite(n lang.Node) (start, end uint32, text string, ok bool) {
	if n.Kind() != "comparison_operator" {
		return 0, 0, "", false
	}

	children := n.Children()
	for i, child := range children {
		switch child.Content() {
		case "not":
			if i+1 < len(children) && children[i+1].Content() == "in" {
				return child.StartByte(), children[i+1].EndByte(), "not in", true
			}
		case "in":
			if i > 0 && children[i-1].Content() == "not" {
				continue
			}

			return child.StartByte(), child.EndByte(), "in", true
		}
	}

	return 0, 0, "", false
}

// findIdentitySite locates an `is` or `is not` operator among n's direct
// children, mirroring findMembershipSite's adjacent-token scan.
func findIdentitySite(n lang.Node) (start, end uint32, text string, ok bool) {
	if n.Kind() != "comparison_operator" {
		return 0, 0, "", false
	}

	children := n.Children()
	for i, child := range children {
		if child.Content() != "is" {
			continue
		}

		if i+1 < len(children) && children[i+1].Content() == "not" {
			return child.StartByte(), children[i+1].EndByte(), "is not", true
		}

		return child.StartByte(), child.EndByte(), "is", true
	}

	return 0, 0, "", false
}
