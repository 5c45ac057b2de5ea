// Package operators is the mutation-operator catalog: a declarative set of
// pure (node, source) -> (range, replacement) rules. The catalog is data, a
// []Operator literal rather than a registry keyed by reflection or a
// visitor class hierarchy, so adding an operator is a data change and a
// single node can match more than one operator.
package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// Operator is one catalog entry. Predicate decides whether n is a site for
// this operator; Rewrite computes the byte subrange of n to replace and its
// replacement text. Both are pure functions of (node, source); they never
// query outside the node they matched.
type Operator struct {
	Tag       string
	Languages []m.Language
	Predicate func(n lang.Node, language m.Language) bool
	Rewrite   func(n lang.Node, source []byte, language m.Language) (startByte, endByte uint32, replacement string, ok bool)
}

// Applies reports whether this operator is declared for language.
func (o Operator) Applies(language m.Language) bool {
	for _, l := range o.Languages {
		if l == language {
			return true
		}
	}

	return false
}

var allLanguages = []m.Language{m.Python, m.JavaScript, m.TypeScript, m.TSX, m.Rust}

// Catalog is the full operator set. Order is insignificant for discovery
// (mutations are sorted by byte offset afterward).
var Catalog = []Operator{
	arithmeticOperator,
	boundaryOperator,
	negationOperator,
	logicalOperator,
	booleanOperator,
	notRemovalOperator,
	returnValueOperator,
	stringLiteralOperator,
	blockRemovalOperator,
	membershipOperator,
	identityOperator,
}

// ForLanguage filters the catalog to the operators applicable to language.
func ForLanguage(language m.Language) []Operator {
	out := make([]Operator, 0, len(Catalog))

	for _, op := range Catalog {
		if op.Applies(language) {
			out = append(out, op)
		}
	}

	return out
}
