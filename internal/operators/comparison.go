package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

var boundaryFlip = map[string]string{
	"<":  "<=",
	"<=": "<",
	">":  ">=",
	">=": ">",
}

var boundarySymbols = setOf("<", "<=", ">", ">=")

var boundaryOperator = Operator{
	Tag:       "boundary",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, ok := findOpChild(n, boundarySymbols)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		op, ok := findOpChild(n, boundarySymbols)
		if !ok {
			return 0, 0, "", false
		}

		return op.StartByte(), op.EndByte(), boundaryFlip[op.Content()], true
	},
}

var negationFlip = map[string]string{
	"==": "!=",
	"!=": "==",
}

var negationSymbols = setOf("==", "!=")

var negationOperator = Operator{
	Tag:       "negation",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, ok := findOpChild(n, negationSymbols)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		op, ok := findOpChild(n, negationSymbols)
		if !ok {
			return 0, 0, "", false
		}

		return op.StartByte(), op.EndByte(), negationFlip[op.Content()], true
	},
}
