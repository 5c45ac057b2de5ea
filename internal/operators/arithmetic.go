package operators

import (
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// arithmeticRotation swaps each operator with one fixed partner: +<->-,
// *<->/, %->*. One mutant per site; emitting every alternative in the set
// would multiply mutant count without sharpening the score.
var arithmeticRotation = map[string]string{
	"+": "-",
	"-": "+",
	"*": "/",
	"/": "*",
	"%": "*",
}

var arithmeticSymbols = setOf("+", "-", "*", "/", "%")

var arithmeticOperator = Operator{
	Tag:       "arithmetic",
	Languages: allLanguages,
	Predicate: func(n lang.Node, _ m.Language) bool {
		_, ok := findOpChild(n, arithmeticSymbols)
		return ok
	},
	Rewrite: func(n lang.Node, source []byte, _ m.Language) (uint32, uint32, string, bool) {
		op, ok := findOpChild(n, arithmeticSymbols)
		if !ok {
			return 0, 0, "", false
		}

		replacement, ok := arithmeticRotation[op.Content()]
		if !ok {
			return 0, 0, "", false
		}

		return op.StartByte(), op.EndByte(), replacement, true
	},
}
