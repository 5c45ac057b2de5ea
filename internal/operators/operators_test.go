package operators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
)

// firstMatch parses source for language, walks it, and returns the
// (start, end, replacement) of the first node op matches.
func firstMatch(t *testing.T, language m.Language, source string, op Operator) (uint32, uint32, string, bool) {
	t.Helper()

	parser, err := lang.NewParser(language)
	require.NoError(t, err)

	tree, err := parser.Parse(context.Background(), []byte(source))
	require.NoError(t, err)

	var start, end uint32
	var replacement string
	var found bool

	tree.RootNode().Walk(func(n lang.Node) bool {
		if found {
			return false
		}

		if op.Predicate(n, language) {
			s, e, r, ok := op.Rewrite(n, tree.Source, language)
			if ok {
				start, end, replacement, found = s, e, r, true
				return false
			}
		}

		return true
	})

	return start, end, replacement, found
}

func TestArithmeticOperator_RotatesSymbol(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a + b\n", arithmeticOperator)
	require.True(t, ok)
	assert.Equal(t, "-", replacement)
}

func TestArithmeticOperator_ModuloRotatesToMultiply(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a % b\n", arithmeticOperator)
	require.True(t, ok)
	assert.Equal(t, "*", replacement)
}

func TestBoundaryOperator_FlipsInclusive(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a < b\n", boundaryOperator)
	require.True(t, ok)
	assert.Equal(t, "<=", replacement)
}

func TestNegationOperator_FlipsEquality(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a == b\n", negationOperator)
	require.True(t, ok)
	assert.Equal(t, "!=", replacement)
}

func TestLogicalOperator_FlipsPythonWords(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a and b\n", logicalOperator)
	require.True(t, ok)
	assert.Equal(t, "or", replacement)
}

func TestLogicalOperator_FlipsJSSymbols(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.JavaScript, "const x = a && b;\n", logicalOperator)
	require.True(t, ok)
	assert.Equal(t, "||", replacement)
}

func TestBooleanOperator_FlipsPythonLiteral(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = True\n", booleanOperator)
	require.True(t, ok)
	assert.Equal(t, "False", replacement)
}

func TestNotRemovalOperator_DropsNotKeepsOperand(t *testing.T) {
	start, end, replacement, ok := firstMatch(t, m.Python, "x = not flag\n", notRemovalOperator)
	require.True(t, ok)
	assert.Equal(t, "flag", replacement)
	assert.Greater(t, end, start)
}

func TestReturnValueOperator_PythonReplacesWithNone(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "def f():\n    return 1\n", returnValueOperator)
	require.True(t, ok)
	assert.Equal(t, "None", replacement)
}

func TestReturnValueOperator_SkipsAlreadyNone(t *testing.T) {
	_, _, _, ok := firstMatch(t, m.Python, "def f():\n    return None\n", returnValueOperator)
	assert.False(t, ok)
}

func TestReturnValueOperator_RustUsesDefault(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Rust, "fn f() -> i32 {\n    return 1;\n}\n", returnValueOperator)
	require.True(t, ok)
	assert.Equal(t, "Default::default()", replacement)
}

func TestStringLiteralOperator_EmptiesNonEmptyString(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = 'hello'\n", stringLiteralOperator)
	require.True(t, ok)
	assert.Equal(t, "''", replacement)
}

func TestStringLiteralOperator_SkipsAlreadyEmpty(t *testing.T) {
	_, _, _, ok := firstMatch(t, m.Python, "x = ''\n", stringLiteralOperator)
	assert.False(t, ok)
}

func TestBlockRemovalOperator_PythonReplacesWithPass(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "if flag:\n    do_work()\n", blockRemovalOperator)
	require.True(t, ok)
	assert.Contains(t, replacement, "pass")
}

func TestBlockRemovalOperator_SkipsAlreadyPass(t *testing.T) {
	_, _, _, ok := firstMatch(t, m.Python, "if flag:\n    pass\n", blockRemovalOperator)
	assert.False(t, ok)
}

func TestMembershipOperator_FlipsIn(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a in b\n", membershipOperator)
	require.True(t, ok)
	assert.Equal(t, "not in", replacement)
}

func TestIdentityOperator_FlipsIs(t *testing.T) {
	_, _, replacement, ok := firstMatch(t, m.Python, "x = a is b\n", identityOperator)
	require.True(t, ok)
	assert.Equal(t, "is not", replacement)
}

func TestForLanguage_FiltersPythonOnlyOperators(t *testing.T) {
	pyOps := ForLanguage(m.Python)
	jsOps := ForLanguage(m.JavaScript)

	assert.Contains(t, tagsOf(pyOps), "membership")
	assert.NotContains(t, tagsOf(jsOps), "membership")
}

func tagsOf(ops []Operator) []string {
	tags := make([]string, len(ops))
	for i, op := range ops {
		tags[i] = op.Tag
	}

	return tags
}
