package lang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutant.dev/pkg/mutant/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want m.Language
	}{
		{"main.py", m.Python},
		{"index.js", m.JavaScript},
		{"worker.mjs", m.JavaScript},
		{"app.ts", m.TypeScript},
		{"component.tsx", m.TSX},
		{"lib.rs", m.Rust},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Detect(m.Path(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_UnsupportedSuffix(t *testing.T) {
	_, err := Detect(m.Path("README.md"))
	assert.ErrorIs(t, err, m.ErrUnsupportedLanguage)
}

func TestParser_ParsePython(t *testing.T) {
	parser, err := NewParser(m.Python)
	require.NoError(t, err)

	source := []byte("def add(a, b):\n    return a + b\n")
	tree, err := parser.Parse(context.Background(), source)
	require.NoError(t, err)

	root := tree.RootNode()
	assert.False(t, root.IsNil())
	assert.Equal(t, "module", root.Kind())
}

func TestNewParser_UnsupportedLanguage(t *testing.T) {
	_, err := NewParser(m.Language("cobol"))
	assert.ErrorIs(t, err, m.ErrUnsupportedLanguage)
}

func TestFindFunction_LocatesDefinition(t *testing.T) {
	parser, err := NewParser(m.Python)
	require.NoError(t, err)

	source := []byte("def helper():\n    pass\n\ndef target(x):\n    return x * 2\n")
	tree, err := parser.Parse(context.Background(), source)
	require.NoError(t, err)

	fn, err := FindFunction(tree, m.Python, "target")
	require.NoError(t, err)
	assert.Equal(t, "function_definition", fn.Kind())
	assert.Contains(t, fn.Content(), "return x * 2")
}

func TestFindFunction_NotFound(t *testing.T) {
	parser, err := NewParser(m.Python)
	require.NoError(t, err)

	tree, err := parser.Parse(context.Background(), []byte("def only():\n    pass\n"))
	require.NoError(t, err)

	_, err = FindFunction(tree, m.Python, "missing")
	assert.ErrorIs(t, err, m.ErrFunctionNotFound)
}
