// Package lang maps a file path to a model.Language and parses source
// bytes into a concrete syntax tree via tree-sitter, exposed through a small Node facade
// so the rest of the engine never imports sitter.Node directly.
package lang

import (
	"fmt"
	"path/filepath"
	"strings"

	m "mutant.dev/pkg/mutant/internal/model"
)

var suffixTable = map[string]m.Language{
	".py":  m.Python,
	".js":  m.JavaScript,
	".mjs": m.JavaScript,
	".cjs": m.JavaScript,
	".ts":  m.TypeScript,
	".mts": m.TypeScript,
	".cts": m.TypeScript,
	".tsx": m.TSX,
	".rs":  m.Rust,
}

// Detect maps a file path's suffix to a Language. An unrecognized suffix
// fails with model.ErrUnsupportedLanguage.
func Detect(path m.Path) (m.Language, error) {
	suffix := strings.ToLower(filepath.Ext(string(path)))

	lang, ok := suffixTable[suffix]
	if !ok {
		return "", fmt.Errorf("%w: %q", m.ErrUnsupportedLanguage, path)
	}

	return lang, nil
}
