package model

// Mutation is a proposed single-site perturbation, produced by discovery
// against one operator in the catalog. Mutations are immutable once
// discovered.
type Mutation struct {
	RefID string // assigned post-discovery in emission order: "m1", "m2", ...

	File   Path
	Line   int // 1-indexed
	Column int // 1-indexed

	StartByte uint32 // half-open [StartByte, EndByte) into the file's content
	EndByte   uint32

	Operator string // symbolic tag from the operator catalog, e.g. "arithmetic"

	Original    string // content[StartByte:EndByte], kept for invariant checks and diffing
	Replacement string

	// OriginalLine and MutatedLine are the source line before and after the
	// splice, for the two-line diff. For a range spanning multiple lines
	// they fall back to the raw Original/Replacement text.
	OriginalLine string
	MutatedLine  string

	ContextBefore []string // up to N lines preceding the mutated line, N≈3
	ContextAfter  []string
}

// Valid reports whether the Mutation's byte-range invariants hold against
// content: 0 <= StartByte < EndByte <= len(content), and the slice of
// content at that range equals Original.
func (m Mutation) Valid(content []byte) bool {
	if m.StartByte >= m.EndByte || int(m.EndByte) > len(content) {
		return false
	}

	return string(content[m.StartByte:m.EndByte]) == m.Original
}
