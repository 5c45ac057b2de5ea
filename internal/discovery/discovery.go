// Package discovery walks the syntax tree depth-first, querying every
// applicable catalog operator at each node, honoring the docstring/logging/
// string-concatenation skip rules and an optional function scope, and
// assigns ref_ids in source order.
package discovery

import (
	"fmt"
	"sort"
	"strings"

	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
	"mutant.dev/pkg/mutant/internal/operators"
)

// contextWindow is the number of surrounding source lines captured into
// context_before/context_after for display.
const contextWindow = 3

// Discover walks tree depth-first, returning every Mutation the operator
// catalog matches for language, in source order with ref_id assigned per
// emission order. When scope is non-nil, only mutations whose byte range
// lies entirely within scope's range are emitted.
func Discover(tree *lang.Tree, language m.Language, file m.Path, scope *lang.Node) []m.Mutation {
	catalog := operators.ForLanguage(language)
	skipRanges := collectSkipRanges(tree.RootNode(), language)
	lines := strings.Split(string(tree.Source), "\n")

	var muts []m.Mutation

	tree.RootNode().Walk(func(n lang.Node) bool {
		if inAnyRange(skipRanges, n.StartByte(), n.EndByte()) {
			return false
		}

		for _, op := range catalog {
			if !op.Predicate(n, language) {
				continue
			}

			start, end, replacement, ok := op.Rewrite(n, tree.Source, language)
			if !ok || inAnyRange(skipRanges, start, end) {
				continue
			}

			if scope != nil && (start < scope.StartByte() || end > scope.EndByte()) {
				continue
			}

			muts = append(muts, buildMutation(tree.Source, lines, file, op.Tag, start, end, replacement))
		}

		return true
	})

	sort.SliceStable(muts, func(i, j int) bool { return muts[i].StartByte < muts[j].StartByte })
	muts = dropEnclosing(muts)

	for i := range muts {
		muts[i].RefID = fmt.Sprintf("m%d", i+1)
	}

	return muts
}

// dropEnclosing enforces the non-overlap invariant of the Mutation data
// model. Every rewrite range is a subrange of the node the operator
// matched, so two ranges can only overlap by nesting; dropping the
// enclosing one keeps the more targeted mutation (a return_value rewrite of
// `return x > 0` gives way to the boundary flip inside it). Of two
// mutations with an identical range, the first emitted wins.
func dropEnclosing(muts []m.Mutation) []m.Mutation {
	out := make([]m.Mutation, 0, len(muts))

	for i, a := range muts {
		drop := false

		for j, b := range muts {
			if i == j || b.StartByte < a.StartByte || b.EndByte > a.EndByte {
				continue
			}

			if b.StartByte == a.StartByte && b.EndByte == a.EndByte {
				if j < i {
					drop = true
					break
				}

				continue
			}

			drop = true

			break
		}

		if !drop {
			out = append(out, a)
		}
	}

	return out
}

func inAnyRange(ranges []byteRange, start, end uint32) bool {
	for _, r := range ranges {
		if r.contains(start, end) {
			return true
		}
	}

	return false
}

func buildMutation(source []byte, lines []string, file m.Path, operator string, start, end uint32, replacement string) m.Mutation {
	line, col, lineIdx := lineCol(source, start)

	endLineIdx := lineIdx
	if end > start {
		_, _, endLineIdx = lineCol(source, end-1)
	}

	originalLine, mutatedLine := diffLines(lines, lineIdx, endLineIdx, col, start, end, string(source[start:end]), replacement)

	return m.Mutation{
		File:          file,
		Line:          line,
		Column:        col,
		StartByte:     start,
		EndByte:       end,
		Operator:      operator,
		Original:      string(source[start:end]),
		Replacement:   replacement,
		OriginalLine:  originalLine,
		MutatedLine:   mutatedLine,
		ContextBefore: contextBefore(lines, lineIdx),
		ContextAfter:  contextAfter(lines, endLineIdx),
	}
}

// diffLines renders the mutated line before and after the splice. A range
// confined to one line is spliced into that line by column; one spanning
// lines falls back to the raw original/replacement text.
func diffLines(lines []string, lineIdx, endLineIdx, col int, start, end uint32, original, replacement string) (string, string) {
	if lineIdx != endLineIdx || lineIdx >= len(lines) {
		return original, replacement
	}

	line := lines[lineIdx]
	width := int(end - start)

	if col-1 < 0 || col-1+width > len(line) {
		return original, replacement
	}

	return line, line[:col-1] + replacement + line[col-1+width:]
}

func contextBefore(lines []string, lineIdx int) []string {
	from := lineIdx - contextWindow
	if from < 0 {
		from = 0
	}

	if from >= lineIdx || lineIdx > len(lines) {
		return nil
	}

	return append([]string(nil), lines[from:lineIdx]...)
}

func contextAfter(lines []string, lineIdx int) []string {
	from := lineIdx + 1
	to := from + contextWindow

	if to > len(lines) {
		to = len(lines)
	}

	if from >= to {
		return nil
	}

	return append([]string(nil), lines[from:to]...)
}

// lineCol converts a byte offset into 1-indexed line/column (for display)
// and a 0-indexed line index (for slicing the lines array).
func lineCol(source []byte, offset uint32) (line, col, lineIdx int) {
	line, col = 1, 1

	limit := int(offset)
	if limit > len(source) {
		limit = len(source)
	}

	for i := 0; i < limit; i++ {
		if source[i] == '\n' {
			line++
			col = 1
			lineIdx++
		} else {
			col++
		}
	}

	return line, col, lineIdx
}
