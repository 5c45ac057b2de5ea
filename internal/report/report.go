// Package report renders a completed Run as the canonical structured JSON
// document, computes the quiet-mode exit code, and generates the two-line
// unified diff for each surviving mutant.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	m "mutant.dev/pkg/mutant/internal/model"
)

// SurvivedMutant is one entry of the "survived_mutants" array. Field order
// is part of the schema and must stay stable.
type SurvivedMutant struct {
	RefID         string   `json:"ref_id"`
	File          string   `json:"file"`
	Line          int      `json:"line"`
	Column        int      `json:"column"`
	Operator      string   `json:"operator"`
	Original      string   `json:"original"`
	Replacement   string   `json:"replacement"`
	Diff          string   `json:"diff"`
	ContextBefore []string `json:"context_before"`
	ContextAfter  []string `json:"context_after"`
}

// Document is the canonical structured-output schema.
type Document struct {
	Score           float64          `json:"score"`
	Total           int              `json:"total"`
	Killed          int              `json:"killed"`
	Survived        int              `json:"survived"`
	Timeout         int              `json:"timeout"`
	Unviable        int              `json:"unviable"`
	DurationMS      int64            `json:"duration_ms"`
	SurvivedMutants []SurvivedMutant `json:"survived_mutants"`
}

// FromRun converts a completed Run into its reportable Document.
func FromRun(run m.Run) Document {
	killed, survived, timeout, unviable := run.Counts()

	doc := Document{
		Score:           run.Score(),
		Total:           len(run.Outcomes),
		Killed:          killed,
		Survived:        survived,
		Timeout:         timeout,
		Unviable:        unviable,
		DurationMS:      run.DurationMS,
		SurvivedMutants: make([]SurvivedMutant, 0, survived),
	}

	for _, outcome := range run.Outcomes {
		if outcome.Result != m.Survived {
			continue
		}

		mut := outcome.Mutation
		doc.SurvivedMutants = append(doc.SurvivedMutants, SurvivedMutant{
			RefID:         mut.RefID,
			File:          string(mut.File),
			Line:          mut.Line,
			Column:        mut.Column,
			Operator:      mut.Operator,
			Original:      mut.Original,
			Replacement:   mut.Replacement,
			Diff:          mutantDiff(mut),
			ContextBefore: mut.ContextBefore,
			ContextAfter:  mut.ContextAfter,
		})
	}

	return doc
}

// mutantDiff prefers the full-line rendering when discovery captured it,
// falling back to the raw replaced bytes.
func mutantDiff(mut m.Mutation) string {
	if mut.OriginalLine != "" || mut.MutatedLine != "" {
		return Diff(mut.OriginalLine, mut.MutatedLine)
	}

	return Diff(mut.Original, mut.Replacement)
}

// Diff renders the fixed two-line unified form: the original line on a
// "-" line, its mutated form on a "+" line. A general-purpose diff library
// would produce noisier output for this single-site substitution.
func Diff(original, replacement string) string {
	return fmt.Sprintf("- %s\n+ %s\n", original, replacement)
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	return writeIndented(w, doc)
}

// WriteMutant writes a single survivor's record as indented JSON, for the
// `show <ref_id>` verb.
func WriteMutant(w io.Writer, mut SurvivedMutant) error {
	return writeIndented(w, mut)
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

// ExitCode computes the run's exit code: 0 when there are no survivors and
// the baseline did not fail, 2 when baselineFailed is set, 1 otherwise. A
// baseline failure normally surfaces as an error before a Document even
// exists, so baselineFailed here only covers a Document built despite one.
//
// An all-unviable run found no survivors only because every mutant was
// unviable, not because the suite is thorough (usually a broken test
// command), so Unviable == Total > 0 exits 1 the same as Survived > 0.
func ExitCode(doc Document, baselineFailed bool) int {
	if baselineFailed {
		return 2
	}

	if doc.Survived > 0 {
		return 1
	}

	if doc.Total > 0 && doc.Unviable == doc.Total {
		return 1
	}

	return 0
}
