// Package textdiff computes and renders rich text diffs between an "expected"
// and an "actual" string.
//
// Representation: A Diff holds the complete Expected/Actual texts and an
// ordered slice of hunks that, when concatenated, reconstruct both sides. Each
// hunk has an Op:
//   - OpEqual: unchanged region (Expected == Actual)
//   - OpInsert: text present only in the actual side (Expected == "")
//   - OpDelete: text present only in the expected side (Actual == "")
//   - OpReplace: text changed on both sides
//
// For non-equal hunks, Lines holds per-line changes; for non-equal lines,
// Spans holds intra-line segments. Lines generally include the trailing '\n'
// if it was present in the input; Spans never contain '\n'.
//
// Invariants:
//   - concat(hunks.Expected) == Diff.Expected
//   - concat(hunks.Actual) == Diff.Actual
//   - If hunk.Op == OpEqual, hunk.Lines is nil; otherwise, concatenating the line texts equals the hunk text.
//   - If line.Op == OpEqual, line.Spans is nil; otherwise, concatenating the span texts equals the line text (allowing for an optional trailing '\n').
//
// Granularity: The exact grouping of changes into hunks/lines/spans is a
// policy choice of Compute and may evolve. Consumers should rely on the
// invariants above rather than any particular chunking strategy.
//
// Getting a diff:
//
//	d := textdiff.Compute(expected, actual)
//	fmt.Println(d.RenderPretty(3))
//
// Rendering: Diff.RenderPretty emits a colorized view with "+"/"-"/" " line
// markers and highlighted intra-line differences, for terminals. The stable,
// uncolored fact form of a difference is produced by the diffformat package;
// this package is its visual counterpart for interactive use.
//
// Newlines: This package treats '\n' as the line separator. The last line may
// not end with '\n'; that fact is preserved in Lines. Spans never include '\n'.
package textdiff
