package textdiff

// Op is an operation from expected text to actual text.
type Op int

// Operations from expected text to actual text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpReplace
)

// Diff is a structured diff from expected text to actual text.
//
// As an illustration: imagine the actual output of a templating step differs
// from the golden file in two separate places. This will produce:
//   - Hunks[0] will be OpEqual (the shared head of both texts).
//   - Hunks[1] will contain the first difference: a group of contiguous lines
//     that differ. OpReplace.
//   - Hunks[2] will be OpEqual (the lines between the differences).
//   - Hunks[3] will contain the second difference. If the actual output merely
//     gained lines there, OpInsert.
//   - Hunks[last] will be OpEqual (the shared tail).
//
// It is a policy question of how granular Hunks are (in theory, the above
// could be a single OpReplace hunk). See Compute for policies.
//
// Invariants:
//   - concat(Hunks.Expected) == Expected
//   - concat(Hunks.Actual) == Actual
type Diff struct {
	Expected string // Entire expected text.
	Actual   string // Entire actual text.
	Hunks    []Hunk // Ordered hunks that cover the whole diff and reconstruct both sides.
}

// Hunk represents a contiguous group of lines. The \n character is part of the
// hunk and line (ex: if a hunk in the middle of some text is removed, Expected
// for that hunk would be \n terminated).
//
// Operations:
//   - OpEqual: Expected == Actual
//   - OpInsert: Expected=="" && Actual!=""
//   - OpDelete: Expected!="" && Actual==""
//   - OpReplace: Expected != "" and Actual != ""
//
// Invariants:
//   - If OpEqual, Lines is nil. Otherwise,
//   - concat(Lines.Expected) == Expected
//   - concat(Lines.Actual) == Actual
type Hunk struct {
	Op       Op     // Operation for this hunk (OpEqual, OpInsert, OpDelete, or OpReplace).
	Expected string // Concatenation of expected lines in this hunk; empty for inserts.
	Actual   string // Concatenation of actual lines in this hunk; empty for deletes.
	Lines    []Line // Per-line diffs when Op != OpEqual; nil when OpEqual.
}

// Line is a diff on a single line. Each line usually ends with (and includes)
// \n, unless the input text to Compute had no \n.
//
// Operations follow the pattern of Hunk.
//
// Invariants:
//   - If OpEqual, Spans is nil. Otherwise,
//   - concat(Spans.Expected) + \n? == Expected (\n? is an optional newline, since spans cannot contain \n, but lines usually do)
//   - concat(Spans.Actual) + \n? == Actual
type Line struct {
	Op       Op     // Operation for this line (OpEqual, OpInsert, OpDelete, or OpReplace).
	Expected string // Entire expected line (including trailing newline if present); empty for inserts.
	Actual   string // Entire actual line (including trailing newline if present); empty for deletes.
	Spans    []Span // Intra-line segments when Op != OpEqual; nil when OpEqual. Spans never contain newlines.
}

// Span is a diff within a line. It MUST NOT contain any \n.
//
// Operations follow the pattern of Hunk.
//
// Span is designed to be flexible in terms of policies for what constitutes a
// good span: it supports anything from single-character diffs to per-word or
// per-word-group diffs. These policies are determined by Compute.
type Span struct {
	Op       Op     // Operation performed by this span (OpEqual, OpInsert, OpDelete, or OpReplace).
	Expected string // Substring from the expected line; empty for inserts.
	Actual   string // Substring from the actual line; empty for deletes.
}

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable
// EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find
// callsites.
const defaultEOL = "\n"
