// Package diffformat turns a mismatched expected/actual string pair into an
// ordered list of labeled facts describing the difference.
//
// Two output shapes exist:
//   - The 2-fact form [("expected", …), ("but was", …)] for single-line inputs.
//     Long common prefixes and suffixes are elided with "…" so the eye lands on
//     the differing region; the differing region itself is always shown in full.
//   - The 1-fact form [("diff", …)] for multi-line inputs: a unified-diff-style
//     hunk with up to 3 lines of context on each side and a "@@ -a,b +c,d @@"
//     header. When the two texts differ only in line-break characters (ex: "\n"
//     vs "\r\n"), the diff value is a fixed sentence pointing that out instead
//     of a hunk of visually identical lines.
//
// Character positions are measured in UTF-16 code units and elision never cuts
// inside a surrogate pair, so rendered output is always well-formed text.
//
// Format is pure and deterministic: no I/O, no shared state, and any two calls
// with the same inputs produce the same facts. It is safe to call concurrently.
// Callers are expected to invoke it only after detecting a mismatch; Format
// does not re-check equality.
package diffformat
