package textdiff

import (
	"strings"
)

// RenderPretty returns a human-oriented, colorized rendering of d without
// unified-diff hunk headers. Each line is prefixed like a unified diff: " "
// for context, "-" for expected-only lines, and "+" for actual-only lines;
// replacements are shown as a "-" line followed by a "+" line. Within changed
// lines, intra-line differences are highlighted.
//
// contextSize controls how many unchanged lines are shown before and after
// each group of changes. Two change groups separated by at most 2*contextSize
// unchanged lines are merged into a single group with the intervening lines
// shown as context.
//
// Lines are rendered without their trailing newline, and the returned string
// uses "\n" as the line separator. If there are no changes, the result is the
// empty string.
//
// The output contains ANSI 256-color escape sequences for line and span
// highlighting and is intended for terminals; it is not a machine-readable or
// standards-compliant diff. For the stable hunk form, use the diffformat
// package.
func (d Diff) RenderPretty(contextSize int) string {
	// Colors (ANSI) for pretty output.
	const (
		reset     = "\x1b[0m"
		blackFG   = "\x1b[30m"
		pinkLine  = "\x1b[48;5;224m" // light pink for expected-only lines
		pinkSpan  = "\x1b[48;5;217m" // slightly darker pink for expected-only spans
		greenLine = "\x1b[48;5;194m" // light green for actual-only lines
		greenSpan = "\x1b[48;5;114m" // slightly darker green for actual-only spans
	)

	var out []string

	trim := func(s string) string {
		core, _ := trimEOL(s, defaultEOL)
		return core
	}

	// Render one Line with inline span highlighting for either '-' (expected) or '+' (actual).
	renderLine := func(ln Line, tag byte, baseBg string) string {
		if ln.Op == OpEqual {
			return trim(ln.Expected)
		}
		var b strings.Builder
		for _, sp := range ln.Spans {
			switch tag {
			case '-':
				switch sp.Op {
				case OpEqual:
					b.WriteString(sp.Expected)
				case OpDelete, OpReplace:
					// Emphasize expected-only segments: darker pink background; reapply base after.
					b.WriteString(reset)
					b.WriteString(blackFG)
					b.WriteString(pinkSpan)
					b.WriteString(sp.Expected)
					b.WriteString(reset)
					b.WriteString(blackFG)
					b.WriteString(baseBg)
				case OpInsert:
					// Expected side has nothing for inserts.
				}
			case '+':
				switch sp.Op {
				case OpEqual:
					b.WriteString(sp.Actual)
				case OpInsert, OpReplace:
					// Emphasize actual-only segments: darker green background; reapply base after.
					b.WriteString(reset)
					b.WriteString(blackFG)
					b.WriteString(greenSpan)
					b.WriteString(sp.Actual)
					b.WriteString(reset)
					b.WriteString(blackFG)
					b.WriteString(baseBg)
				case OpDelete:
					// Actual side has nothing for deletes.
				}
			}
		}
		return b.String()
	}

	// Walk hunks, grouping nearby changes with context, but no @@ headers.
	i := 0
	for i < len(d.Hunks) {
		h := d.Hunks[i]
		if h.Op == OpEqual {
			i++
			continue
		}

		var lines []string

		// Pre-context from previous equal hunk tail.
		if i-1 >= 0 && d.Hunks[i-1].Op == OpEqual && contextSize > 0 {
			prevEqLines := splitPreserveEOL(d.Hunks[i-1].Expected, defaultEOL)
			k := contextSize
			if k > len(prevEqLines) {
				k = len(prevEqLines)
			}
			for _, ln := range prevEqLines[len(prevEqLines)-k:] {
				lines = append(lines, blackFG+" "+trim(ln)+reset)
			}
		}

		appendChange := func(hk Hunk) {
			for _, ln := range hk.Lines {
				switch ln.Op {
				case OpEqual:
					lines = append(lines, blackFG+" "+trim(ln.Expected)+reset)
				case OpDelete:
					content := renderLine(ln, '-', pinkLine)
					lines = append(lines, blackFG+pinkLine+"-"+content+reset)
				case OpInsert:
					content := renderLine(ln, '+', greenLine)
					lines = append(lines, blackFG+greenLine+"+"+content+reset)
				case OpReplace:
					contentDel := renderLine(ln, '-', pinkLine)
					lines = append(lines, blackFG+pinkLine+"-"+contentDel+reset)
					contentIns := renderLine(ln, '+', greenLine)
					lines = append(lines, blackFG+greenLine+"+"+contentIns+reset)
				}
			}
		}
		appendChange(h)

		// Possibly include bridging equals and subsequent changes if gap small enough.
		j := i + 1
		for j < len(d.Hunks) {
			if d.Hunks[j].Op != OpEqual {
				appendChange(d.Hunks[j])
				j++
				continue
			}
			eqLines := splitPreserveEOL(d.Hunks[j].Expected, defaultEOL)
			if j+1 < len(d.Hunks) && d.Hunks[j+1].Op != OpEqual && len(eqLines) <= 2*contextSize {
				for _, ln := range eqLines {
					lines = append(lines, " "+trim(ln))
				}
				j++
				appendChange(d.Hunks[j])
				j++
				continue
			}
			// Otherwise, include head context and stop this group.
			k := contextSize
			if k > len(eqLines) {
				k = len(eqLines)
			}
			for _, ln := range eqLines[:k] {
				lines = append(lines, " "+trim(ln))
			}
			break
		}

		// Advance to next unconsumed hunk index.
		i = j

		// Emit this group's lines.
		out = append(out, lines...)
	}

	return strings.Join(out, defaultEOL)
}
