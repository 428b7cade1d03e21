package textdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compute diffs expected to actual, returning a Diff.
func Compute(expected, actual string) Diff {
	dmp := diffmatchpatch.New()

	// Diff based on lines:
	rExp, rAct, lineArray := dmp.DiffLinesToRunes(expected, actual)
	lineDiffs := dmp.DiffMainRunes(rExp, rAct, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode rune-string back to slice of original lines using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var hunks []Hunk
	var dels []string
	var ins []string

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		expBlock := strings.Join(dels, "")
		actBlock := strings.Join(ins, "")
		hunks = append(hunks, Hunk{
			Op:       opFor(len(expBlock), len(actBlock)),
			Expected: expBlock,
			Actual:   actBlock,
			Lines:    buildLines(dels, ins),
		})
		dels = nil
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			eqLines := decode(d.Text)
			if len(eqLines) == 0 {
				continue
			}
			text := strings.Join(eqLines, "")
			hunks = append(hunks, Hunk{Op: OpEqual, Expected: text, Actual: text, Lines: nil})
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	diff := Diff{Expected: expected, Actual: actual, Hunks: hunks}

	if err := diff.validate(); err != nil {
		panic(fmt.Errorf("textdiff.Compute: validate failed with %v", err))
	}

	return diff
}

// buildLines constructs Line entries and inline spans.
func buildLines(deleteLines, insertLines []string) []Line {
	// Pair up replacements for min(len(delete), len(insert)); leftovers are pure deletes/inserts.
	n := len(deleteLines)
	if len(insertLines) < n {
		n = len(insertLines)
	}
	var lines []Line
	dmp := diffmatchpatch.New()

	for i := 0; i < n; i++ {
		expLine := deleteLines[i]
		actLine := insertLines[i]
		if expLine == actLine {
			lines = append(lines, Line{Op: OpEqual, Expected: expLine, Actual: actLine, Spans: nil})
			continue
		}
		expCore, _ := trimEOL(expLine, defaultEOL)
		actCore, _ := trimEOL(actLine, defaultEOL)
		spans := diffsToSpans(dmp.DiffMain(expCore, actCore, false))
		lines = append(lines, Line{Op: OpReplace, Expected: expLine, Actual: actLine, Spans: spans})
	}
	for i := n; i < len(deleteLines); i++ {
		expLine := deleteLines[i]
		expCore, _ := trimEOL(expLine, defaultEOL)
		var spans []Span
		if len(expCore) > 0 {
			spans = []Span{{Op: OpDelete, Expected: expCore, Actual: ""}}
		}
		lines = append(lines, Line{Op: OpDelete, Expected: expLine, Actual: "", Spans: spans})
	}
	for i := n; i < len(insertLines); i++ {
		actLine := insertLines[i]
		actCore, _ := trimEOL(actLine, defaultEOL)
		var spans []Span
		if len(actCore) > 0 {
			spans = []Span{{Op: OpInsert, Expected: "", Actual: actCore}}
		}
		lines = append(lines, Line{Op: OpInsert, Expected: "", Actual: actLine, Spans: spans})
	}
	return lines
}

// splitPreserveEOL splits text by eol and preserves the eol on each line, except possibly the last.
func splitPreserveEOL(text, eol string) []string {
	if text == "" {
		return nil
	}
	if eol == "" {
		eol = defaultEOL
	}
	var lines []string
	for {
		idx := strings.Index(text, eol)
		if idx == -1 {
			if text != "" {
				lines = append(lines, text)
			}
			break
		}
		lines = append(lines, text[:idx+len(eol)])
		text = text[idx+len(eol):]
		if text == "" {
			break
		}
	}
	return lines
}

// trimEOL removes a trailing eol from a line if present.
func trimEOL(line, eol string) (string, bool) {
	if eol != "" && strings.HasSuffix(line, eol) {
		return line[:len(line)-len(eol)], true
	}
	return line, false
}

// opFor picks the operation implied by the presence of expected/actual text.
// At least one side must be non-empty.
func opFor(expectedLen, actualLen int) Op {
	switch {
	case expectedLen > 0 && actualLen > 0:
		return OpReplace
	case expectedLen > 0:
		return OpDelete
	default:
		return OpInsert
	}
}

// addTo appends the span's contribution to each side's accumulator.
func (s Span) addTo(expBuf, actBuf *strings.Builder) {
	switch s.Op {
	case OpEqual:
		expBuf.WriteString(s.Expected)
		actBuf.WriteString(s.Actual)
	case OpDelete:
		expBuf.WriteString(s.Expected)
	case OpInsert:
		actBuf.WriteString(s.Actual)
	case OpReplace:
		expBuf.WriteString(s.Expected)
		actBuf.WriteString(s.Actual)
	}
}

// mergeSpans collapses a run of spans into a single non-equal span. Equal
// spans in the run contribute to both sides.
func mergeSpans(spans []Span) (Span, bool) {
	var expBuf, actBuf strings.Builder
	for _, s := range spans {
		s.addTo(&expBuf, &actBuf)
	}
	if expBuf.Len() == 0 && actBuf.Len() == 0 {
		return Span{}, false
	}
	return Span{
		Op:       opFor(expBuf.Len(), actBuf.Len()),
		Expected: expBuf.String(),
		Actual:   actBuf.String(),
	}, true
}

// diffsToSpans converts diffmatchpatch diffs to Span entries.
func diffsToSpans(diffs []diffmatchpatch.Diff) []Span {
	// Build initial spans, coalescing adjacent equals to reduce fragmentation:
	var spans []Span
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if len(spans) > 0 && spans[len(spans)-1].Op == OpEqual {
				spans[len(spans)-1].Expected += d.Text
				spans[len(spans)-1].Actual += d.Text
				continue
			}
			spans = append(spans, Span{Op: OpEqual, Expected: d.Text, Actual: d.Text})
		case diffmatchpatch.DiffDelete:
			spans = append(spans, Span{Op: OpDelete, Expected: d.Text, Actual: ""})
		case diffmatchpatch.DiffInsert:
			spans = append(spans, Span{Op: OpInsert, Expected: "", Actual: d.Text})
		}
	}

	if len(spans) == 0 {
		return spans
	}

	// Iteratively collapse any non-equal run between equals into a single span:
	for {
		changed := false
		var normalized []Span
		for i := 0; i < len(spans); {
			if spans[i].Op == OpEqual {
				normalized = append(normalized, spans[i])
				i++
				continue
			}
			// Collect a run of non-equal spans until next equal or end.
			j := i
			for j < len(spans) && spans[j].Op != OpEqual {
				j++
			}
			if merged, any := mergeSpans(spans[i:j]); any {
				normalized = append(normalized, merged)
			}
			if j-i > 1 {
				changed = true
			}
			i = j
		}
		spans = normalized
		if !changed {
			break
		}
	}

	// Iteratively merge small equals sandwiched between non-equals:
	const maxSandwichedEqualLen = 8
	for {
		changed := false
		var normalized []Span
		// Helper to append while coalescing adjacent non-equals:
		appendWithCoalesce := func(s Span) {
			if len(normalized) > 0 && normalized[len(normalized)-1].Op != OpEqual && s.Op != OpEqual {
				if merged, any := mergeSpans([]Span{normalized[len(normalized)-1], s}); any {
					normalized[len(normalized)-1] = merged
					return
				}
			}
			normalized = append(normalized, s)
		}
		for i := 0; i < len(spans); {
			// If we find [non-eq][small eq][non-eq], merge the triplet.
			if i+2 < len(spans) && spans[i].Op != OpEqual && spans[i+1].Op == OpEqual && spans[i+2].Op != OpEqual && len(spans[i+1].Expected) <= maxSandwichedEqualLen {
				merged, _ := mergeSpans(spans[i : i+3])
				appendWithCoalesce(merged)
				changed = true
				i += 3
				continue
			}
			// No triplet to merge; carry span over (coalescing adjacency if needed).
			appendWithCoalesce(spans[i])
			i++
		}
		spans = normalized
		if !changed {
			break
		}
	}
	return spans
}
