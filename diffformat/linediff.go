package diffformat

import (
	"fmt"
	"strings"

	"github.com/faildiff/faildiff/fact"
)

// hunkContext is how many unchanged lines are shown before and after the
// changed region.
const hunkContext = 3

// lineBreakMismatch is the diff value when the texts differ only in their
// line-break characters.
const lineBreakMismatch = "(line contents match, but line-break characters differ)"

// lineDiff computes the 1-fact "diff" form for multi-line inputs. It reports
// ok == false when the inputs are identical, in which case the caller falls
// back to the 2-fact form.
func lineDiff(expected, actual string) (facts fact.List, ok bool) {
	if expected == actual {
		return nil, false
	}

	eLines := splitLines(expected)
	aLines := splitLines(actual)

	// The strings differ, so if the line contents don't, the difference has to
	// be in the terminators.
	if equalLines(eLines, aLines) {
		return fact.List{fact.New("diff", lineBreakMismatch)}, true
	}

	lead := commonLeadingLines(eLines, aLines)
	trail := commonTrailingLines(eLines, aLines, lead)

	ctxLead := lead
	if ctxLead > hunkContext {
		ctxLead = hunkContext
	}
	ctxTrail := trail
	if ctxTrail > hunkContext {
		ctxTrail = hunkContext
	}

	start := lead - ctxLead + 1
	countE := ctxLead + (len(eLines) - lead - trail) + ctxTrail
	countA := ctxLead + (len(aLines) - lead - trail) + ctxTrail

	out := make([]string, 0, countE+countA+1)
	out = append(out, fmt.Sprintf("@@ -%d,%d +%d,%d @@", start, countE, start, countA))
	for _, ln := range eLines[lead-ctxLead : lead] {
		out = append(out, " "+ln)
	}
	// Removed lines, then added lines, then trailing context.
	for _, ln := range eLines[lead : len(eLines)-trail] {
		out = append(out, "-"+ln)
	}
	for _, ln := range aLines[lead : len(aLines)-trail] {
		out = append(out, "+"+ln)
	}
	for _, ln := range eLines[len(eLines)-trail : len(eLines)-trail+ctxTrail] {
		out = append(out, " "+ln)
	}

	return fact.List{fact.New("diff", strings.Join(out, "\n"))}, true
}

// splitLines splits text into lines on '\n', dropping a '\r' immediately
// before each '\n'. The terminators are not part of the lines, but their
// presence is: text ending in a newline yields a final empty line, so "a\n"
// and "a" split differently. Explicit scan rather than strings.Split so the
// "\r\n" handling stays exact.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		end := i
		if end > start && text[end-1] == '\r' {
			end--
		}
		lines = append(lines, text[start:end])
		start = i + 1
	}
	return append(lines, text[start:])
}

func equalLines(e, a []string) bool {
	if len(e) != len(a) {
		return false
	}
	for i := range e {
		if e[i] != a[i] {
			return false
		}
	}
	return true
}

func commonLeadingLines(e, a []string) int {
	n := len(e)
	if len(a) < n {
		n = len(a)
	}
	i := 0
	for i < n && e[i] == a[i] {
		i++
	}
	return i
}

// commonTrailingLines scans from the ends, never past the leading run on
// either side.
func commonTrailingLines(e, a []string, lead int) int {
	limit := len(e)
	if len(a) < limit {
		limit = len(a)
	}
	limit -= lead

	i := 0
	for i < limit && e[len(e)-1-i] == a[len(a)-1-i] {
		i++
	}
	return i
}
