package textdiff

import (
	"fmt"
	"strings"
)

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var expConcat, actConcat strings.Builder
	for hi, h := range d.Hunks {
		if err := checkOp(h.Op, h.Expected, h.Actual, fmt.Sprintf("hunk[%d]", hi)); err != nil {
			return err
		}
		if h.Op == OpEqual && h.Lines != nil {
			return fmt.Errorf("hunk[%d]: OpEqual requires Lines==nil", hi)
		}

		expConcat.WriteString(h.Expected)
		actConcat.WriteString(h.Actual)

		if h.Op == OpEqual {
			continue
		}

		var expLinesConcat, actLinesConcat strings.Builder
		for li, ln := range h.Lines {
			label := fmt.Sprintf("hunk[%d].line[%d]", hi, li)
			if err := checkOp(ln.Op, ln.Expected, ln.Actual, label); err != nil {
				return err
			}
			if ln.Op == OpEqual && ln.Spans != nil {
				return fmt.Errorf("%s: OpEqual requires Spans==nil", label)
			}

			expLinesConcat.WriteString(ln.Expected)
			actLinesConcat.WriteString(ln.Actual)

			if ln.Op == OpEqual {
				continue
			}

			var sExp, sAct strings.Builder
			for si, sp := range ln.Spans {
				spanLabel := fmt.Sprintf("%s.span[%d]", label, si)
				if strings.Contains(sp.Expected, defaultEOL) {
					return fmt.Errorf("%s: Expected contains EOL", spanLabel)
				}
				if strings.Contains(sp.Actual, defaultEOL) {
					return fmt.Errorf("%s: Actual contains EOL", spanLabel)
				}
				if err := checkOp(sp.Op, sp.Expected, sp.Actual, spanLabel); err != nil {
					return err
				}

				sExp.WriteString(sp.Expected)
				sAct.WriteString(sp.Actual)
			}

			expSuffix := ""
			actSuffix := ""
			if strings.HasSuffix(ln.Expected, defaultEOL) {
				expSuffix = defaultEOL
			}
			if strings.HasSuffix(ln.Actual, defaultEOL) {
				actSuffix = defaultEOL
			}

			if ln.Expected != sExp.String()+expSuffix {
				return fmt.Errorf("%s: spans do not reconstruct Expected", label)
			}
			if ln.Actual != sAct.String()+actSuffix {
				return fmt.Errorf("%s: spans do not reconstruct Actual", label)
			}
		}

		if h.Expected != expLinesConcat.String() {
			return fmt.Errorf("hunk[%d]: lines do not reconstruct Expected", hi)
		}
		if h.Actual != actLinesConcat.String() {
			return fmt.Errorf("hunk[%d]: lines do not reconstruct Actual", hi)
		}
	}

	if d.Expected != expConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct Expected")
	}
	if d.Actual != actConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct Actual")
	}
	return nil
}

// checkOp verifies the presence/absence rules an Op imposes on the expected
// and actual texts of a hunk, line, or span.
func checkOp(op Op, expected, actual, label string) error {
	switch op {
	case OpEqual:
		if expected != actual {
			return fmt.Errorf("%s: OpEqual requires Expected==Actual", label)
		}
	case OpInsert:
		if expected != "" || actual == "" {
			return fmt.Errorf("%s: OpInsert requires Expected==\"\" and Actual!=\"\"", label)
		}
	case OpDelete:
		if expected == "" || actual != "" {
			return fmt.Errorf("%s: OpDelete requires Expected!=\"\" and Actual==\"\"", label)
		}
	case OpReplace:
		if expected == "" || actual == "" {
			return fmt.Errorf("%s: OpReplace requires Expected!=\"\" and Actual!=\"\"", label)
		}
	}
	return nil
}
