package diffformat

import (
	"errors"
	"fmt"

	"github.com/faildiff/faildiff/fact"
	"github.com/faildiff/faildiff/internal/tracelog"
)

// ErrInvalidArgument is returned by FormatValues when an input is absent or of
// an unsupported type.
var ErrInvalidArgument = errors.New("diffformat: invalid argument")

// Format returns facts describing the difference between expected and actual.
//
// If either string contains a newline and the strings are not identical, the
// result is the 1-fact "diff" form. Otherwise it is the 2-fact
// "expected"/"but was" form, with long common affixes elided.
func Format(expected, actual string) fact.List {
	if containsNewline(expected) || containsNewline(actual) {
		if facts, ok := lineDiff(expected, actual); ok {
			tracelog.Log("diffformat: multi-line path (%d/%d bytes)", len(expected), len(actual))
			return facts
		}
	}

	shownExpected, shownActual := elideCommonAffixes(expected, actual)
	return fact.List{
		fact.New("expected", shownExpected),
		fact.New("but was", shownActual),
	}
}

// FormatValues is Format for values that may be absent. A nil value (or nil
// *string) is rejected with ErrInvalidArgument. Accepted types: string,
// *string, []byte, and fmt.Stringer.
func FormatValues(expected, actual any) (fact.List, error) {
	e, err := coerce("expected", expected)
	if err != nil {
		return nil, err
	}
	a, err := coerce("actual", actual)
	if err != nil {
		return nil, err
	}
	return Format(e, a), nil
}

func coerce(name string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: %s is absent", ErrInvalidArgument, name)
	case string:
		return s, nil
	case *string:
		if s == nil {
			return "", fmt.Errorf("%w: %s is absent", ErrInvalidArgument, name)
		}
		return *s, nil
	case []byte:
		return string(s), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidArgument, name, v)
	}
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
