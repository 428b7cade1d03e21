// Package fact models the ordered, labeled key/value pairs that make up a
// structured test-failure report.
//
// A mismatch is described by a List of facts rather than a single opaque
// string, so harnesses can render, filter, or assert on individual entries.
// Order is significant and part of the contract.
package fact

// Fact is a labeled diagnostic entry. The value is optional: a key-only fact
// (ex: "expected to be empty") carries its whole meaning in the key.
type Fact struct {
	Key      string
	Value    string
	HasValue bool
}

// New returns a Fact with a key and a value.
func New(key, value string) Fact {
	return Fact{Key: key, Value: value, HasValue: true}
}

// Simple returns a key-only Fact.
func Simple(key string) Fact {
	return Fact{Key: key}
}

// List is an ordered list of facts. It is the output type of the diff
// formatter and the input type of failure renderers.
type List []Fact

// Keys returns the fact keys in order.
func (l List) Keys() []string {
	keys := make([]string, 0, len(l))
	for _, f := range l {
		keys = append(keys, f.Key)
	}
	return keys
}
