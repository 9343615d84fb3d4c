package ot

import "strings"

// Operation is a canonical, ordered sequence of components describing an
// edit to a document. Canonical means: no no-op components, and no two
// adjacent components share a kind (adjacent same-kind runs are always
// merged). Every exported constructor and combinator in this package
// returns a canonical Operation.
//
// Operations are built up by mutating a freshly constructed value (via
// Append/Retain/Insert/Delete/Join) and then treated as immutable; nothing
// in this package mutates an Operation it did not just construct.
type Operation struct {
	components []Component
}

// NewOperation returns a new, empty operation.
func NewOperation() *Operation {
	return &Operation{components: make([]Component, 0, 4)}
}

// Append adds c to the operation, canonicalizing as it goes: a no-op c is
// dropped; a c sharing a kind with the last component is merged into it;
// otherwise c is pushed as a new component. This is the single path every
// combinator in this package uses to write into a result, which is what
// keeps every result canonical.
func (o *Operation) Append(c Component) *Operation {
	if IsNoOp(c) {
		return o
	}
	if n := len(o.components); n > 0 && o.components[n-1].Kind() == c.Kind() {
		o.components[n-1] = Merge(o.components[n-1], c)[0]
		return o
	}
	o.components = append(o.components, c)
	return o
}

// Join appends every component of other onto o, equivalent to folding
// Append over other's components. A nil or empty other leaves o unchanged.
func (o *Operation) Join(other *Operation) *Operation {
	if other == nil {
		return o
	}
	for _, c := range other.components {
		o.Append(c)
	}
	return o
}

// Retain is a convenience wrapper around Append(Retain{N: n}).
func (o *Operation) Retain(n int) *Operation { return o.Append(Retain{N: n}) }

// Insert is a convenience wrapper around Append(Insert{Text: s}).
func (o *Operation) Insert(s string) *Operation { return o.Append(Insert{Text: s}) }

// Delete is a convenience wrapper around Append(Delete{N: n}).
func (o *Operation) Delete(n int) *Operation { return o.Append(Delete{N: n}) }

// Components returns the operation's components in order. Callers must not
// mutate the returned slice.
func (o *Operation) Components() []Component {
	return o.components
}

// IsNoop reports whether the operation has no effect on a document: it is
// empty, or it is a single Retain.
func (o *Operation) IsNoop() bool {
	if len(o.components) == 0 {
		return true
	}
	if len(o.components) == 1 {
		_, ok := o.components[0].(Retain)
		return ok
	}
	return false
}

// BaseLen returns the code-point length of a document this operation can be
// applied to: the sum of its Retain and Delete lengths.
func (o *Operation) BaseLen() int {
	n := 0
	for _, c := range o.components {
		switch c.(type) {
		case Retain, Delete:
			n += c.Length()
		}
	}
	return n
}

// TargetLen returns the code-point length of the document that results from
// applying this operation: the sum of its Retain and Insert lengths.
func (o *Operation) TargetLen() int {
	n := 0
	for _, c := range o.components {
		switch c.(type) {
		case Retain, Insert:
			n += c.Length()
		}
	}
	return n
}

// Equal reports whether o and other have the same components in the same
// order.
func (o *Operation) Equal(other *Operation) bool {
	if other == nil {
		return len(o.components) == 0
	}
	if len(o.components) != len(other.components) {
		return false
	}
	for i := range o.components {
		if o.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// Debug renders the operation for debugging, e.g. `retain 5, insert "hi",
// delete 2`. For the wire-format representation, see String in serde.go.
func (o *Operation) Debug() string {
	parts := make([]string, len(o.components))
	for i, c := range o.components {
		parts[i] = componentString(c)
	}
	return strings.Join(parts, ", ")
}

func componentString(c Component) string {
	switch v := c.(type) {
	case Retain:
		return v.String()
	case Insert:
		return v.String()
	case Delete:
		return v.String()
	default:
		return "?"
	}
}
