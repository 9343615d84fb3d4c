package ot

import (
	"fmt"
	"unicode/utf8"
)

// Kind identifies which of the three component cases a Component is.
type Kind int

const (
	KindRetain Kind = iota
	KindInsert
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindRetain:
		return "retain"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Component is a single edit unit: Retain, Insert, or Delete. It is a
// closed, tagged variant — the three concrete types below are the only
// implementations the package recognizes.
type Component interface {
	// Kind reports which of the three cases this component is.
	Kind() Kind
	// Length returns the component's length: n for Retain/Delete, the
	// code-point count of the inserted string for Insert.
	Length() int
}

// Retain advances the cursor n code points without modifying the document.
type Retain struct{ N int }

func (r Retain) Kind() Kind   { return KindRetain }
func (r Retain) Length() int  { return r.N }
func (r Retain) String() string { return fmt.Sprintf("retain %d", r.N) }

// Insert places s at the current cursor position. s may be empty, in which
// case the component is a no-op and is dropped by Append.
type Insert struct{ Text string }

func (i Insert) Kind() Kind    { return KindInsert }
func (i Insert) Length() int   { return utf8.RuneCountInString(i.Text) }
func (i Insert) String() string { return fmt.Sprintf("insert %q", i.Text) }

// Delete removes the next n code points of the document.
type Delete struct{ N int }

func (d Delete) Kind() Kind   { return KindDelete }
func (d Delete) Length() int  { return d.N }
func (d Delete) String() string { return fmt.Sprintf("delete %d", d.N) }

// IsNoOp reports whether c has zero length: Retain(0), Delete(0), or
// Insert(""). Append and Join drop no-ops rather than ever writing them
// into a result.
func IsNoOp(c Component) bool {
	return c.Length() == 0
}

// CompareLength orders a and b by Length: -1 if a is shorter, 0 if equal,
// 1 if a is longer. Kind is not considered.
func CompareLength(a, b Component) int {
	switch la, lb := a.Length(), b.Length(); {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// Split divides c at code-point offset i into a prefix of length i and a
// suffix of length Length(c)-i, both of c's kind. For Insert, i indexes
// code points, not bytes. The caller guarantees 0 <= i <= Length(c).
func Split(c Component, i int) (Component, Component) {
	switch v := c.(type) {
	case Retain:
		return Retain{N: i}, Retain{N: v.N - i}
	case Delete:
		return Delete{N: i}, Delete{N: v.N - i}
	case Insert:
		runes := []rune(v.Text)
		return Insert{Text: string(runes[:i])}, Insert{Text: string(runes[i:])}
	default:
		panic(fmt.Sprintf("ot: Split called on unrecognized component type %T", c))
	}
}

// Merge combines a and b into a single component if they share a kind
// (retain+retain sums, delete+delete sums, insert+insert concatenates), or
// returns them unchanged as a two-element slice if they don't.
func Merge(a, b Component) []Component {
	if a.Kind() != b.Kind() {
		return []Component{a, b}
	}
	switch av := a.(type) {
	case Retain:
		return []Component{Retain{N: av.N + b.(Retain).N}}
	case Delete:
		return []Component{Delete{N: av.N + b.(Delete).N}}
	case Insert:
		return []Component{Insert{Text: av.Text + b.(Insert).Text}}
	default:
		panic(fmt.Sprintf("ot: Merge called on unrecognized component type %T", a))
	}
}
