package ot

// Side names one of the two concurrent editors whose operation is being
// transformed, used only to break ties when both operations insert at the
// same position. There is no inherent priority between editors; Side just
// has to be applied consistently by both sides of a transform so they
// converge on the same document.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func otherSide(s Side) Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Transform rewrites a so it can be applied after b, given that a and b
// were both produced against the same base document concurrently. For any
// document d that both a and b can apply to:
//
//	a.Transform(b, SideLeft).MustApply(b.MustApply(d)) ==
//	b.Transform(a, SideRight).MustApply(a.MustApply(d))
//
// This is the convergence property (TP1) the whole package exists to
// provide. side only matters when a and b insert at the same position: the
// side whose insert should be ordered first is SideLeft; calling this
// method from each editor's own side and the other's opposite side is what
// makes both editors converge.
//
// Transform is total over canonical operations with matching base lengths
// — a.BaseLen() == b.BaseLen() — which callers are expected to guarantee.
// It panics if a's base length exceeds b's; if b's is the longer, the
// remainder of b is ignored as described below.
//
// Once a is drained, Transform stops regardless of what remains in b: a has
// nothing left to transform, so there is nothing further to produce. The
// result then has its trailing Retain stripped. Only Transform does this;
// Compose and the builders keep a trailing Retain. A stripped result can be
// shorter than the document it is applied to: Apply passes the untouched
// remainder through, but composing it onto another operation needs the
// trailing Retain added back first. A result left empty by the strip is
// reported as a no-op by IsNoop.
func (a *Operation) Transform(b *Operation, side Side) *Operation {
	result := NewOperation()
	it := newPairIterator(a.components, b.components)
	preferA := side == SideLeft

	for {
		ca, cb, aDone, bDone := it.next(SkipTransformPriority, preferA)

		if aDone {
			break
		}

		// Equal base lengths mean a and b always exhaust their Retain and
		// Delete components in lockstep; only a trailing Insert can ever
		// dangle past b's exhaustion.
		if bDone {
			i, ok := ca.(Insert)
			if !ok {
				panic("ot: Transform: b's base length is shorter than a's base length")
			}
			result.Insert(i.Text)
			continue
		}

		switch {
		case ca == nil:
			// b inserts here with nothing queued from a: a's transformed
			// form must retain past the new text to keep later positions
			// aligned.
			result.Retain(cb.Length())
		case cb == nil:
			// a inserts here with nothing queued from b: the insert
			// survives into a's transformed form unchanged.
			result.Insert(ca.(Insert).Text)
		default:
			switch va := ca.(type) {
			case Retain:
				if _, ok := cb.(Retain); ok {
					result.Retain(va.N)
				}
				// retain vs delete: b removes this span, so a's
				// transformed form must not retain past it.
			case Delete:
				if _, ok := cb.(Retain); ok {
					result.Delete(va.N)
				}
				// delete vs delete: both sides already agree this span is
				// gone, so a's transformed form need not delete it again.
			default:
				panic("ot: Transform: unreachable component pairing")
			}
		}
	}

	return stripTrailingRetain(result)
}

// stripTrailingRetain drops a trailing Retain component, if there is one.
// Transform results omit it: a Retain at the end carries no information a
// caller couldn't already derive from the two input operations' lengths.
func stripTrailingRetain(o *Operation) *Operation {
	n := len(o.components)
	if n == 0 {
		return o
	}
	if _, ok := o.components[n-1].(Retain); ok {
		o.components = o.components[:n-1]
	}
	return o
}
