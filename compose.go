package ot

// Compose folds two consecutive operations into one equivalent operation:
// for any document d that a can apply to,
//
//	b.MustApply(a.MustApply(d)) == a.Compose(b).MustApply(d)
//
// Compose is total over canonical operations whose lengths agree —
// a.TargetLen() == b.BaseLen() — which callers are expected to guarantee
// the same way they guarantee Apply is called against a matching document.
// It panics if the two operations' lengths don't line up, since that is a
// caller bug rather than a recoverable runtime condition.
func (a *Operation) Compose(b *Operation) *Operation {
	result := NewOperation()
	it := newPairIterator(a.components, b.components)

	for {
		ca, cb, aDone, bDone := it.next(SkipComposePriority, false)

		if aDone && bDone {
			return result
		}

		// A delete in a has no counterpart in b: it removes the text before
		// b ever sees it, so it passes straight through to the result.
		if cb == nil {
			d, ok := ca.(Delete)
			if !ok {
				panic("ot: Compose: a's target length is shorter than b's base length")
			}
			result.Delete(d.N)
			continue
		}

		// An insert in b has no counterpart in a: it introduces text a
		// never produced, so it too passes straight through.
		if ca == nil {
			i, ok := cb.(Insert)
			if !ok {
				panic("ot: Compose: b's base length is shorter than a's target length")
			}
			result.Insert(i.Text)
			continue
		}

		switch va := ca.(type) {
		case Retain:
			switch vb := cb.(type) {
			case Retain:
				result.Retain(va.N)
			case Delete:
				result.Delete(vb.N)
			default:
				panic("ot: Compose: unreachable component pairing")
			}
		case Insert:
			switch vb := cb.(type) {
			case Retain:
				result.Insert(va.Text)
			case Delete:
				// b deletes exactly the text a just inserted; neither
				// survives into the composed operation.
				_ = vb
			default:
				panic("ot: Compose: unreachable component pairing")
			}
		default:
			panic("ot: Compose: unreachable component pairing")
		}
	}
}
