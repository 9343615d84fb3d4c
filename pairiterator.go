package ot

// SkipKind selects which components get priority treatment when
// pairIterator aligns two component slices: a kind that has no
// corresponding unit on the other track, and so must never be split
// against it. Composition gives priority to the first operand's Delete
// (it consumes from a document the second operand never sees) and the
// second operand's Insert (it produces text the first operand never
// produced). Transformation gives priority to Insert on either side (a
// concurrent insert has no counterpart in the other editor's operation).
type SkipKind int

const (
	SkipNone SkipKind = iota
	SkipComposePriority
	SkipTransformPriority
)

// pairIterator walks two component slices in lockstep, emitting
// length-aligned pairs one step at a time. It is the scanner that
// composition and transformation both drive; the two callers differ only
// in which SkipKind they pass and in how they interpret a returned pair.
//
// next never mutates the slices it was built from in place — Split and
// prepend always allocate fresh slices — so advancing one pairIterator
// never disturbs another built from the same starting components.
type pairIterator struct {
	a []Component
	b []Component
}

func newPairIterator(a, b []Component) *pairIterator {
	return &pairIterator{a: a, b: b}
}

// next returns the next aligned pair (ca, cb). aDone/bDone report whether
// that side was already fully drained (past any no-ops) before this call;
// when a side is done, its returned component is always nil and the other
// side's head is returned un-split, one component per call, until it too
// drains.
//
// When both sides still have components, a priority kind (per skip) on
// either head is returned alone, with the other side's return value nil
// and its slice untouched, WITHOUT setting either done flag — the caller
// must tell this case apart from true exhaustion using aDone/bDone, not
// by checking the returned components for nil. When both heads are the
// transform priority kind simultaneously, preferA picks which one this
// call reports; the other is reported on the following call.
//
// Outside of priority handling, the shorter of the two heads is returned
// whole and the longer is split so both returned components share a
// length; the unreturned remainder is pushed back onto its tail.
func (p *pairIterator) next(skip SkipKind, preferA bool) (ca, cb Component, aDone, bDone bool) {
	for len(p.a) > 0 && IsNoOp(p.a[0]) {
		p.a = p.a[1:]
	}
	for len(p.b) > 0 && IsNoOp(p.b[0]) {
		p.b = p.b[1:]
	}

	switch {
	case len(p.a) == 0 && len(p.b) == 0:
		return nil, nil, true, true
	case len(p.a) == 0:
		hb := p.b[0]
		p.b = p.b[1:]
		return nil, hb, true, false
	case len(p.b) == 0:
		ha := p.a[0]
		p.a = p.a[1:]
		return ha, nil, false, true
	}

	ha, hb := p.a[0], p.b[0]

	switch skip {
	case SkipComposePriority:
		if ha.Kind() == KindDelete {
			p.a = p.a[1:]
			return ha, nil, false, false
		}
		if hb.Kind() == KindInsert {
			p.b = p.b[1:]
			return nil, hb, false, false
		}
	case SkipTransformPriority:
		haIns, hbIns := ha.Kind() == KindInsert, hb.Kind() == KindInsert
		switch {
		case haIns && hbIns:
			if preferA {
				p.a = p.a[1:]
				return ha, nil, false, false
			}
			p.b = p.b[1:]
			return nil, hb, false, false
		case haIns:
			p.a = p.a[1:]
			return ha, nil, false, false
		case hbIns:
			p.b = p.b[1:]
			return nil, hb, false, false
		}
	}

	switch la, lb := ha.Length(), hb.Length(); {
	case la == lb:
		p.a, p.b = p.a[1:], p.b[1:]
		return ha, hb, false, false
	case la < lb:
		prefix, suffix := Split(hb, la)
		p.a = p.a[1:]
		p.b = prepend(suffix, p.b[1:])
		return ha, prefix, false, false
	default:
		prefix, suffix := Split(ha, lb)
		p.a = prepend(suffix, p.a[1:])
		p.b = p.b[1:]
		return prefix, hb, false, false
	}
}

// prepend returns a new slice with c ahead of rest, used internally to push
// a split remainder back onto a tail for the next scan step.
func prepend(c Component, rest []Component) []Component {
	out := make([]Component, 0, len(rest)+1)
	out = append(out, c)
	return append(out, rest...)
}
