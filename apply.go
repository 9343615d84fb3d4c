package ot

import "strings"

// Apply executes the operation against doc, walking components left to
// right while carrying the remaining document and the output built so far.
// Retain copies code points from doc; Delete skips them; Insert appends
// verbatim. Any document remaining past the last component is concatenated
// onto the output, so an operation need not retain the document's tail
// explicitly for Apply to succeed.
//
// Returns ErrRetainTooLong if a Retain reaches past the end of doc, or
// ErrDeleteMismatch if a Delete can't consume its declared length. The
// first violating component stops the walk; no partial output is returned.
func (o *Operation) Apply(doc string) (string, error) {
	runes := []rune(doc)
	var out strings.Builder
	idx := 0

	for _, c := range o.components {
		switch v := c.(type) {
		case Retain:
			if idx+v.N > len(runes) {
				return "", ErrRetainTooLong
			}
			out.WriteString(string(runes[idx : idx+v.N]))
			idx += v.N
		case Delete:
			if idx+v.N > len(runes) {
				return "", ErrDeleteMismatch
			}
			idx += v.N
		case Insert:
			out.WriteString(v.Text)
		}
	}

	out.WriteString(string(runes[idx:]))
	return out.String(), nil
}

// MustApply is Apply's panicking convenience form, for callers that have
// already validated an operation against a document (or constructed both
// together) and would otherwise just propagate an error they know can't
// occur.
func (o *Operation) MustApply(doc string) string {
	result, err := o.Apply(doc)
	if err != nil {
		panic(err)
	}
	return result
}

// Invert computes the operation that undoes o, given the document o was
// applied to. retain(n) inverts to retain(n); insert(s) inverts to
// delete(len(s)); delete(n) inverts to an insert of the n code points o
// removed from doc. This is the single-step primitive an undo stack is
// built from; the stack itself is out of this package's scope.
func (o *Operation) Invert(doc string) *Operation {
	runes := []rune(doc)
	inverse := NewOperation()
	idx := 0

	for _, c := range o.components {
		switch v := c.(type) {
		case Retain:
			inverse.Retain(v.N)
			idx += v.N
		case Insert:
			inverse.Delete(v.Length())
		case Delete:
			inverse.Insert(string(runes[idx : idx+v.N]))
			idx += v.N
		}
	}

	return inverse
}
