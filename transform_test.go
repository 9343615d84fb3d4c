package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// converge applies a then b's transform, and b then a's transform, and
// reports whether both reach the same document. It applies sequentially
// rather than composing, since a transform result may omit a trailing
// Retain a caller would need to pad back in before composing.
func converge(t *testing.T, doc string, a, b *Operation) (string, string) {
	t.Helper()

	aPrime := a.Transform(b, SideLeft)
	bPrime := b.Transform(a, SideRight)

	afterA, err := a.Apply(doc)
	require.NoError(t, err)
	afterB, err := b.Apply(doc)
	require.NoError(t, err)

	viaB, err := bPrime.Apply(afterA)
	require.NoError(t, err)
	viaA, err := aPrime.Apply(afterB)
	require.NoError(t, err)

	return viaB, viaA
}

// TestTransformConvergence checks the TP1 property: applying a then b's
// transform, or b then a's transform, reaches the same document.
func TestTransformConvergence(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		a    *Operation
		b    *Operation
	}{
		{
			name: "concurrent inserts at different positions",
			doc:  "hello",
			a:    NewOperation().Retain(5).Insert(" world"),
			b:    NewOperation().Insert(">> ").Retain(5),
		},
		{
			name: "concurrent delete and retain",
			doc:  "hello world",
			a:    NewOperation().Delete(6).Retain(5),
			b:    NewOperation().Retain(6).Delete(5),
		},
		{
			name: "overlapping deletes",
			doc:  "abcdefgh",
			a:    NewOperation().Retain(2).Delete(4).Retain(2),
			b:    NewOperation().Retain(1).Delete(5).Retain(2),
		},
		{
			name: "insert inside a region the other side deletes",
			doc:  "abcdef",
			a:    NewOperation().Retain(2).Insert("XY").Retain(4),
			b:    NewOperation().Retain(1).Delete(4).Retain(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := converge(t, tt.doc, tt.a, tt.b)
			assert.Equal(t, left, right, "transform must converge regardless of application order")
		})
	}
}

func TestTransformInsertTieBreak(t *testing.T) {
	a := NewOperation().Insert("A")
	b := NewOperation().Insert("B")

	t.Run("left side wins", func(t *testing.T) {
		aPrime := a.Transform(b, SideLeft)
		// a is drained the instant its lone insert is taken by the
		// preferA tie-break, so transform stops there: nothing is left
		// to retain past b's insert.
		assert.True(t, aPrime.Equal(NewOperation().Insert("A")))
	})

	t.Run("right side loses and retains past the left insert", func(t *testing.T) {
		bPrime := b.Transform(a, SideRight)
		assert.True(t, bPrime.Equal(NewOperation().Retain(1).Insert("B")))
	})

	// Applying both transformed operations in whichever order reaches the
	// same two-character document.
	left, right := converge(t, "", a, b)
	assert.Equal(t, left, right)
}

func TestTransformDeleteVsDelete(t *testing.T) {
	a := NewOperation().Retain(2).Delete(3).Retain(1)
	b := NewOperation().Retain(2).Delete(3).Retain(1)

	aPrime := a.Transform(b, SideLeft)
	// both sides deleted the exact same span: a's transformed form has
	// nothing left to do there
	assert.True(t, aPrime.IsNoop())
}

func TestTransformRetainVsDelete(t *testing.T) {
	a := NewOperation().Retain(6)
	b := NewOperation().Retain(2).Delete(2).Retain(2)

	aPrime := a.Transform(b, SideLeft)
	// a only retained, so once the span b deleted is excluded, nothing
	// remains to retain either; the trailing retain is stripped down to
	// the empty, no-op operation.
	assert.True(t, aPrime.IsNoop())
	assert.True(t, aPrime.Equal(NewOperation()))
}

func TestTransformAsymmetricDrain(t *testing.T) {
	// b has a trailing insert past where a's base document ends.
	a := NewOperation().Retain(3)
	b := NewOperation().Retain(3).Insert("tail")

	aPrime := a.Transform(b, SideLeft)
	// a is drained once its one retain is matched; transform stops right
	// there regardless of b's trailing insert, and the remaining retain
	// is stripped, leaving the empty operation.
	assert.True(t, aPrime.Equal(NewOperation()))

	bPrime := b.Transform(a, SideRight)
	assert.True(t, bPrime.Equal(NewOperation().Retain(3).Insert("tail")), "b' carries its own trailing insert through unchanged")
}

func TestTransformPanicsOnLengthMismatch(t *testing.T) {
	a := NewOperation().Retain(5)
	b := NewOperation().Retain(3)
	assert.Panics(t, func() {
		a.Transform(b, SideLeft)
	})
}

func TestOtherSide(t *testing.T) {
	assert.Equal(t, SideRight, otherSide(SideLeft))
	assert.Equal(t, SideLeft, otherSide(SideRight))
}
