package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		op     *Operation
		expect string
	}{
		{
			name:   "simple insert",
			doc:    "",
			op:     NewOperation().Insert("hello"),
			expect: "hello",
		},
		{
			name:   "retain and insert",
			doc:    "world",
			op:     NewOperation().Retain(5).Insert("!"),
			expect: "world!",
		},
		{
			name:   "delete",
			doc:    "hello world",
			op:     NewOperation().Delete(6).Retain(5),
			expect: "world",
		},
		{
			name:   "complex",
			doc:    "hello",
			op:     NewOperation().Retain(2).Delete(1).Insert("n").Retain(2),
			expect: "henlo",
		},
		{
			name:   "unretained tail is carried through untouched",
			doc:    "hello world",
			op:     NewOperation().Retain(5),
			expect: "hello world",
		},
		{
			name:   "multi-byte runes are counted as code points",
			doc:    "héllo",
			op:     NewOperation().Retain(2).Delete(1).Insert("3"),
			expect: "hé3lo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op.Apply(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
		})
	}
}

func TestApplyRetainTooLong(t *testing.T) {
	op := NewOperation().Retain(10)
	_, err := op.Apply("short")
	assert.ErrorIs(t, err, ErrRetainTooLong)
}

func TestApplyDeleteMismatch(t *testing.T) {
	op := NewOperation().Delete(10)
	_, err := op.Apply("short")
	assert.ErrorIs(t, err, ErrDeleteMismatch)
}

func TestMustApplyPanicsOnError(t *testing.T) {
	op := NewOperation().Retain(10)
	assert.Panics(t, func() {
		op.MustApply("short")
	})
}

func TestMustApplyReturnsResultOnSuccess(t *testing.T) {
	op := NewOperation().Insert("hi")
	assert.Equal(t, "hi", op.MustApply(""))
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		op   *Operation
	}{
		{
			name: "simple insert",
			doc:  "abc",
			op:   NewOperation().Retain(3).Insert("def"),
		},
		{
			name: "delete",
			doc:  "abcdef",
			op:   NewOperation().Delete(3).Retain(3),
		},
		{
			name: "complex",
			doc:  "hello world",
			op:   NewOperation().Retain(5).Insert(" beautiful").Retain(6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inverse := tt.op.Invert(tt.doc)

			after, err := tt.op.Apply(tt.doc)
			require.NoError(t, err)

			restored, err := inverse.Apply(after)
			require.NoError(t, err)
			assert.Equal(t, tt.doc, restored, "applying the inverse after the operation must restore the document")

			assert.Equal(t, tt.op.BaseLen(), inverse.TargetLen())
			assert.Equal(t, tt.op.TargetLen(), inverse.BaseLen())
		})
	}
}
