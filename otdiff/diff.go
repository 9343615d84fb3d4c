// Package otdiff synthesizes operations from two document snapshots,
// for callers that have an old and new copy of a document (e.g. an
// editor buffer that doesn't track keystrokes) rather than a live stream
// of edits to replay.
package otdiff

import (
	"unicode/utf8"

	"github.com/otkernel/optext"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FromDiff computes an operation that transforms oldText into newText,
// using Google's diff-match-patch line/character diff algorithm to find a
// minimal edit script and mapping its output onto retain/insert/delete
// components.
//
// DiffCleanupSemantic is applied before conversion so the resulting
// operation groups edits the way a human would describe them (e.g. one
// word replaced) rather than the shortest possible but visually noisy
// byte-level diff.
func FromDiff(oldText, newText string) *ot.Operation {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	op := ot.NewOperation()
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op.Retain(runeLen(d.Text))
		case diffmatchpatch.DiffInsert:
			op.Insert(d.Text)
		case diffmatchpatch.DiffDelete:
			op.Delete(runeLen(d.Text))
		}
	}
	return op
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
