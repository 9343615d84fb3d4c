package fixture

import (
	"path/filepath"
	"runtime"
	"testing"

	ot "github.com/otkernel/optext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "fixtures", name)
}

func TestLoadApplyFixtures(t *testing.T) {
	cases, err := LoadApplyFixtures(fixturePath("apply.jsonl"))
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := c.Op.Apply(c.Doc)
			if c.ExpectErr != "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.Expect, result)
		})
	}
}

func TestLoadComposeFixtures(t *testing.T) {
	cases, err := LoadComposeFixtures(fixturePath("compose.jsonl"))
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			composed := c.A.Compose(c.B)
			result, err := composed.Apply(c.Doc)
			require.NoError(t, err)
			assert.Equal(t, c.Expect, result)
		})
	}
}

func TestLoadTransformFixtures(t *testing.T) {
	cases, err := LoadTransformFixtures(fixturePath("transform.jsonl"))
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			aPrime := c.A.Transform(c.B, ot.SideLeft)
			bPrime := c.B.Transform(c.A, ot.SideRight)

			afterA, err := c.A.Apply(c.Doc)
			require.NoError(t, err)
			afterB, err := c.B.Apply(c.Doc)
			require.NoError(t, err)

			// A transform result can omit a trailing Retain, so apply it
			// sequentially rather than composing it onto the other side.
			left, err := bPrime.Apply(afterA)
			require.NoError(t, err)
			right, err := aPrime.Apply(afterB)
			require.NoError(t, err)
			assert.Equal(t, left, right)
		})
	}
}

func TestLoadApplyFixturesMissingFile(t *testing.T) {
	_, err := LoadApplyFixtures(fixturePath("does-not-exist.jsonl"))
	assert.Error(t, err)
}
