// Package fixture loads the harness's JSON-Lines scenario files into the
// typed cases cmd/otbench replays against the ot package.
package fixture

import (
	"fmt"
	"os"

	ot "github.com/otkernel/optext"
	"github.com/tidwall/gjson"
)

// ApplyCase exercises Operation.Apply against a single document.
type ApplyCase struct {
	Name   string
	Doc    string
	Op     *ot.Operation
	Expect string
	// ExpectErr, when non-empty, names the sentinel error Apply is
	// expected to return ("retain_too_long" or "delete_mismatch")
	// instead of producing Expect.
	ExpectErr string
}

// ComposeCase exercises Operation.Compose.
type ComposeCase struct {
	Name   string
	Doc    string
	A      *ot.Operation
	B      *ot.Operation
	Expect string
}

// TransformCase exercises Operation.Transform for both sides and checks
// convergence against Doc.
type TransformCase struct {
	Name string
	Doc  string
	A    *ot.Operation
	B    *ot.Operation
}

// LoadApplyFixtures reads a JSON-Lines file of apply scenarios.
func LoadApplyFixtures(path string) ([]ApplyCase, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	cases := make([]ApplyCase, 0, len(lines))
	for i, line := range lines {
		r := gjson.Parse(line)
		cases = append(cases, ApplyCase{
			Name:      fieldOr(r, "name", fmt.Sprintf("apply#%d", i)),
			Doc:       r.Get("doc").String(),
			Op:        ot.NewOperationFromRaw(rawOp(r.Get("op"))),
			Expect:    r.Get("expect").String(),
			ExpectErr: r.Get("expect_error").String(),
		})
	}
	return cases, nil
}

// LoadComposeFixtures reads a JSON-Lines file of compose scenarios.
func LoadComposeFixtures(path string) ([]ComposeCase, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	cases := make([]ComposeCase, 0, len(lines))
	for i, line := range lines {
		r := gjson.Parse(line)
		cases = append(cases, ComposeCase{
			Name:   fieldOr(r, "name", fmt.Sprintf("compose#%d", i)),
			Doc:    r.Get("doc").String(),
			A:      ot.NewOperationFromRaw(rawOp(r.Get("a"))),
			B:      ot.NewOperationFromRaw(rawOp(r.Get("b"))),
			Expect: r.Get("expect").String(),
		})
	}
	return cases, nil
}

// LoadTransformFixtures reads a JSON-Lines file of transform scenarios.
func LoadTransformFixtures(path string) ([]TransformCase, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	cases := make([]TransformCase, 0, len(lines))
	for i, line := range lines {
		r := gjson.Parse(line)
		cases = append(cases, TransformCase{
			Name: fieldOr(r, "name", fmt.Sprintf("transform#%d", i)),
			Doc:  r.Get("doc").String(),
			A:    ot.NewOperationFromRaw(rawOp(r.Get("a"))),
			B:    ot.NewOperationFromRaw(rawOp(r.Get("b"))),
		})
	}
	return cases, nil
}

func fieldOr(r gjson.Result, key, fallback string) string {
	if v := r.Get(key); v.Exists() {
		return v.String()
	}
	return fallback
}

// rawOp converts a gjson array result into the []interface{} shape
// ot.NewOperationFromRaw expects: numbers become ints, strings stay
// strings, and delete objects become map[string]int.
func rawOp(r gjson.Result) []interface{} {
	elems := r.Array()
	raw := make([]interface{}, 0, len(elems))
	for _, e := range elems {
		raw = append(raw, rawElement(e))
	}
	return raw
}

func rawElement(r gjson.Result) interface{} {
	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.Number:
		return int(r.Int())
	case gjson.JSON:
		return map[string]int{"d": int(r.Get("d").Int())}
	default:
		panic(fmt.Sprintf("fixture: unrecognized component element: %s", r.Raw))
	}
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	var lines []string
	for _, line := range splitNonEmptyLines(string(data)) {
		lines = append(lines, line)
	}
	return lines, nil
}

func splitNonEmptyLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			if len(line) > 0 {
				out = append(out, line)
			}
			start = i + 1
		}
	}
	return out
}
