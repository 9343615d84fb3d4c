package ot

import (
	"encoding/json"
	"fmt"
)

// Wire format:
//   - Retain(n)  -> positive integer n
//   - Insert(s)  -> string "s"
//   - Delete(n)  -> {"d": n}
//
// Example: [5, "hello", {"d": 3}, 10]
//
//	= Retain(5), Insert("hello"), Delete(3), Retain(10)
//
// This is deliberately unlike the negative-integer-for-delete convention
// some OT libraries use: a bare negative number is easy to lose in transit
// through anything that treats the wire format as generic JSON (truncating
// floats, logging middleware, schema validators), while a tagged object
// survives it.

// DeleteSpec is the wire shape of a Delete component.
type DeleteSpec struct {
	D int `json:"d"`
}

// MarshalJSON implements json.Marshaler, encoding the operation to the wire
// format described above.
func (o *Operation) MarshalJSON() ([]byte, error) {
	if o == nil {
		return json.Marshal([]interface{}{})
	}

	raw := make([]interface{}, len(o.components))
	for i, c := range o.components {
		switch v := c.(type) {
		case Retain:
			raw[i] = v.N
		case Insert:
			raw[i] = v.Text
		case Delete:
			raw[i] = DeleteSpec{D: v.N}
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler, decoding the wire format
// described above. Unlike NewOperationFromRaw, an element that is not a
// string, an integer or a JSON object is reported as an error here rather
// than a panic, since it's arriving from outside the program. Any JSON
// object is read as a Delete of its "d" field: other fields are ignored,
// and an object without "d" decodes to Delete(0), which Append drops.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	op := NewOperation()
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			op.Insert(s)
			continue
		}
		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			op.Retain(n)
			continue
		}
		var del DeleteSpec
		if err := json.Unmarshal(item, &del); err == nil {
			op.Delete(del.D)
			continue
		}
		return fmt.Errorf("ot: invalid component in wire payload: %s", item)
	}

	*o = *op
	return nil
}

// String returns the operation's wire-format JSON, or an error string if
// marshaling somehow fails (it never does for a validly constructed
// Operation).
func (o *Operation) String() string {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

// NewOperationFromRaw builds an Operation from a slice of raw elements in
// the shapes a JSON decode into interface{} (or a hand-built test fixture)
// would produce: string for Insert, int, int64, uint64 or float64 for
// Retain, and either a DeleteSpec, a Delete, or a map with a "d" key
// (map[string]interface{} or map[string]int) for Delete. Concrete Component values (Retain, Insert, Delete) are
// accepted as-is too, so callers migrating from typed construction don't
// need to unwrap anything.
//
// This is for programmatic callers — test fixtures, REPLs, generators —
// not for untrusted input: an element in none of these shapes is a
// programmer error and panics rather than returning an error.
func NewOperationFromRaw(raw []interface{}) *Operation {
	op := NewOperation()
	for _, item := range raw {
		op.Append(coerceRawElement(item))
	}
	return op
}

func coerceRawElement(item interface{}) Component {
	switch v := item.(type) {
	case Retain:
		return v
	case Insert:
		return v
	case Delete:
		return v
	case DeleteSpec:
		return Delete{N: v.D}
	case string:
		return Insert{Text: v}
	case int:
		return Retain{N: v}
	case int64:
		return Retain{N: int(v)}
	case uint64:
		return Retain{N: int(v)}
	case float64:
		return Retain{N: int(v)}
	case map[string]interface{}:
		n, ok := v["d"]
		if !ok {
			panic(fmt.Sprintf("ot: NewOperationFromRaw: object element missing \"d\" key: %#v", v))
		}
		return Delete{N: coerceRawInt(n)}
	case map[string]int:
		n, ok := v["d"]
		if !ok {
			panic(fmt.Sprintf("ot: NewOperationFromRaw: object element missing \"d\" key: %#v", v))
		}
		return Delete{N: n}
	default:
		panic(fmt.Sprintf("ot: NewOperationFromRaw: unrecognized element of type %T: %#v", item, item))
	}
}

func coerceRawInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		panic(fmt.Sprintf("ot: NewOperationFromRaw: \"d\" value is not numeric: %#v", v))
	}
}
