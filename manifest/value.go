package manifest

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is an optional JSON scalar as found in manifest fields like `default`
// and `deprecated`. The zero Value is absent.
//
// Values are compared by their compact JSON encoding, so `false`, `"false"`
// and an absent field are all distinct.
type Value struct {
	raw string
}

// StringValue returns a present Value holding s.
func StringValue(s string) Value {
	b, _ := json.Marshal(s)
	return Value{raw: string(b)}
}

// BoolValue returns a present Value holding b.
func BoolValue(b bool) Value {
	return Value{raw: strconv.FormatBool(b)}
}

// IsSet reports whether the field was present.
func (v Value) IsSet() bool {
	return v.raw != ""
}

func (v Value) Equal(other Value) bool {
	return v.raw == other.raw
}

// String returns the human readable form: strings are unquoted, other JSON
// values are returned as encoded and an absent value renders as "undefined".
func (v Value) String() string {
	if !v.IsSet() {
		return "undefined"
	}
	if s, ok := v.stringValue(); ok {
		return s
	}
	return v.raw
}

// Message returns the deprecation message when the value is a string.
func (v Value) Message() (string, bool) {
	return v.stringValue()
}

// Interface returns the decoded value, or nil when absent.
func (v Value) Interface() any {
	if !v.IsSet() {
		return nil
	}
	var out any
	if err := json.Unmarshal([]byte(v.raw), &out); err != nil {
		return v.raw
	}
	return out
}

func (v Value) stringValue() (string, bool) {
	if !v.IsSet() || v.raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(v.raw), &s); err != nil {
		return "", false
	}
	return s, true
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		v.raw = ""
		return nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return err
	}
	v.raw = compact.String()
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.IsSet() {
		return []byte("null"), nil
	}
	return []byte(v.raw), nil
}
