// README: Loosely typed request value shared by the prompt and query modules.
package types

import (
	"bytes"
	"encoding/json"
)

// Field holds a JSON scalar exactly as the client sent it. Clients send
// "days": 5 as readily as "days": "5", and both are echoed back unchanged.
type Field struct {
	raw json.RawMessage
}

// Text returns a Field holding s as a JSON string.
func Text(s string) Field {
	return Field{raw: quote(s)}
}

// quote renders s in one canonical spelling, so "G\u006fa" and "Goa" compare equal.
func quote(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// IsSet reports whether the field was present and not null.
func (f Field) IsSet() bool {
	return len(f.raw) > 0
}

// IsString reports whether the field holds a JSON string.
func (f Field) IsString() bool {
	return len(f.raw) > 0 && f.raw[0] == '"'
}

// Or returns f when set, otherwise Text(def).
func (f Field) Or(def string) Field {
	if f.IsSet() {
		return f
	}
	return Text(def)
}

// Key is the canonical JSON literal, used where values must compare exactly.
// Strings with the same decoded value share a key; 5 and "5" do not.
func (f Field) Key() string {
	return string(f.raw)
}

// String renders the value for prompt text: strings unquoted, anything else as its JSON literal.
func (f Field) String() string {
	if !f.IsSet() {
		return ""
	}
	if f.IsString() {
		var s string
		if err := json.Unmarshal(f.raw, &s); err == nil {
			return s
		}
	}
	return string(f.raw)
}

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		f.raw = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.raw = quote(s)
		return nil
	}
	f.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.IsSet() {
		return []byte("null"), nil
	}
	return f.raw, nil
}
