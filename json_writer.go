package pdfimport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose members keep the order they were written in.
// Its zero value is ready to use. The first error is kept and returned by MarshalJSON.
type jsonObjectWriter struct {
	members [][]byte
	err     error
}

// Embed merges the members of a raw JSON object into the object.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	trimmed := bytes.TrimSpace(rawJSON)
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		w.err = fmt.Errorf("cannot embed %q: not a json object", rawJSON)
		return w
	}
	if inner := bytes.TrimSpace(trimmed[1 : len(trimmed)-1]); len(inner) > 0 {
		w.members = append(w.members, inner)
	}
	return w
}

// EmbedFrom merges the members of v, once marshaled, into the object.
// Money values are embedded this way, as "currency" and "amount" members.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	rawJSON, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(rawJSON)
}

// Append adds the member key.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	member := make([]byte, 0, len(k)+len(v)+1)
	member = append(member, k...)
	member = append(member, ':')
	member = append(member, v...)
	w.members = append(w.members, member)
	return w
}

// Optional adds the member key unless value is the zero value of its type.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON returns the object, or the first error met while building it.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	b.Write(bytes.Join(w.members, []byte(",")))
	b.WriteByte('}')
	return b.Bytes(), nil
}
