package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Unmarshal decodes JSON bytes into v with best effort:
// 1) direct unmarshal
// 2) if the payload is itself a JSON-encoded string (a double-encoded
//    value, which completion services produce now and then), unwrap one
//    level and try again.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if err2 := json.Unmarshal([]byte(s), v); err2 == nil {
			return nil
		}
	}
	// Report the original failure, not the unwrap attempt's.
	return json.Unmarshal(data, v)
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into \u003c, etc.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Remove trailing newline from json.Encoder.Encode
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
