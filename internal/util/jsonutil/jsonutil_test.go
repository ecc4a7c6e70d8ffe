package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshal_Direct(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := Unmarshal([]byte(`{"a":1}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.A != 1 {
		t.Fatalf("a = %d", v.A)
	}
}

func TestUnmarshal_UnwrapsDoubleEncodedValue(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := Unmarshal([]byte(`"{\"a\":2}"`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.A != 2 {
		t.Fatalf("a = %d", v.A)
	}
}

func TestUnmarshal_ReportsOriginalError(t *testing.T) {
	var v struct{}
	err := Unmarshal([]byte(`not json`), &v)
	if err == nil {
		t.Fatal("expected an error")
	}
	if strings.Contains(err.Error(), "unexpected end") {
		t.Fatalf("error should describe the original payload: %v", err)
	}
}

func TestMarshalNoEscape(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"q": "is x < y & y > z?"})
	if err != nil {
		t.Fatalf("MarshalNoEscape: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "\\u003c") || strings.Contains(s, "\\u0026") {
		t.Fatalf("HTML characters were escaped: %s", s)
	}
	if strings.HasSuffix(s, "\n") {
		t.Fatal("trailing newline not trimmed")
	}
}
