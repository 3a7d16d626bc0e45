package akahu

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// canonicalJSON parses a document into a shape where object key order is
// irrelevant and numbers keep their literal form, so two encodings can be
// compared for semantic equality without losing precision.
func canonicalJSON(t *testing.T, data []byte) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("document does not parse: %v\n%s", err, data)
	}
	return v
}

// assertRoundTrip decodes input into out, re-encodes it, and fails unless the
// two documents are semantically identical.
func assertRoundTrip(t *testing.T, input string, out any) {
	t.Helper()
	if err := json.Unmarshal([]byte(input), out); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	want := canonicalJSON(t, []byte(input))
	got := canonicalJSON(t, encoded)
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip changed the document\n in: %s\nout: %s", input, encoded)
	}
}

// assertDecodeError fails unless err is a DecodeError naming the given field
// path.
func assertDecodeError(t *testing.T, err error, field string) {
	t.Helper()
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected a DecodeError, got %v", err)
	}
	if de.Field != field {
		t.Fatalf("expected the error to name field %q, got %q (%v)", field, de.Field, de)
	}
}
