package rest

import (
	"strings"
	"testing"
)

func TestReason(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{`{"reason":"Namespace already exists"}`, "Namespace already exists"},
		{"  Not Found\n", "Not Found"},
		{`{"message":"other shape"}`, `{"message":"other shape"}`},
		{"", ""},
	}

	for _, test := range tests {
		if r := reason([]byte(test.body)); r != test.expected {
			t.Errorf("expected reason %q for body %q but got %q", test.expected, test.body, r)
		}
	}

	long := strings.Repeat("x", 2*maxReasonLength)
	if r := reason([]byte(long)); len(r) != maxReasonLength {
		t.Errorf("expected reason to be truncated to %v but got %v", maxReasonLength, len(r))
	}
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{Method: "GET", URL: "http://h:1/x", StatusCode: 409, Reason: "exists"}
	expected := "GET http://h:1/x: unexpected status code 409: exists"
	if err.Error() != expected {
		t.Errorf("expected %q but got %q", expected, err.Error())
	}

	err.Reason = ""
	expected = "GET http://h:1/x: unexpected status code 409"
	if err.Error() != expected {
		t.Errorf("expected %q but got %q", expected, err.Error())
	}

	if !IsConflict(err) {
		t.Errorf("expected 409 to be a conflict")
	}
}

func TestUnmarshalBodyJSON(t *testing.T) {
	var names []string
	if err := UnmarshalBodyJSON("/x", []byte(`["a","b"]`), &names); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected result %v", names)
	}

	for _, body := range []string{`{"a":1}`, `["a",`, `<html></html>`, `[1,2]`} {
		err := UnmarshalBodyJSON("/x", []byte(body), &names)
		if !IsDecodeError(err) {
			t.Errorf("expected decode error for %q but got %v", body, err)
		}
		if IsRequestError(err) {
			t.Errorf("expected decode error for %q not to be a request error", body)
		}
	}
}
