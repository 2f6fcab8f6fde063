package parameters

import (
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"String", PlainText},
		{"SecureString", Encrypted},
		{"StringList", List},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			if err != nil {
				t.Fatalf("ParseType(%q) returned error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.name)
			}
		})
	}
}

func TestParseTypeRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "string", "Secure", "Integer"} {
		if _, err := ParseType(name); !errors.Is(err, kerrors.ErrInvalidParameterType) {
			t.Errorf("ParseType(%q) error = %v, want ErrInvalidParameterType", name, err)
		}
	}
}

func TestZeroTypeIsInvalid(t *testing.T) {
	var zero Type
	if zero.Valid() {
		t.Error("zero Type should not be valid")
	}
	if !List.Valid() {
		t.Error("List should be valid")
	}
}

func TestNewCollectionCopiesInput(t *testing.T) {
	input := map[string]Parameter{"/app/a": {Value: "1", Type: PlainText}}
	c := NewCollection("/app", input)

	input["/app/a"] = Parameter{Value: "changed", Type: PlainText}
	input["/app/b"] = Parameter{Value: "2", Type: PlainText}

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if got, _ := c.Get("/app/a"); got.Value != "1" {
		t.Errorf("Get(/app/a).Value = %q, want %q", got.Value, "1")
	}

	out := c.Parameters()
	out["/app/a"] = Parameter{Value: "mutated", Type: List}
	if got, _ := c.Get("/app/a"); got.Value != "1" {
		t.Errorf("collection changed through Parameters() copy: %q", got.Value)
	}
}

func TestKeysAreSorted(t *testing.T) {
	c := NewCollection("", map[string]Parameter{
		"/c": {Value: "3", Type: PlainText},
		"/a": {Value: "1", Type: PlainText},
		"/b": {Value: "2", Type: PlainText},
	})

	keys := c.Keys()
	want := []string{"/a", "/b", "/c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}
