package parameters

import (
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

func TestDiffReturnsChangedValue(t *testing.T) {
	old := NewCollection("", map[string]Parameter{"/k": {Value: "v1", Type: PlainText}})
	edited := NewCollection("", map[string]Parameter{"/k": {Value: "v2", Type: PlainText}})

	changes, err := Diff(old, edited)
	if err != nil {
		t.Fatalf("Diff() returned error: %v", err)
	}
	if len(changes) != 1 || changes["/k"] != (Parameter{Value: "v2", Type: PlainText}) {
		t.Errorf("Diff() = %v, want only /k -> v2", changes)
	}
}

func TestDiffIsMinimal(t *testing.T) {
	old := NewCollection("/app", map[string]Parameter{
		"/app/same":      {Value: "a", Type: PlainText},
		"/app/value":     {Value: "b", Type: PlainText},
		"/app/type":      {Value: "c", Type: PlainText},
		"/app/both":      {Value: "d", Type: List},
		"/app/untouched": {Value: "e", Type: Encrypted},
	})
	edited := NewCollection("/app", map[string]Parameter{
		"/app/same":      {Value: "a", Type: PlainText},
		"/app/value":     {Value: "B", Type: PlainText},
		"/app/type":      {Value: "c", Type: Encrypted},
		"/app/both":      {Value: "D", Type: PlainText},
		"/app/untouched": {Value: "e", Type: Encrypted},
	})

	changes, err := Diff(old, edited)
	if err != nil {
		t.Fatalf("Diff() returned error: %v", err)
	}

	got := ChangedKeys(changes)
	want := []string{"/app/both", "/app/type", "/app/value"}
	if len(got) != len(want) {
		t.Fatalf("ChangedKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ChangedKeys() = %v, want %v", got, want)
		}
	}
	if changes["/app/type"].Type != Encrypted {
		t.Errorf("changed type not carried: %+v", changes["/app/type"])
	}
}

func TestDiffRejectsNewKeys(t *testing.T) {
	old := NewCollection("", map[string]Parameter{"/k": {Value: "v", Type: PlainText}})
	edited := NewCollection("", map[string]Parameter{
		"/k":   {Value: "changed", Type: PlainText},
		"/new": {Value: "x", Type: PlainText},
	})

	changes, err := Diff(old, edited)
	if !errors.Is(err, kerrors.ErrNonexistentKey) {
		t.Fatalf("Diff() error = %v, want ErrNonexistentKey", err)
	}
	if changes != nil {
		t.Errorf("Diff() returned partial changes %v alongside an error", changes)
	}
	if key, _ := kerrors.KeyOf(err); key != "/new" {
		t.Errorf("error identifies %q, want /new", key)
	}
}

func TestDiffReportsFirstNewKey(t *testing.T) {
	old := NewCollection("", map[string]Parameter{"/k": {Value: "v", Type: PlainText}})
	edited := NewCollection("", map[string]Parameter{
		"/k":     {Value: "v", Type: PlainText},
		"/zebra": {Value: "z", Type: PlainText},
		"/mango": {Value: "m", Type: PlainText},
		"/apple": {Value: "a", Type: PlainText},
		"/kiwi":  {Value: "k", Type: PlainText},
	})

	for i := 0; i < 20; i++ {
		_, err := Diff(old, edited)
		if key, _ := kerrors.KeyOf(err); key != "/apple" {
			t.Fatalf("Diff() identified %q on attempt %d, want /apple", key, i)
		}
	}
}

func TestDiffIgnoresRemovedKeys(t *testing.T) {
	old := NewCollection("", map[string]Parameter{
		"/keep":   {Value: "1", Type: PlainText},
		"/remove": {Value: "2", Type: PlainText},
	})
	edited := NewCollection("", map[string]Parameter{"/keep": {Value: "1", Type: PlainText}})

	changes, err := Diff(old, edited)
	if err != nil {
		t.Fatalf("Diff() returned error: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("Diff() = %v, want no changes", changes)
	}
}
