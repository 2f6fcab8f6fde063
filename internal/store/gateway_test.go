package store

import (
	"context"
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

type rawGateway struct {
	MemoryGateway
	raw []RawParameter
}

func (r *rawGateway) GetByPrefix(context.Context, string, bool, bool) ([]RawParameter, error) {
	return r.raw, nil
}

func TestFetchBuildsCollection(t *testing.T) {
	gw := NewMemoryGateway(map[string]parameters.Parameter{
		"/app/a":        {Value: "1", Type: parameters.PlainText},
		"/app/nested/b": {Value: "2", Type: parameters.Encrypted},
		"/apple/c":      {Value: "3", Type: parameters.PlainText},
		"/other/d":      {Value: "4", Type: parameters.PlainText},
	})

	c, err := Fetch(context.Background(), gw, "/app")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if c.Prefix() != "/app" {
		t.Errorf("Prefix() = %q, want /app", c.Prefix())
	}

	want := []string{"/app/a", "/app/nested/b"}
	got := c.Keys()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestFetchRejectsUnknownType(t *testing.T) {
	gw := &rawGateway{raw: []RawParameter{{Name: "/app/a", Value: "1", Type: "Integer"}}}

	_, err := Fetch(context.Background(), gw, "/app")
	if !errors.Is(err, kerrors.ErrInvalidParameterType) {
		t.Errorf("Fetch() error = %v, want ErrInvalidParameterType", err)
	}
}

func TestMemoryGatewayOverwritePolicy(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(map[string]parameters.Parameter{"/a": {Value: "old", Type: parameters.PlainText}})

	err := gw.Put(ctx, "/a", "new", parameters.PlainText, false)
	if !errors.Is(err, kerrors.ErrParameterExists) {
		t.Fatalf("Put() without overwrite error = %v, want ErrParameterExists", err)
	}
	if p, _ := gw.Get("/a"); p.Value != "old" {
		t.Errorf("value changed despite failed Put: %q", p.Value)
	}

	if err := gw.Put(ctx, "/a", "new", parameters.PlainText, true); err != nil {
		t.Fatalf("Put() with overwrite returned error: %v", err)
	}
	if p, _ := gw.Get("/a"); p.Value != "new" {
		t.Errorf("value = %q, want new", p.Value)
	}
}

func TestMemoryGatewayNonRecursive(t *testing.T) {
	gw := NewMemoryGateway(map[string]parameters.Parameter{
		"/app/a":        {Value: "1", Type: parameters.PlainText},
		"/app/nested/b": {Value: "2", Type: parameters.PlainText},
	})

	got, _ := gw.GetByPrefix(context.Background(), "/app", true, false)
	if len(got) != 1 || got[0].Name != "/app/a" {
		t.Errorf("non-recursive GetByPrefix() = %+v, want only /app/a", got)
	}
}
