package store

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// RawParameter is a parameter as the store returns it, before its type
// name has been checked.
type RawParameter struct {
	Name  string
	Value string
	Type  string
}

// Gateway is the remote parameter store.
type Gateway interface {
	// GetByPrefix returns every parameter under prefix, following
	// pagination until the store reports no more pages.
	GetByPrefix(ctx context.Context, prefix string, withDecryption, recursive bool) ([]RawParameter, error)

	// Put writes a single parameter. With overwrite disabled, writing to an
	// existing name fails with ErrParameterExists.
	Put(ctx context.Context, name, value string, paramType parameters.Type, overwrite bool) error
}

// Fetch reads the decrypted parameters under prefix into a collection.
func Fetch(ctx context.Context, gw Gateway, prefix string) (*parameters.Collection, error) {
	raw, err := gw.GetByPrefix(ctx, prefix, true, true)
	if err != nil {
		return nil, err
	}

	params := make(map[string]parameters.Parameter, len(raw))
	for _, p := range raw {
		paramType, err := parameters.ParseType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", prefix, &kerrors.KeyError{Key: p.Name, Err: err})
		}
		params[p.Name] = parameters.Parameter{Value: p.Value, Type: paramType}
	}

	return parameters.NewCollection(prefix, params), nil
}
