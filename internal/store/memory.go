package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// MemoryGateway is an in-process Gateway. It mirrors Parameter Store's
// path semantics closely enough for offline runs and tests.
type MemoryGateway struct {
	mu     sync.Mutex
	params map[string]parameters.Parameter

	// Writes records every successful Put in order.
	Writes []string

	// FailOn makes Put fail for the named keys.
	FailOn map[string]error
}

// NewMemoryGateway returns a gateway seeded with params.
func NewMemoryGateway(params map[string]parameters.Parameter) *MemoryGateway {
	seeded := make(map[string]parameters.Parameter, len(params))
	for key, param := range params {
		seeded[key] = param
	}
	return &MemoryGateway{params: seeded}
}

// GetByPrefix implements Gateway. Non-recursive reads return only direct
// children of prefix.
func (m *MemoryGateway) GetByPrefix(_ context.Context, prefix string, _ bool, recursive bool) ([]RawParameter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	base := strings.TrimSuffix(prefix, "/") + "/"

	var out []RawParameter
	for name, param := range m.params {
		if !strings.HasPrefix(name, base) {
			continue
		}
		if !recursive && strings.Contains(name[len(base):], "/") {
			continue
		}
		out = append(out, RawParameter{Name: name, Value: param.Value, Type: param.Type.String()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Put implements Gateway.
func (m *MemoryGateway) Put(_ context.Context, name, value string, paramType parameters.Type, overwrite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailOn[name]; ok {
		return &kerrors.KeyError{Key: name, Err: fmt.Errorf("%w: %v", kerrors.ErrGateway, err)}
	}
	if _, exists := m.params[name]; exists && !overwrite {
		return &kerrors.KeyError{Key: name, Err: fmt.Errorf("%w: %w", kerrors.ErrGateway, kerrors.ErrParameterExists)}
	}

	m.params[name] = parameters.Parameter{Value: value, Type: paramType}
	m.Writes = append(m.Writes, name)
	return nil
}

// Get returns the stored parameter for name.
func (m *MemoryGateway) Get(name string) (parameters.Parameter, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	param, ok := m.params[name]
	return param, ok
}
