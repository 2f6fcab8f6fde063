package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/keez/internal/parameters"
	"github.com/PolarWolf314/keez/internal/store"
)

// ReplayError reports a write that stopped part way. Keys in Applied were
// written before Key failed; nothing is rolled back.
type ReplayError struct {
	Key     string
	Applied []string
	Err     error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("writing %s (after %d successful writes): %v", e.Key, len(e.Applied), e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// replay writes params to the gateway one key at a time in sorted order and
// returns the keys it wrote. In ReadOnly mode it returns the keys it would
// have written without calling the gateway.
func replay(ctx context.Context, gw store.Gateway, params map[string]parameters.Parameter, overwrite bool, mode OperationMode) ([]string, error) {
	keys := parameters.ChangedKeys(params)
	if mode == ReadOnly {
		return keys, nil
	}

	applied := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return applied, &ReplayError{Key: key, Applied: applied, Err: err}
		}
		param := params[key]
		if err := gw.Put(ctx, key, param.Value, param.Type, overwrite); err != nil {
			return applied, &ReplayError{Key: key, Applied: applied, Err: err}
		}
		applied = append(applied, key)
	}
	return applied, nil
}
