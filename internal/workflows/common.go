package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/editor"
	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
	"github.com/PolarWolf314/keez/internal/store"
)

var errNoEditor = errors.New("no editor configured")

// fetchNonEmpty reads the parameters under prefix and fails with
// ErrNoParameters when there are none.
func fetchNonEmpty(ctx context.Context, gw store.Gateway, prefix string) (*parameters.Collection, error) {
	if err := parameters.ValidatePrefix(prefix); err != nil {
		return nil, err
	}

	collection, err := store.Fetch(ctx, gw, prefix)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", prefix, err)
	}
	if collection.Len() == 0 {
		return nil, fmt.Errorf("%w under %s", kerrors.ErrNoParameters, prefix)
	}
	return collection, nil
}

// editSubset lets the user adjust values and types of a collection before
// it is written. Keys may be dropped but not added.
func editSubset(ctx context.Context, ed editor.Editor, original *parameters.Collection) (*parameters.Collection, error) {
	if ed == nil {
		return nil, errNoEditor
	}

	text, err := codec.Serialize(original)
	if err != nil {
		return nil, err
	}

	return editor.Session(ctx, ed, text, func(edited string) (*parameters.Collection, error) {
		collection, err := codec.Deserialize(edited)
		if err != nil {
			return nil, err
		}
		if _, err := parameters.Diff(original, collection); err != nil {
			return nil, err
		}
		return parameters.NewCollection(original.Prefix(), collection.Parameters()), nil
	})
}

// recordAudit logs a write. Nothing is recorded in ReadOnly mode or when
// no write was attempted.
func recordAudit(mode OperationMode, entry audit.Entry, applied []string, err error) {
	if mode == ReadOnly {
		return
	}

	var replayErr *ReplayError
	if errors.As(err, &replayErr) {
		entry.FailedKey = replayErr.Key
	} else if len(applied) == 0 {
		return
	}

	entry.Keys = applied
	audit.Log(entry)
}
