package workflows

import (
	"context"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/editor"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// EditOptions configures the edit workflow.
type EditOptions struct {
	// Prefix selects the parameters to edit.
	Prefix string

	Mode OperationMode
}

// EditResult contains the outcome of an edit.
type EditResult struct {
	// Fetched is the number of parameters opened in the editor.
	Fetched int

	// Changes are the parameters whose value or type was edited.
	Changes map[string]parameters.Parameter

	// Written lists the changed keys in write order.
	Written []string

	// Before and After are the document as opened and as saved, for
	// rendering a diff.
	Before string
	After  string

	DryRun bool
}

// Edit opens the parameters under Prefix in an editor and writes back only
// the ones that changed, overwriting them in place. Keys deleted from the
// document are left untouched in the store.
//
// Returns ErrNoParameters if nothing exists under Prefix.
// Returns ErrEditAborted if the document is saved unchanged.
// Returns ErrNonexistentKey (via the editor session) for added keys.
func Edit(ctx context.Context, svc Services, opts EditOptions) (*EditResult, error) {
	if svc.Editor == nil {
		return nil, errNoEditor
	}

	original, err := fetchNonEmpty(ctx, svc.Store, opts.Prefix)
	if err != nil {
		return nil, err
	}

	before, err := codec.Serialize(original)
	if err != nil {
		return nil, err
	}

	var after string
	changes, err := editor.Session(ctx, svc.Editor, before, func(text string) (map[string]parameters.Parameter, error) {
		edited, err := codec.Deserialize(text)
		if err != nil {
			return nil, err
		}
		after = text
		return parameters.Diff(original, edited)
	})
	if err != nil {
		return nil, err
	}

	result := &EditResult{
		Fetched: original.Len(),
		Changes: changes,
		Before:  before,
		After:   after,
		DryRun:  opts.Mode == ReadOnly,
	}
	if len(changes) == 0 {
		return result, nil
	}

	written, err := replay(ctx, svc.Store, changes, true, opts.Mode)

	entry := audit.LogWithUser("edit")
	entry.Prefix = opts.Prefix
	recordAudit(opts.Mode, entry, written, err)

	if err != nil {
		return nil, err
	}

	result.Written = written
	return result, nil
}
