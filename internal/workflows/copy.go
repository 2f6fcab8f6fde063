package workflows

import (
	"context"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// CopyOptions configures the copy workflow.
type CopyOptions struct {
	// Source is the prefix to read from.
	Source string

	// Destination replaces Source in every copied key.
	Destination string

	// Edit opens the rerooted parameters in an editor before writing.
	Edit bool

	Mode OperationMode
}

// CopyResult contains the outcome of a copy.
type CopyResult struct {
	// Parameters are the rerooted parameters that were (or would be) written.
	Parameters *parameters.Collection

	// Written lists the keys written, in write order. In ReadOnly mode it
	// lists the keys that would have been written.
	Written []string

	DryRun bool
}

// Copy transplants every parameter under Source to the equivalent key
// under Destination. Existing destination keys are never overwritten: the
// first one hit stops the copy with a *ReplayError wrapping
// ErrParameterExists.
//
// Returns ErrInvalidPathPrefix if either prefix is malformed.
// Returns ErrNoParameters if nothing exists under Source.
func Copy(ctx context.Context, svc Services, opts CopyOptions) (*CopyResult, error) {
	if err := parameters.ValidatePrefix(opts.Destination); err != nil {
		return nil, err
	}

	source, err := fetchNonEmpty(ctx, svc.Store, opts.Source)
	if err != nil {
		return nil, err
	}

	rerooted, err := parameters.Reroot(source, opts.Destination)
	if err != nil {
		return nil, err
	}

	if opts.Edit {
		rerooted, err = editSubset(ctx, svc.Editor, rerooted)
		if err != nil {
			return nil, err
		}
	}

	written, err := replay(ctx, svc.Store, rerooted.Parameters(), false, opts.Mode)

	entry := audit.LogWithUser("copy")
	entry.Source = opts.Source
	entry.Destination = opts.Destination
	recordAudit(opts.Mode, entry, written, err)

	if err != nil {
		return nil, err
	}

	return &CopyResult{
		Parameters: rerooted,
		Written:    written,
		DryRun:     opts.Mode == ReadOnly,
	}, nil
}
