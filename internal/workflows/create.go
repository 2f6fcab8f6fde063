package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/editor"
	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// CreateTemplate is the document the create editor session starts from.
const CreateTemplate = `---
parameters:
  /this/is/one:
    value: foo
    type: String
  /this/is/another:
    value: bar
    type: SecureString
  /different:
    value: baz
    type: SecureString
`

// CreateOptions configures the create workflow.
type CreateOptions struct {
	Mode OperationMode
}

// CreateResult contains the outcome of a create.
type CreateResult struct {
	Parameters *parameters.Collection
	Written    []string
	DryRun     bool
}

// Create writes the parameters the user authors in an editor. Keys that
// already exist are not overwritten.
//
// Returns ErrEditAborted if the template is saved unchanged.
func Create(ctx context.Context, svc Services, opts CreateOptions) (*CreateResult, error) {
	if svc.Editor == nil {
		return nil, errNoEditor
	}

	created, err := editor.Session(ctx, svc.Editor, CreateTemplate, parseNewParameters)
	if err != nil {
		return nil, err
	}

	written, err := replay(ctx, svc.Store, created.Parameters(), false, opts.Mode)
	recordAudit(opts.Mode, audit.LogWithUser("create"), written, err)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Parameters: created,
		Written:    written,
		DryRun:     opts.Mode == ReadOnly,
	}, nil
}

// parseNewParameters accepts a document with at least one parameter whose
// keys are all well-formed paths.
func parseNewParameters(text string) (*parameters.Collection, error) {
	collection, err := codec.Deserialize(text)
	if err != nil {
		return nil, err
	}
	if collection.Len() == 0 {
		return nil, fmt.Errorf("%w: document defines no parameters", kerrors.ErrFormat)
	}
	for _, key := range collection.Keys() {
		if err := parameters.ValidateKey(key); err != nil {
			return nil, err
		}
	}
	return collection, nil
}
