package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/codec"
	"github.com/PolarWolf314/keez/internal/parameters"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Destination replaces the exported prefix in every imported key.
	Destination string

	// Filename is a file written by Export.
	Filename string

	// Edit opens the rerooted parameters in an editor before writing.
	Edit bool

	Mode OperationMode
}

// ImportResult contains the outcome of an import.
type ImportResult struct {
	// SourcePrefix is the prefix the file was exported from.
	SourcePrefix string

	Parameters *parameters.Collection
	Written    []string
	DryRun     bool
}

// Import opens an export, reroots it under Destination and writes it.
// Existing keys are never overwritten.
//
// Returns ErrCrypto if the file was tampered with or sealed under another key.
// Returns ErrFormat if the decrypted document is malformed.
// Returns ErrPrefixMismatch if an exported key sits outside the exported prefix.
func Import(ctx context.Context, svc Services, opts ImportOptions) (*ImportResult, error) {
	if opts.Filename == "" {
		return nil, errors.New("import filename is required")
	}
	if svc.Sealer == nil {
		return nil, errNoSealer
	}
	if err := parameters.ValidatePrefix(opts.Destination); err != nil {
		return nil, err
	}

	sealed, err := os.ReadFile(opts.Filename)
	if err != nil {
		return nil, fmt.Errorf("reading export file %s: %w", opts.Filename, err)
	}

	plaintext, err := svc.Sealer.Open(sealed)
	if err != nil {
		return nil, err
	}

	exported, err := codec.Deserialize(plaintext)
	if err != nil {
		return nil, err
	}

	rerooted, err := parameters.Reroot(exported, opts.Destination)
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

	entry := audit.LogWithUser("import")
	entry.Source = exported.Prefix()
	entry.Destination = opts.Destination
	entry.FilePath = opts.Filename
	recordAudit(opts.Mode, entry, written, err)

	if err != nil {
		return nil, err
	}

	return &ImportResult{
		SourcePrefix: exported.Prefix(),
		Parameters:   rerooted,
		Written:      written,
		DryRun:       opts.Mode == ReadOnly,
	}, nil
}
