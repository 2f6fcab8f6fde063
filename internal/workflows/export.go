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

var errNoSealer = errors.New("no export key provider configured")

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// Source is the prefix to export.
	Source string

	// Filename is where the sealed export is written. An existing file is
	// replaced.
	Filename string

	// InsecureOutput returns the plaintext document in the result so the
	// caller can print it.
	InsecureOutput bool

	Mode OperationMode
}

// ExportResult contains the outcome of an export.
type ExportResult struct {
	Parameters *parameters.Collection
	Filename   string

	// Size is the length of the sealed file in bytes.
	Size int

	// Plaintext is the unencrypted document, set only with InsecureOutput.
	Plaintext string

	DryRun bool
}

// Export seals every parameter under Source into a local file that Import
// can later open, possibly in another account or region. The file is
// readable by its owner only.
//
// Returns ErrNoParameters if nothing exists under Source.
// Returns ErrSecret if the export key cannot be obtained.
func Export(ctx context.Context, svc Services, opts ExportOptions) (*ExportResult, error) {
	if opts.Filename == "" {
		return nil, errors.New("export filename is required")
	}
	if svc.Sealer == nil {
		return nil, errNoSealer
	}

	collection, err := fetchNonEmpty(ctx, svc.Store, opts.Source)
	if err != nil {
		return nil, err
	}

	plaintext, err := codec.Serialize(collection)
	if err != nil {
		return nil, err
	}

	sealed, err := svc.Sealer.Seal(plaintext)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Parameters: collection,
		Filename:   opts.Filename,
		Size:       len(sealed),
		DryRun:     opts.Mode == ReadOnly,
	}
	if opts.InsecureOutput {
		result.Plaintext = plaintext
	}

	if opts.Mode == ReadOnly {
		return result, nil
	}

	if err := writePrivateFile(opts.Filename, sealed); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("export")
	entry.Source = opts.Source
	entry.FilePath = opts.Filename
	entry.Keys = collection.Keys()
	audit.Log(entry)

	return result, nil
}

// writePrivateFile writes data with 0600 permissions, tightening the mode
// of a file that already exists.
func writePrivateFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export file %s: %w", path, err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return nil
}
