// Package workflows implements the keez commands on top of the core
// packages.
//
// Each workflow fetches from a store.Gateway, transforms the parameters in
// memory, and replays the result back to the gateway. The cmd package stays
// a thin layer that parses flags, builds the Services, and formats results.
//
// # Available Workflows
//
//   - Copy: reroots everything under one prefix to another
//   - Create: writes new parameters authored in an editor
//   - Edit: edits existing parameters and writes back only the changes
//   - Export: seals the parameters under a prefix into a local file
//   - Import: opens an export and writes it under a new prefix
//   - Log: reads the audit log
//
// # Read-only Mode
//
// With ReadOnly every workflow still fetches, validates, serializes and
// seals, so a dry run fails exactly where a real run would. Only remote
// writes, the export file, and the audit record are suppressed.
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors.
// A write that stops part way returns a *ReplayError naming the failed
// key and the keys already written:
//
//	result, err := workflows.Copy(ctx, svc, opts)
//	var replayErr *workflows.ReplayError
//	if errors.As(err, &replayErr) {
//	    // replayErr.Applied were written before replayErr.Key failed
//	}
package workflows
