// Package audit records every operation that wrote to the parameter store
// or to an export file.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) next to
// the user config:
//
//	$XDG_CONFIG_HOME/keez/audit.jsonl
//
// Each entry contains the timestamp, a run ID, the OS user, the operation,
// and operation-specific details (prefixes, keys written, export file).
// Parameter values are never logged.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails the operation continues.
// Nothing is logged in dry-run mode.
package audit
