// Package parameters holds the in-memory model of Parameter Store entries
// and the pure operations keez performs on it.
//
// # Model
//
// A Collection is a set of keyed Parameters under a common prefix. It is
// never mutated after construction; every transformation returns a new
// Collection. Type is a closed set of tags (String, SecureString,
// StringList) and ParseType is the only way to obtain one from text.
//
// # Operations
//
//   - ValidatePrefix: structural rules for destination prefixes
//   - Reroot: rewrite every key from one prefix to another
//   - Diff: minimal set of changes between an original and an edited copy
//
// None of these perform I/O, so callers validate everything before the
// first remote write.
package parameters
