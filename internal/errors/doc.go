// Package errors provides typed error values for keez.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Validation errors: ErrInvalidParameterType, ErrInvalidPathPrefix,
//     ErrNonexistentKey, ErrPrefixMismatch, ErrFormat, ErrNoParameters
//   - Remote store errors: ErrGateway, ErrParameterExists
//   - Crypto errors: ErrCrypto, ErrSecret
//   - Editor errors: ErrEditAborted, ErrEditorFailed
//
// Validation errors are always detected before any write happens. None of
// these conditions are transient, so nothing in keez retries on them.
//
// # Usage
//
// Errors that concern a specific parameter are wrapped in a KeyError:
//
//	return nil, &errors.KeyError{Key: key, Err: errors.ErrNonexistentKey}
//
// Handle errors in the CLI layer:
//
//	if key, ok := kerrors.KeyOf(err); ok {
//	    // Point the user at the offending key
//	}
package errors
