package errors

import (
	"errors"
	"fmt"
)

// Validation errors are raised in memory, before any remote or file I/O.
var (
	// ErrInvalidParameterType indicates an unrecognized parameter type tag.
	ErrInvalidParameterType = errors.New("invalid parameter type")

	// ErrInvalidPathPrefix indicates a path prefix that fails the path rules.
	ErrInvalidPathPrefix = errors.New("invalid path prefix")

	// ErrNonexistentKey indicates an edited key that has no original counterpart.
	ErrNonexistentKey = errors.New("key does not exist in the original parameters")

	// ErrPrefixMismatch indicates a parameter key that does not sit under its collection's prefix.
	ErrPrefixMismatch = errors.New("key does not start with the collection prefix")

	// ErrFormat indicates the structured text could not be parsed.
	ErrFormat = errors.New("malformed parameter document")

	// ErrNoParameters indicates a prefix selected no parameters.
	ErrNoParameters = errors.New("no parameters found")
)

// Remote store errors.
var (
	// ErrGateway indicates a failed read or write against the remote store.
	ErrGateway = errors.New("parameter store request failed")

	// ErrParameterExists indicates a write with overwriting disabled hit an existing key.
	ErrParameterExists = errors.New("parameter already exists")
)

// Cryptographic errors indicate failures while sealing or opening an export.
var (
	// ErrCrypto indicates an encryption, decryption, or key-derivation failure.
	ErrCrypto = errors.New("export encryption failed")

	// ErrSecret indicates the secret provider could not supply the export key.
	ErrSecret = errors.New("secret key unavailable")
)

// Editor errors indicate the interactive session did not produce a document.
var (
	// ErrEditAborted indicates the user closed the editor without changing anything.
	ErrEditAborted = errors.New("edit aborted: no changes were made")

	// ErrEditorFailed indicates the editor process exited unsuccessfully.
	ErrEditorFailed = errors.New("editor exited with an error")
)

// ErrInvalidDateFormat indicates a log filter date that is not YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format")

// KeyError ties a failure to the parameter key that caused it.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// KeyOf returns the key carried by the first KeyError in err's chain.
func KeyOf(err error) (string, bool) {
	var keyErr *KeyError
	if errors.As(err, &keyErr) {
		return keyErr.Key, true
	}
	return "", false
}
