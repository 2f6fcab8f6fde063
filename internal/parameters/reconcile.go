package parameters

import (
	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// Diff returns the parameters of edited whose type or value differ from old.
//
// Every key of edited must already exist in old: a new key is almost always
// a typo, so it fails the whole diff with ErrNonexistentKey before anything
// is returned. When several keys are new, the lexically first is reported.
// Keys missing from edited are ignored, not deleted.
func Diff(old, edited *Collection) (map[string]Parameter, error) {
	for _, key := range sortedKeys(edited.params) {
		if _, ok := old.params[key]; !ok {
			return nil, &kerrors.KeyError{Key: key, Err: kerrors.ErrNonexistentKey}
		}
	}

	changes := make(map[string]Parameter)
	for key, param := range edited.params {
		if !param.Equal(old.params[key]) {
			changes[key] = param
		}
	}
	return changes, nil
}

// ChangedKeys returns the keys of a diff in lexical order.
func ChangedKeys(changes map[string]Parameter) []string {
	return sortedKeys(changes)
}
