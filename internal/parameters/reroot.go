package parameters

import (
	"fmt"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// Reroot moves every key of source from its prefix to destination.
//
// The source prefix is replaced literally, so /preprod/a rerooted to
// /prod/eu becomes /prod/eu/a. The prefix must end on a segment boundary:
// /preprodX/a is not under /preprod and is rejected. Any key that does not sit under the source
// prefix fails the whole operation; no partial collection is returned.
func Reroot(source *Collection, destination string) (*Collection, error) {
	if err := ValidatePrefix(destination); err != nil {
		return nil, err
	}

	rerooted := make(map[string]Parameter, len(source.params))
	for key, param := range source.params {
		if !underPrefix(key, source.prefix) {
			return nil, fmt.Errorf("rerooting from %q: %w", source.prefix,
				&kerrors.KeyError{Key: key, Err: kerrors.ErrPrefixMismatch})
		}
		rerooted[destination+key[len(source.prefix):]] = param
	}

	return &Collection{prefix: destination, params: rerooted}, nil
}
