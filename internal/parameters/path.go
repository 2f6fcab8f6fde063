package parameters

import (
	"fmt"
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// leadingSegment matches a slash followed by a valid first segment character.
var leadingSegment = regexp.MustCompile(`^/[a-zA-Z0-9_.\-]`)

// PathError describes why a path failed validation.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path prefix %q: %s", e.Path, e.Reason)
}

// Is lets errors.Is match PathError against ErrInvalidPathPrefix.
func (e *PathError) Is(target error) bool {
	return target == kerrors.ErrInvalidPathPrefix
}

// ValidatePrefix checks a non-empty path prefix used as a migration target.
func ValidatePrefix(path string) error {
	if !leadingSegment.MatchString(path) {
		return &PathError{Path: path, Reason: "must begin with slash"}
	}
	if strings.HasSuffix(path, "/") {
		return &PathError{Path: path, Reason: "must not have a trailing slash"}
	}
	return nil
}

// ValidateKey applies the prefix rules to a full parameter key.
func ValidateKey(key string) error {
	if err := ValidatePrefix(key); err != nil {
		return &kerrors.KeyError{Key: key, Err: err}
	}
	return nil
}

// underPrefix reports whether key sits at or below prefix in the hierarchy.
// "/app" covers "/app" and "/app/x" but not "/apple".
func underPrefix(key, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(key, prefix) {
		return false
	}
	return len(key) == len(prefix) || key[len(prefix)] == '/'
}
