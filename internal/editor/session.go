package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

const errorMarker = "# keez: "

// Session runs an editor until the text parses or the user gives up.
//
// When parsing fails the editor is reopened on the user's text with the
// parse error prepended as YAML comments. Saving without changes aborts
// with ErrEditAborted.
func Session[T any](ctx context.Context, ed Editor, initial string, parse func(string) (T, error)) (T, error) {
	var zero T
	text := initial

	for {
		edited, err := ed.Edit(ctx, text)
		if err != nil {
			return zero, err
		}
		if edited == text {
			return zero, kerrors.ErrEditAborted
		}

		value, err := parse(stripErrorComments(edited))
		if err == nil {
			return value, nil
		}
		if !retryable(err) {
			return zero, err
		}

		text = annotate(stripErrorComments(edited), err)
	}
}

// retryable reports whether a parse error is something the user can fix
// by editing again.
func retryable(err error) bool {
	return errors.Is(err, kerrors.ErrFormat) ||
		errors.Is(err, kerrors.ErrInvalidParameterType) ||
		errors.Is(err, kerrors.ErrInvalidPathPrefix) ||
		errors.Is(err, kerrors.ErrNonexistentKey)
}

func annotate(text string, err error) string {
	var b strings.Builder
	for _, line := range strings.Split(fmt.Sprintf("error: %v", err), "\n") {
		b.WriteString(errorMarker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(errorMarker + "fix the document and save, or quit without saving to abort\n")
	b.WriteString(text)
	return b.String()
}

func stripErrorComments(text string) string {
	lines := strings.SplitAfter(text, "\n")
	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], errorMarker) {
		i++
	}
	return strings.Join(lines[i:], "")
}
