package cmd

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/briandowns/spinner"
)

// ErrReported marks an error whose message was already shown to the user.
// main exits non-zero without printing it again.
var ErrReported = errors.New("error already reported")

// fail shows err as the spinner's final message. An aborted edit is not a
// failure.
func fail(s *spinner.Spinner, err error) error {
	Logger.Errorf("%v", err)
	s.FinalMSG = formatError(err)
	if errors.Is(err, kerrors.ErrEditAborted) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// formatError turns a workflow error into a user-facing message.
func formatError(err error) string {
	var replayErr *workflows.ReplayError
	if errors.As(err, &replayErr) {
		msg := ui.Error.Sprint("✗") + " Failed to write " + ui.Path.Sprint(replayErr.Key) + ": " + replayErr.Err.Error() + "\n"
		if len(replayErr.Applied) > 0 {
			msg += ui.Warning.Sprint("⚠") + " These parameters were written before the failure and were not rolled back:\n" +
				formatKeys(replayErr.Applied)
		}
		if errors.Is(err, kerrors.ErrParameterExists) {
			msg += ui.Info.Sprint("→") + " copy, create and import never overwrite. Use " +
				ui.Code.Sprint("keez edit") + " to change existing parameters"
		}
		return strings.TrimSuffix(msg, "\n")
	}

	failed := ui.Error.Sprint("✗") + " " + err.Error()

	switch {
	case errors.Is(err, kerrors.ErrEditAborted):
		return ui.Warning.Sprint("⚠") + " Edit aborted: the document was saved unchanged, nothing was written"

	case errors.Is(err, kerrors.ErrInvalidPathPrefix):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Prefixes start with " + ui.Code.Sprint("/") + " and have no trailing slash, e.g. " + ui.Path.Sprint("/prod/app")

	case errors.Is(err, kerrors.ErrNoParameters):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Check the prefix and the AWS profile and region in " + ui.Code.Sprint("keez config show")

	case errors.Is(err, kerrors.ErrGateway):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Check your AWS credentials, or run " + ui.Code.Sprint("keez login")

	case errors.Is(err, kerrors.ErrCrypto):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Exports can only be opened with the export key in the keyring that sealed them"

	case errors.Is(err, kerrors.ErrSecret):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Choose a keyring backend with " + ui.Code.Sprint("keez config set keyring.backends file")

	case errors.Is(err, kerrors.ErrEditorFailed):
		return failed + "\n" +
			ui.Info.Sprint("→") + " Set your editor with " + ui.Code.Sprint("keez config set editor.command \"code --wait\"")

	default:
		return failed
	}
}
