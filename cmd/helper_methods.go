package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/keez/internal/editor"
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. The returned cleanup prints spinner.FinalMSG,
// which does not need a trailing newline.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// The AWS SDK and keyring backends log through the standard logger.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Printed to stdout for tests to capture.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// spinnerPausingEditor stops the spinner while the user is in their editor
// so it doesn't draw over the terminal.
type spinnerPausingEditor struct {
	next    editor.Editor
	spinner *spinner.Spinner
}

func pauseSpinnerWhileEditing(s *spinner.Spinner, ed editor.Editor) editor.Editor {
	if ed == nil {
		return nil
	}
	return &spinnerPausingEditor{next: ed, spinner: s}
}

func (p *spinnerPausingEditor) Edit(ctx context.Context, text string) (string, error) {
	if p.spinner.Active() {
		p.spinner.Stop()
		defer p.spinner.Start()
	}
	Logger.Debugf("Opening editor with document:\n%s", text)
	return p.next.Edit(ctx, text)
}

// formatKeys renders keys as an indented list, one per line.
func formatKeys(keys []string) string {
	var b strings.Builder
	for _, key := range keys {
		b.WriteString("  - " + ui.Path.Sprint(key) + "\n")
	}
	return b.String()
}

func plural(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
