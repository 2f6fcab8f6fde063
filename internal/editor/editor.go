package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

// DefaultEditor is used when neither the config file nor $EDITOR names one.
const DefaultEditor = "vim"

// Editor lets a user change a block of text.
type Editor interface {
	Edit(ctx context.Context, text string) (string, error)
}

// Func adapts a plain function to the Editor interface.
type Func func(ctx context.Context, text string) (string, error)

// Edit calls f.
func (f Func) Edit(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Command edits text by running an external program on a temporary file.
type Command struct {
	// Name is the program to run.
	Name string
	// Args are passed before the file path, e.g. "--wait" for VS Code.
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve picks the editor command: configured, then $EDITOR, then vim.
// The returned bool reports whether the default was used.
func Resolve(configured string) (*Command, bool) {
	line := strings.TrimSpace(configured)
	if line == "" {
		line = strings.TrimSpace(os.Getenv("EDITOR"))
	}

	usedDefault := false
	if line == "" {
		line = DefaultEditor
		usedDefault = true
	}

	fields := strings.Fields(line)
	return &Command{
		Name:   fields[0],
		Args:   fields[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, usedDefault
}

// Edit writes text to a temporary YAML file, waits for the editor to exit,
// and returns the file's new contents. The file is removed afterwards.
func (c *Command) Edit(ctx context.Context, text string) (string, error) {
	file, err := os.CreateTemp("", "keez-*.yaml")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return "", fmt.Errorf("writing temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing temporary file: %w", err)
	}

	args := append(append([]string{}, c.Args...), path)
	// #nosec G204 -- the editor is chosen by the user running keez.
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", kerrors.ErrEditorFailed, c.Name, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(edited), nil
}
