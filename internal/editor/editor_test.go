package editor

import (
	"context"
	"errors"
	"runtime"
	"testing"

	kerrors "github.com/PolarWolf314/keez/internal/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell as the editor")
	}
}

func TestCommandEditReturnsFileContents(t *testing.T) {
	skipOnWindows(t)

	// sh receives the temp file path as $0.
	cmd := &Command{Name: "sh", Args: []string{"-c", `printf 'edited\n' > "$0"`}}

	got, err := cmd.Edit(context.Background(), "original\n")
	if err != nil {
		t.Fatalf("Edit() returned error: %v", err)
	}
	if got != "edited\n" {
		t.Errorf("Edit() = %q, want %q", got, "edited\n")
	}
}

func TestCommandEditSeesInitialText(t *testing.T) {
	skipOnWindows(t)

	cmd := &Command{Name: "sh", Args: []string{"-c", `grep -q '^original$' "$0" && printf 'seen\n' >> "$0"`}}

	got, err := cmd.Edit(context.Background(), "original\n")
	if err != nil {
		t.Fatalf("Edit() returned error: %v", err)
	}
	if got != "original\nseen\n" {
		t.Errorf("Edit() = %q", got)
	}
}

func TestCommandEditFailure(t *testing.T) {
	skipOnWindows(t)

	cmd := &Command{Name: "sh", Args: []string{"-c", "exit 3"}}

	if _, err := cmd.Edit(context.Background(), "x"); !errors.Is(err, kerrors.ErrEditorFailed) {
		t.Errorf("Edit() error = %v, want ErrEditorFailed", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		configured  string
		env         string
		wantName    string
		wantArgs    int
		wantDefault bool
	}{
		{"configured wins", "code --wait", "nano", "code", 1, false},
		{"falls back to EDITOR", "", "nano", "nano", 0, false},
		{"defaults to vim", "", "", DefaultEditor, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)

			cmd, usedDefault := Resolve(tt.configured)
			if cmd.Name != tt.wantName || len(cmd.Args) != tt.wantArgs || usedDefault != tt.wantDefault {
				t.Errorf("Resolve(%q) = %s %v (default=%t)", tt.configured, cmd.Name, cmd.Args, usedDefault)
			}
		})
	}
}
