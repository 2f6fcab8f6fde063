package ui

import (
	"os"
	"strings"
	"testing"
)

func TestUnifiedDiff(t *testing.T) {
	before := "parameters:\n  /app/a:\n    value: one\n    type: String\n"
	after := "parameters:\n  /app/a:\n    value: two\n    type: String\n"

	diff := UnifiedDiff("/app", before, after)

	if !strings.Contains(diff, "-    value: one") {
		t.Errorf("Expected removed line in diff, got:\n%s", diff)
	}
	if !strings.Contains(diff, "+    value: two") {
		t.Errorf("Expected added line in diff, got:\n%s", diff)
	}
	if strings.Contains(diff, "-    type: String") {
		t.Errorf("Unchanged line should not be marked removed, got:\n%s", diff)
	}
}

func TestUnifiedDiffIdentical(t *testing.T) {
	if diff := UnifiedDiff("/app", "same\n", "same\n"); diff != "" {
		t.Errorf("Expected empty diff for identical input, got %q", diff)
	}
}

func TestColorDiffWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	diff := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n"
	if got := ColorDiff(diff); got != diff {
		t.Errorf("ColorDiff() without color = %q, want %q", got, diff)
	}
}
