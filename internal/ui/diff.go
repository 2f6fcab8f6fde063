package ui

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// UnifiedDiff renders the line changes between two documents in unified
// diff format. Identical documents produce an empty string.
func UnifiedDiff(name, before, after string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	unified := gotextdiff.ToUnified(name+" (stored)", name+" (edited)", before, edits)
	return fmt.Sprint(unified)
}

// ColorDiff colors added and removed lines of a unified diff.
func ColorDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var out strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			out.WriteString(line)
		case strings.HasPrefix(line, "+"):
			out.WriteString(Success.Sprint(strings.TrimSuffix(line, "\n")) + newlineOf(line))
		case strings.HasPrefix(line, "-"):
			out.WriteString(Error.Sprint(strings.TrimSuffix(line, "\n")) + newlineOf(line))
		case strings.HasPrefix(line, "@@"):
			out.WriteString(Info.Sprint(strings.TrimSuffix(line, "\n")) + newlineOf(line))
		default:
			out.WriteString(line)
		}
	}
	return out.String()
}

func newlineOf(line string) string {
	if strings.HasSuffix(line, "\n") {
		return "\n"
	}
	return ""
}
