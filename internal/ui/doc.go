// Package ui provides semantic text formatting for keez output.
//
// Formatters render content by role (commands, paths, errors) and fall back
// to plain-text decorations when NO_COLOR is set or the terminal has no
// color support:
//
//	ui.Code.Sprint("keez edit /app")   // `keez edit /app`
//	ui.Path.Sprint("/prod/db/password") // no decoration
//	ui.Highlight.Sprint("/prod")       // '/prod'
//	ui.Muted.Sprint("dry run")         // (dry run)
//
// UnifiedDiff and ColorDiff render the changes made during an edit session.
package ui
