// Package editor runs the interactive edit sessions behind create, edit,
// and the --edit flags of copy and import.
//
// Command spawns the user's editor ($EDITOR, or the editor set in the keez
// config, falling back to vim) on a temporary YAML file. Session wraps any
// Editor in a loop: a document that fails to parse is reopened with the
// error prepended as comments, and closing the editor without changing the
// text aborts the operation.
package editor
