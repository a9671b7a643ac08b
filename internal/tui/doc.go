// Package tui renders the live progress of a reference search in the
// terminal. It is only used when DetectMode reports an interactive session;
// otherwise the CLI logs progress as plain lines.
package tui
