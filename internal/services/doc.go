// Package services wires the resolver and the reference scanner into the
// search entry point used by the CLI.
package services
