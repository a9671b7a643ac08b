// Package matcher holds the strategies that decide whether a file's content
// references a target GUID.
//
// Containment is a literal substring test over the raw bytes and applies to
// every file type. SpriteRenderer interprets prefab and scene files as an
// object graph and only accepts references made through a SpriteRenderer's
// sprite field. Registry picks the strategy from the file extension and the
// deep-filter flag, and accepts further structural matchers via Register.
package matcher
