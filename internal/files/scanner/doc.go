// Package scanner provides reference discovery over a project tree.
//
// The scanner package is responsible for:
//   - Parsing extension selectors ("*.prefab", ".unity", "mat", "UI_*.prefab")
//   - Walking the tree once per selector and collecting candidate files
//   - Choosing a matcher per pass (plain containment or a structural matcher)
//   - Skipping unreadable files without aborting the scan
//   - Normalizing reported paths to forward slashes under the given root
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
