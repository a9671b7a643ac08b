// Package resolver maps asset paths to the GUIDs stored in their .meta
// sidecar files.
//
// The meta file is decoded as YAML and only the top-level "guid" field is
// consulted. Any other content of the file (importer settings, labels,
// version fields) is ignored.
package resolver
