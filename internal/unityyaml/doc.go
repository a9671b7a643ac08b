// Package unityyaml reads the text serialization used by prefab and scene
// files into a generic object graph.
//
// A file is a stream of YAML documents, each introduced by a header of the
// form "--- !u!<classID> &<fileID>" (optionally followed by "stripped").
// The headers use a tag handle that is only declared once at the top of the
// file, which standard YAML decoders reject for every document after the
// first, so headers are parsed here and only the bodies are handed to yaml.v3.
//
// Bodies stay as yaml.Node trees; callers look fields up by name and decode
// references with Object.Ref and Object.RefList. No typed schema is applied.
package unityyaml
