// Package report renders search results as the plain-text report file and
// as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/assetref/pkg/assetref"
)

// Document is the JSON shape of a search report.
type Document struct {
	Asset      string   `json:"asset"`
	GUID       string   `json:"guid"`
	Count      int      `json:"count"`
	References []string `json:"references"`
}

// NewDocument builds the JSON document for a search.
func NewDocument(identity assetref.AssetIdentity, results assetref.MatchResult) Document {
	refs := []string(results)
	if refs == nil {
		refs = []string{}
	}
	return Document{
		Asset:      identity.Path,
		GUID:       identity.GUID,
		Count:      len(refs),
		References: refs,
	}
}

// Format renders the plain-text report.
func Format(identity assetref.AssetIdentity, results assetref.MatchResult) string {
	if results.Count() == 0 {
		return fmt.Sprintf("Could not find any references to: %s\n", identity.Path)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d file(s) referencing `%s`:\n", results.Count(), identity.Path)
	for _, p := range results {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write stores the plain-text report at path, creating parent directories.
func Write(path string, identity assetref.AssetIdentity, results assetref.MatchResult) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("report path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(Format(identity, results)), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, identity assetref.AssetIdentity, results assetref.MatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(identity, results)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
