package scanner

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/assetref/pkg/assetref"
)

// Selector restricts a pass to files of one kind.
type Selector struct {
	// Pattern is the selector as written by the caller, e.g. "*.prefab".
	Pattern string
	// Ext is the lower-cased extension including the dot, e.g. ".prefab".
	Ext string
	// glob is set when Pattern constrains more than the extension, e.g. "Hero*.prefab".
	glob string
}

// ParseSelector accepts "*.prefab", ".prefab", "prefab" and name globs
// like "UI_*.prefab".
func ParseSelector(raw string) (Selector, error) {
	pattern := strings.TrimSpace(raw)
	if pattern == "" {
		return Selector{}, fmt.Errorf("%w: empty extension selector", assetref.ErrInvalidInput)
	}
	if strings.ContainsAny(pattern, `/\`) {
		return Selector{}, fmt.Errorf("%w: extension selector %q must not contain a path separator", assetref.ErrInvalidInput, raw)
	}

	lower := strings.ToLower(pattern)
	sel := Selector{Pattern: pattern}

	switch {
	case strings.HasPrefix(lower, "*.") && !strings.ContainsAny(lower[2:], "*?["):
		sel.Ext = lower[1:]
	case strings.HasPrefix(lower, ".") && !strings.ContainsAny(lower, "*?["):
		sel.Ext = lower
	case !strings.ContainsAny(lower, ".*?["):
		sel.Ext = "." + lower
	default:
		if _, err := path.Match(lower, ""); err != nil {
			return Selector{}, fmt.Errorf("%w: invalid selector %q: %w", assetref.ErrInvalidInput, raw, err)
		}
		sel.glob = lower
		sel.Ext = path.Ext(lower)
		if strings.ContainsAny(sel.Ext, "*?[") {
			sel.Ext = ""
		}
	}

	if sel.Ext == "." {
		return Selector{}, fmt.Errorf("%w: extension selector %q has no extension", assetref.ErrInvalidInput, raw)
	}
	return sel, nil
}

// ParseSelectors parses selectors in order, dropping blank entries.
func ParseSelectors(raw []string) ([]Selector, error) {
	selectors := make([]Selector, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		sel, err := ParseSelector(r)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}

// Matches reports whether a file base name falls under the selector.
// Comparison is case-insensitive.
func (s Selector) Matches(name string) bool {
	lower := strings.ToLower(name)
	if s.glob != "" {
		ok, _ := path.Match(s.glob, lower)
		return ok
	}
	return path.Ext(lower) == s.Ext
}

func (s Selector) String() string {
	return s.Pattern
}
