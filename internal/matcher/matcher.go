package matcher

import (
	"bytes"
	"strings"
	"sync"
)

// Matcher decides whether file content references a GUID.
// Implementations must be safe for concurrent use by multiple goroutines.
type Matcher interface {
	// Name identifies the strategy in logs.
	Name() string

	// Match reports whether content references guid. An error means the
	// content could not be interpreted; the file is skipped, not failed.
	Match(content []byte, guid string) (bool, error)
}

// Containment matches when the GUID occurs anywhere in the raw bytes.
// Occurrences in comments or unrelated fields count.
type Containment struct{}

func (Containment) Name() string { return "containment" }

func (Containment) Match(content []byte, guid string) (bool, error) {
	if guid == "" {
		return false, nil
	}
	return bytes.Contains(content, []byte(guid)), nil
}

// Registry selects the matcher for a file extension. Plain containment is
// used for every extension unless deep matching is requested and a
// structural matcher is registered for that extension.
type Registry struct {
	mu         sync.RWMutex
	plain      Matcher
	structural map[string]Matcher
}

// NewRegistry returns a registry with SpriteRenderer registered for
// prefab and scene files.
func NewRegistry() *Registry {
	r := &Registry{
		plain:      Containment{},
		structural: make(map[string]Matcher),
	}
	sprite := SpriteRenderer{}
	r.Register(".prefab", sprite)
	r.Register(".unity", sprite)
	return r
}

// Register sets the deep matcher for ext (".prefab" or "prefab").
func (r *Registry) Register(ext string, m Matcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.structural[normalizeExt(ext)] = m
}

// For returns the matcher to apply to files with extension ext.
func (r *Registry) For(ext string, deep bool) Matcher {
	if !deep {
		return r.plain
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.structural[normalizeExt(ext)]; ok {
		return m
	}
	return r.plain
}

// Structural reports whether a deep matcher is registered for ext.
func (r *Registry) Structural(ext string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.structural[normalizeExt(ext)]
	return ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
