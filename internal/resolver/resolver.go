package resolver

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/assetref/internal/files/filesystem"
	"github.com/vvka-141/assetref/internal/logging"
	"github.com/vvka-141/assetref/pkg/assetref"
)

// metaFile is the part of a .meta sidecar the resolver cares about.
type metaFile struct {
	FileFormatVersion int    `yaml:"fileFormatVersion"`
	GUID              string `yaml:"guid"`
}

// MetaResolver resolves identities from .meta sidecar files.
type MetaResolver struct {
	fsProvider filesystem.FileSystemProvider
	logger     assetref.Logger
}

// NewResolver creates a resolver reading meta files through fsProvider.
// Panics if fsProvider is nil. A nil logger discards all output.
func NewResolver(fsProvider filesystem.FileSystemProvider, logger assetref.Logger) *MetaResolver {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &MetaResolver{fsProvider: fsProvider, logger: logger}
}

// Resolve implements assetref.Resolver.
func (r *MetaResolver) Resolve(handle *assetref.AssetHandle) (assetref.AssetIdentity, error) {
	assetPath, err := CanonicalPath(handle)
	if err != nil {
		return assetref.AssetIdentity{}, err
	}

	metaPath := assetPath + assetref.MetaFileSuffix
	content, err := r.fsProvider.ReadFile(metaPath)
	if err != nil {
		return assetref.AssetIdentity{}, fmt.Errorf("%w: cannot read %s: %w", assetref.ErrResolutionFailure, metaPath, err)
	}

	guid, err := parseMeta(content)
	if err != nil {
		return assetref.AssetIdentity{}, fmt.Errorf("%w: %s: %w", assetref.ErrResolutionFailure, metaPath, err)
	}

	r.checkFormat(guid)
	r.logger.Verbose("resolved %s -> %s", assetPath, guid)
	return assetref.AssetIdentity{Path: assetPath, GUID: guid}, nil
}

// ResolveGUID builds an identity from a GUID supplied directly by the
// caller. The path is informational and may be blank.
func (r *MetaResolver) ResolveGUID(assetPath, guid string) (assetref.AssetIdentity, error) {
	guid = strings.TrimSpace(guid)
	if guid == "" {
		return assetref.AssetIdentity{}, fmt.Errorf("%w: guid cannot be empty", assetref.ErrInvalidInput)
	}
	r.checkFormat(guid)

	if strings.TrimSpace(assetPath) == "" {
		assetPath = guid
	} else {
		assetPath = cleanPath(assetPath)
	}
	return assetref.AssetIdentity{Path: assetPath, GUID: guid}, nil
}

// CanonicalPath validates the handle and returns its path with forward
// slashes and without redundant elements.
func CanonicalPath(handle *assetref.AssetHandle) (string, error) {
	if handle == nil {
		return "", fmt.Errorf("%w: asset handle is nil", assetref.ErrInvalidInput)
	}
	if strings.TrimSpace(handle.Path) == "" {
		return "", fmt.Errorf("%w: asset path cannot be empty", assetref.ErrInvalidInput)
	}
	p := cleanPath(handle.Path)
	if p == "." || p == "/" {
		return "", fmt.Errorf("%w: %q does not name an asset", assetref.ErrInvalidInput, handle.Path)
	}
	return p, nil
}

func cleanPath(p string) string {
	return path.Clean(filepath.ToSlash(strings.TrimSpace(p)))
}

func parseMeta(content []byte) (string, error) {
	var meta metaFile
	if err := yaml.Unmarshal(content, &meta); err != nil {
		return "", fmt.Errorf("invalid meta file: %w", err)
	}
	guid := strings.TrimSpace(meta.GUID)
	if guid == "" {
		return "", fmt.Errorf("meta file has no guid")
	}
	return guid, nil
}

// checkFormat notes GUIDs that are not 32 hex digits. Such GUIDs are still
// searched for.
func (r *MetaResolver) checkFormat(guid string) {
	if len(guid) != 32 {
		r.logger.Verbose("guid %q is not in the canonical 32-digit form", guid)
		return
	}
	if _, err := uuid.Parse(guid); err != nil {
		r.logger.Verbose("guid %q is not hexadecimal: %v", guid, err)
	}
}

// Verify MetaResolver implements the interface at compile time
var _ assetref.Resolver = (*MetaResolver)(nil)
