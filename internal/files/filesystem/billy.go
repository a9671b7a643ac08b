package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// billyFile implements File over a go-billy filesystem.
type billyFile struct {
	bfs     billy.Filesystem
	absPath string
	relPath string
	info    fs.FileInfo
}

func (f *billyFile) Path() string         { return f.absPath }
func (f *billyFile) RelativePath() string { return f.relPath }
func (f *billyFile) Info() FileInfo       { return f.info }

func (f *billyFile) ReadContent() ([]byte, error) {
	data, err := util.ReadFile(f.bfs, f.absPath)
	if err != nil {
		return nil, fmt.Errorf("billy: read %q: %w", f.absPath, err)
	}
	return data, nil
}

type billyDirectory struct {
	bfs     billy.Filesystem
	absPath string
}

func (d *billyDirectory) Path() string { return d.absPath }

func (d *billyDirectory) Walk(fn func(File, error) error) error {
	return util.Walk(d.bfs, d.absPath, func(p string, info fs.FileInfo, walkErr error) error {
		rel, err := filepath.Rel(d.absPath, p)
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get relative path: %w", err))
		}

		var file File
		if info != nil {
			file = &billyFile{
				bfs:     d.bfs,
				absPath: p,
				relPath: filepath.ToSlash(rel),
				info:    info,
			}
		}
		return fn(file, walkErr)
	})
}

// BillyFileSystem adapts a go-billy filesystem to FileSystemProvider.
// Paths are interpreted relative to the billy filesystem's root.
type BillyFileSystem struct {
	bfs billy.Filesystem
}

// NewBillyFileSystem wraps bfs. Panics if bfs is nil.
func NewBillyFileSystem(bfs billy.Filesystem) *BillyFileSystem {
	if bfs == nil {
		panic("billy filesystem cannot be nil")
	}
	return &BillyFileSystem{bfs: bfs}
}

func (b *BillyFileSystem) clean(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	if p == "" {
		return "."
	}
	return p
}

func (b *BillyFileSystem) Open(dirPath string) (Directory, error) {
	p := b.clean(dirPath)
	info, err := b.bfs.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", p, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return &billyDirectory{bfs: b.bfs, absPath: p}, nil
}

func (b *BillyFileSystem) ReadFile(filePath string) ([]byte, error) {
	p := b.clean(filePath)
	data, err := util.ReadFile(b.bfs, p)
	if err != nil {
		return nil, fmt.Errorf("billy: read %q: %w", p, err)
	}
	return data, nil
}

func (b *BillyFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	p := b.clean(dirPath)
	infos, err := b.bfs.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", p, err)
	}
	return infos, nil
}

func (b *BillyFileSystem) Stat(statPath string) (FileInfo, error) {
	p := b.clean(statPath)
	info, err := b.bfs.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", p, err)
	}
	return info, nil
}
