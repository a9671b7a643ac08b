package filesystem

import "sync"

// Operation names recorded by CountingFileSystem.
const (
	OpOpen     = "open"
	OpReadFile = "readfile"
	OpReadDir  = "readdir"
	OpStat     = "stat"
	OpWalk     = "walk"
	OpRead     = "read"
)

// CountingFileSystem decorates a provider and counts every call made
// through it, including walks and content reads on opened directories.
// Safe for concurrent use.
type CountingFileSystem struct {
	inner FileSystemProvider

	mu    sync.Mutex
	calls map[string]int
}

// NewCountingFileSystem wraps inner. Panics if inner is nil.
func NewCountingFileSystem(inner FileSystemProvider) *CountingFileSystem {
	if inner == nil {
		panic("inner filesystem cannot be nil")
	}
	return &CountingFileSystem{inner: inner, calls: make(map[string]int)}
}

func (c *CountingFileSystem) record(op string) {
	c.mu.Lock()
	c.calls[op]++
	c.mu.Unlock()
}

// Calls returns how many times op was invoked.
func (c *CountingFileSystem) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

// Total returns the number of calls across all operations.
func (c *CountingFileSystem) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

func (c *CountingFileSystem) Open(p string) (Directory, error) {
	c.record(OpOpen)
	dir, err := c.inner.Open(p)
	if err != nil {
		return nil, err
	}
	return &countingDirectory{Directory: dir, counter: c}, nil
}

func (c *CountingFileSystem) ReadFile(p string) ([]byte, error) {
	c.record(OpReadFile)
	return c.inner.ReadFile(p)
}

func (c *CountingFileSystem) ReadDir(p string) ([]FileInfo, error) {
	c.record(OpReadDir)
	return c.inner.ReadDir(p)
}

func (c *CountingFileSystem) Stat(p string) (FileInfo, error) {
	c.record(OpStat)
	return c.inner.Stat(p)
}

type countingDirectory struct {
	Directory
	counter *CountingFileSystem
}

func (d *countingDirectory) Walk(fn func(File, error) error) error {
	d.counter.record(OpWalk)
	return d.Directory.Walk(func(f File, err error) error {
		if f != nil {
			f = &countingFile{File: f, counter: d.counter}
		}
		return fn(f, err)
	})
}

type countingFile struct {
	File
	counter *CountingFileSystem
}

func (f *countingFile) ReadContent() ([]byte, error) {
	f.counter.record(OpRead)
	return f.File.ReadContent()
}
