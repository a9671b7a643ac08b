package services

import (
	"context"

	"github.com/vvka-141/assetref/pkg/assetref"
)

type mockResolver struct {
	identity assetref.AssetIdentity
	err      error
	calls    int
}

func (m *mockResolver) Resolve(_ *assetref.AssetHandle) (assetref.AssetIdentity, error) {
	m.calls++
	return m.identity, m.err
}

type mockScanner struct {
	results  assetref.MatchResult
	err      error
	calls    int
	lastGUID string
	lastOpts assetref.SearchOptions
}

func (m *mockScanner) Scan(_ context.Context, opts assetref.SearchOptions, guid string) (assetref.MatchResult, error) {
	m.calls++
	m.lastGUID = guid
	m.lastOpts = opts
	return m.results, m.err
}

type mockLogger struct{}

func (mockLogger) Verbose(string, ...interface{}) {}
func (mockLogger) Info(string, ...interface{})    {}
func (mockLogger) Error(string, ...interface{})   {}
