package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{"verbose enabled", true, func(l *ConsoleLogger) { l.Verbose("scanning %s", "a.prefab") }, "[VERBOSE] scanning a.prefab\n"},
		{"verbose disabled", false, func(l *ConsoleLogger) { l.Verbose("scanning %s", "a.prefab") }, ""},
		{"info", false, func(l *ConsoleLogger) { l.Info("found %d", 2) }, "found 2\n"},
		{"error", false, func(l *ConsoleLogger) { l.Error("failed: %s", "boom") }, "[ERROR] failed: boom\n"},
		{"no args keeps percent", false, func(l *ConsoleLogger) { l.Info("100%") }, "100%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewConsoleLoggerTo(&buf, tt.verbose)
			tt.log(logger)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.verbose, logger.IsVerbose())
		})
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	logger := NewConsoleLoggerTo(nil, true)
	assert.NotPanics(t, func() { logger.Info("discarded") })
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 100)
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()
	assert.NotPanics(t, func() {
		logger.Verbose("verbose")
		logger.Info("info")
		logger.Error("error")
	})
}

func TestRecordingLogger(t *testing.T) {
	logger := NewRecordingLogger()
	logger.Verbose("skipping %s", "b.prefab")
	logger.Error("boom")

	assert.Equal(t, []Entry{
		{Level: "verbose", Message: "skipping b.prefab"},
		{Level: "error", Message: "boom"},
	}, logger.Entries())
	assert.True(t, logger.Contains("verbose", "b.prefab"))
	assert.True(t, logger.Contains("", "boom"))
	assert.False(t, logger.Contains("info", "boom"))
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLoggerTo(&bytes.Buffer{}, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	fmt.Println("Done")
	// Output:
	// Done
}
