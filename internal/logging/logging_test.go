package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		lg := NewWithWriter(&bytes.Buffer{}, tt.in)
		assert.Equal(t, tt.want, lg.GetLevel(), "level %q", tt.in)
	}
}

func TestNewWithWriterFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, "info")
	lg.WithField("url", "https://example.com").Warn("feed load failed")
	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `msg="feed load failed"`)
	assert.Contains(t, out, "url=\"https://example.com\"")
}

func TestNewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "swiftvn.log")
	lg, closer, err := New(path, "info")
	require.NoError(t, err)
	lg.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
