package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTest points the logging system at a temp directory and tears it
// down with the test.
func initTest(t *testing.T, level string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, Init(Config{Level: level, Dir: dir, FilePrefix: "scriptdeck"}))
	t.Cleanup(func() { _ = Close() })
	return dir
}

// readLog returns the contents of the current daily log file.
func readLog(t *testing.T) string {
	t.Helper()

	path := CurrentLogPath()
	require.NotEmpty(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInit_CreatesDailyFile(t *testing.T) {
	dir := initTest(t, "info")

	Get("test").Info("hello")

	want := filepath.Join(dir, fmt.Sprintf("scriptdeck_%s.log", time.Now().Format("20060102")))
	assert.Equal(t, want, CurrentLogPath())

	_, err := os.Stat(want)
	require.NoError(t, err)
}

func TestLog_LineFormat(t *testing.T) {
	initTest(t, "info")

	Get("viewer").Info("script viewed", "path", "/tmp/hello.py")

	line := strings.TrimRight(readLog(t), "\n")
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - INFO - script viewed path=/tmp/hello\.py$`)
	assert.Regexp(t, re, line)
}

func TestLog_Levels(t *testing.T) {
	initTest(t, "info")

	logger := Get("test")
	logger.Debug("not written")
	logger.Info("info line")
	logger.Warn("warning line")
	logger.Error("error line")

	content := readLog(t)
	assert.NotContains(t, content, "not written")
	assert.Contains(t, content, "- INFO - info line")
	assert.Contains(t, content, "- WARNING - warning line")
	assert.Contains(t, content, "- ERROR - error line")
}

func TestLog_BeforeInitIsSilent(t *testing.T) {
	require.NoError(t, Close())

	// Must not panic or create files.
	Get("early").Info("dropped")
	assert.Empty(t, CurrentLogPath())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"debug", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarning, true},
		{"warning", LevelWarning, true},
		{"error", LevelError, true},
		{"ERROR", LevelError, true},
		{"bogus", LevelInfo, false},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.ok {
			require.NoError(t, err, "ParseLevel(%q)", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, ErrInvalidLevel)
		}
	}
}

func TestLevel_Tag(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.Tag())
	assert.Equal(t, "INFO", LevelInfo.Tag())
	assert.Equal(t, "WARNING", LevelWarning.Tag())
	assert.Equal(t, "ERROR", LevelError.Tag())
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(Config{Level: "loud", Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}
