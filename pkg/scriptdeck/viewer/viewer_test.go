package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initLogging routes the session log into a temp dir and returns a reader
// for its contents.
func initLogging(t *testing.T) func() string {
	t.Helper()

	require.NoError(t, logging.Init(logging.Config{Level: "info", Dir: t.TempDir()}))
	t.Cleanup(func() { _ = logging.Close() })

	return func() string {
		data, err := os.ReadFile(logging.CurrentLogPath())
		require.NoError(t, err)
		return string(data)
	}
}

func TestView_Success(t *testing.T) {
	logContents := initLogging(t)

	path := filepath.Join(t.TempDir(), "hello.py")
	content := "print(\"hi\")\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var out bytes.Buffer
	res := New(&out).View(path)

	require.True(t, res.OK())
	assert.Equal(t, content, res.Text)

	rendered := out.String()
	assert.Contains(t, rendered, strings.Repeat("=", 50))
	assert.Contains(t, rendered, "Source of hello.py:")
	assert.Contains(t, rendered, "print(\"hi\")")

	log := logContents()
	assert.Contains(t, log, "- INFO -")
	assert.Contains(t, log, path)
}

func TestView_MissingFile(t *testing.T) {
	logContents := initLogging(t)

	path := filepath.Join(t.TempDir(), "missing.py")

	var out bytes.Buffer
	res := New(&out).View(path)

	require.False(t, res.OK())
	assert.Error(t, res.Err)
	assert.Contains(t, out.String(), "Warning:")

	// Exactly one ERROR line, and it names the path.
	var errorLines []string
	for _, line := range strings.Split(logContents(), "\n") {
		if strings.Contains(line, "- ERROR -") {
			errorLines = append(errorLines, line)
		}
	}
	require.Len(t, errorLines, 1)
	assert.Contains(t, errorLines[0], path)
}

func TestView_InvalidUTF8(t *testing.T) {
	initLogging(t)

	path := filepath.Join(t.TempDir(), "binary.py")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	var out bytes.Buffer
	res := New(&out).View(path)

	require.False(t, res.OK())
	assert.Contains(t, res.Err.Error(), "not valid UTF-8")
	assert.Contains(t, out.String(), "Warning:")
}

func TestView_TextMatchesDiskBytes(t *testing.T) {
	initLogging(t)

	path := filepath.Join(t.TempDir(), "acentos.py")
	content := "# programación orientada a objetos\nprint(\"ñ\")\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var out bytes.Buffer
	res := New(&out).View(path)

	require.True(t, res.OK())
	assert.Equal(t, []byte(content), []byte(res.Text))
}
