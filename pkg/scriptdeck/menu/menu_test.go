package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/catalog"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/library"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSpawner records launch requests instead of spawning terminals.
type stubSpawner struct {
	calls []string
	err   error
}

func (s *stubSpawner) Launch(path string) error {
	s.calls = append(s.calls, path)
	return s.err
}

// buildLibrary creates base/Unidad 1 - Fundamentos POO/ClassesIntro/hello.py
// and returns the base path.
func buildLibrary(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	topic := filepath.Join(base, "Unidad 1 - Fundamentos POO", "ClassesIntro")
	require.NoError(t, os.MkdirAll(topic, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(topic, "hello.py"), []byte("print(\"hi\")\n"), 0o644))
	return base
}

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

// newController wires a controller over base with scripted input.
func newController(base string, spawner *stubSpawner, out *bytes.Buffer, confirm string, inputs ...string) *Controller {
	units := map[string]string{"1": "Unidad 1 - Fundamentos POO"}

	return New(Options{
		Catalog:      catalog.New(units),
		Library:      library.New(base, ".py"),
		Viewer:       viewer.New(out),
		Spawner:      spawner,
		In:           strings.NewReader(strings.Join(inputs, "\n") + "\n"),
		Out:          out,
		ConfirmToken: confirm,
	})
}

// countWarnings counts rendered warning lines.
func countWarnings(out string) int {
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Warning:") {
			count++
		}
	}
	return count
}

func TestRun_EndToEnd(t *testing.T) {
	logContents := initLogging(t)

	base := buildLibrary(t)
	spawner := &stubSpawner{}
	var out bytes.Buffer

	ctrl := newController(base, spawner, &out, "", "1", "1", "1", "N", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Scriptdeck - Main Menu")
	assert.Contains(t, rendered, "1 - Unidad 1 - Fundamentos POO")
	assert.Contains(t, rendered, "Available Topics")
	assert.Contains(t, rendered, "1 - ClassesIntro")
	assert.Contains(t, rendered, "Available Scripts")
	assert.Contains(t, rendered, "1 - hello.py")
	assert.Contains(t, rendered, strings.Repeat("=", 50))
	assert.Contains(t, rendered, "Source of hello.py:")
	assert.Contains(t, rendered, "print(\"hi\")")

	// Declined, so nothing was launched.
	assert.Empty(t, spawner.calls)

	log := logContents()
	assert.Contains(t, log, "session started")
	assert.Contains(t, log, "session ended")
}

func TestRun_ExitImmediately(t *testing.T) {
	logContents := initLogging(t)

	base := buildLibrary(t)
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "0")
	require.NoError(t, ctrl.Run())

	assert.Contains(t, out.String(), "Goodbye!")
	assert.Contains(t, logContents(), "session ended")
}

func TestRun_InvalidMainKeyWarnsAndStays(t *testing.T) {
	logContents := initLogging(t)

	base := buildLibrary(t)
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "9", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Equal(t, 1, countWarnings(rendered))
	assert.Contains(t, rendered, "Warning: invalid option")
	// The main menu re-rendered after the warning.
	assert.Equal(t, 2, strings.Count(rendered, "Scriptdeck - Main Menu"))

	assert.Contains(t, logContents(), "- WARNING -")
}

func TestTopicMenu_InvalidInputs(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "1", "abc", "5", "0", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Warning: please enter a valid number")
	assert.Contains(t, rendered, "Warning: invalid topic")
	assert.Equal(t, 2, countWarnings(rendered))
	// The topic menu re-rendered after each warning plus the initial render.
	assert.Equal(t, 3, strings.Count(rendered, "Available Topics"))
}

func TestScriptMenu_InvalidInputs(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "1", "1", "abc", "9", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Warning: please enter a valid number")
	assert.Contains(t, rendered, "Warning: invalid script")
	assert.Equal(t, 2, countWarnings(rendered))
}

func TestRun_ConfirmLaunchesScript(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	spawner := &stubSpawner{}
	var out bytes.Buffer

	ctrl := newController(base, spawner, &out, "", "1", "1", "1", "Y", "", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	require.Len(t, spawner.calls, 1)
	assert.True(t, strings.HasSuffix(spawner.calls[0], filepath.Join("ClassesIntro", "hello.py")))
}

func TestRun_ConfirmTokenCaseInsensitive(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	spawner := &stubSpawner{}
	var out bytes.Buffer

	// Spanish locale deployments configure "S" as the affirmative token.
	ctrl := newController(base, spawner, &out, "S", "1", "1", "1", "s", "", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	assert.Len(t, spawner.calls, 1)
}

func TestRun_LaunchFailureWarnsAndContinues(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	spawner := &stubSpawner{err: os.ErrNotExist}
	var out bytes.Buffer

	ctrl := newController(base, spawner, &out, "", "1", "1", "1", "Y", "", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	assert.Contains(t, out.String(), "Warning: could not launch script")
	// The script menu re-rendered after the failed launch.
	assert.Equal(t, 2, strings.Count(out.String(), "Available Scripts"))
}

func TestRun_MissingUnitDirectory(t *testing.T) {
	logContents := initLogging(t)

	base := t.TempDir() // no unit folders at all
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "1", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Equal(t, 1, countWarnings(rendered))
	// Control popped back to the main menu and exited cleanly.
	assert.Equal(t, 2, strings.Count(rendered, "Scriptdeck - Main Menu"))

	assert.Contains(t, logContents(), "- ERROR -")
}

func TestRun_BackNavigationLogsNothing(t *testing.T) {
	logContents := initLogging(t)

	base := buildLibrary(t)
	var out bytes.Buffer

	ctrl := newController(base, &stubSpawner{}, &out, "", "1", "0", "0")
	require.NoError(t, ctrl.Run())

	lines := strings.Split(strings.TrimSpace(logContents()), "\n")
	// Only the session-start and session-end records.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "session started")
	assert.Contains(t, lines[1], "session ended")
}

func TestRun_ViewerFailureKeepsSessionAlive(t *testing.T) {
	initLogging(t)

	base := buildLibrary(t)
	topic := filepath.Join(base, "Unidad 1 - Fundamentos POO", "ClassesIntro")
	require.NoError(t, os.WriteFile(filepath.Join(topic, "broken.py"), []byte{0xff, 0xfe}, 0o644))

	spawner := &stubSpawner{}
	var out bytes.Buffer

	// broken.py sorts before hello.py, so index 1 selects it.
	ctrl := newController(base, spawner, &out, "", "1", "1", "1", "", "0", "0", "0")
	require.NoError(t, ctrl.Run())

	rendered := out.String()
	assert.Contains(t, rendered, "Warning:")
	// No run prompt after a failed view, and nothing launched.
	assert.NotContains(t, rendered, "Run this script?")
	assert.Empty(t, spawner.calls)
}
