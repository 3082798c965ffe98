// Package viewer renders the source of a script to the console.
package viewer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
)

// bannerWidth is the width of the separator lines around the header.
const bannerWidth = 50

// Result is the outcome of a view operation: the script text on success,
// or the reason it could not be shown. A failed view never aborts the
// session; the failure is reported and logged before returning.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the view succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Viewer reads script files and prints them with a banner header.
type Viewer struct {
	out    io.Writer
	logger *logging.Logger
}

// New creates a viewer writing to out.
func New(out io.Writer) *Viewer {
	return &Viewer{
		out:    out,
		logger: logging.Get("viewer"),
	}
}

// View reads the script at path as UTF-8 and prints it under a banner with
// the base filename. Read or decode failures are reported as a console
// warning plus an ERROR log entry, and returned in the Result.
func (v *Viewer) View(path string) Result {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return v.fail(path, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return v.fail(path, err)
	}

	if !utf8.Valid(data) {
		return v.fail(path, fmt.Errorf("%s is not valid UTF-8", filepath.Base(path)))
	}

	text := string(data)
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(v.out, "\n%s\n", banner)
	fmt.Fprintf(v.out, "Source of %s:\n", filepath.Base(path))
	fmt.Fprintf(v.out, "%s\n\n", banner)
	fmt.Fprintln(v.out, text)

	v.logger.Info("script viewed", "path", path)
	return Result{Text: text}
}

// fail reports a view failure and wraps it in a Result.
func (v *Viewer) fail(path string, err error) Result {
	v.logger.Error("failed to read script", "path", path, "error", err)
	fmt.Fprintf(v.out, "\nWarning: %v\n", err)
	return Result{Err: err}
}
