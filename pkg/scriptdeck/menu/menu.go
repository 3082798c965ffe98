// Package menu implements the interactive navigation loop over the script
// library: main menu (units), topic submenu, and script submenu. The
// controller owns all console interaction; listings, viewing, and launching
// are delegated to the library, viewer, and launcher packages.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/catalog"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/launcher"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/library"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/viewer"
)

// menuWidth is the width of the separator lines around each menu.
const menuWidth = 40

// Options configures a Controller. In and Out default to nothing; callers
// inject os.Stdin/os.Stdout in production and buffers in tests.
type Options struct {
	Catalog *catalog.Catalog
	Library *library.Library
	Viewer  *viewer.Viewer
	Spawner launcher.Spawner
	In      io.Reader
	Out     io.Writer

	// ConfirmToken is the affirmative answer to the run prompt,
	// matched case-insensitively. Empty means "Y".
	ConfirmToken string
}

// Controller drives the three-level menu loop. It is single-threaded and
// blocks on console input; every listing is re-read from disk on render.
type Controller struct {
	catalog *catalog.Catalog
	lib     *library.Library
	viewer  *viewer.Viewer
	spawner launcher.Spawner
	in      *bufio.Scanner
	out     io.Writer
	confirm string
	session string
	logger  *logging.Logger
}

// New creates a controller from the given options.
func New(opts Options) *Controller {
	confirm := opts.ConfirmToken
	if confirm == "" {
		confirm = "Y"
	}

	return &Controller{
		catalog: opts.Catalog,
		lib:     opts.Library,
		viewer:  opts.Viewer,
		spawner: opts.Spawner,
		in:      bufio.NewScanner(opts.In),
		out:     opts.Out,
		confirm: confirm,
		session: uuid.NewString(),
		logger:  logging.Get("menu"),
	}
}

// Run renders the main menu until the user selects exit (or input ends).
// Invalid selections warn and re-render; no input error is fatal.
func (c *Controller) Run() error {
	c.logger.Info("session started", "session", c.session)

	for {
		c.renderMain()

		input, ok := c.readLine("\nSelect an option: ")
		if !ok || input == "0" {
			if ok {
				fmt.Fprintln(c.out, "\nGoodbye!")
			}
			c.logger.Info("session ended", "session", c.session)
			return nil
		}

		if name, found := c.catalog.Lookup(input); found {
			c.topicMenu(c.lib.UnitPath(name))
			continue
		}

		c.warn("invalid option")
		c.logger.Warn("invalid menu option", "input", input)
	}
}

// topicMenu lists the topic subfolders of a unit until the user backs out.
func (c *Controller) topicMenu(unitPath string) {
	for {
		topics, err := c.lib.Subdirs(unitPath)
		if err != nil {
			c.reportListError("failed to list topics", unitPath, err)
			return
		}

		c.renderList("Available Topics", topics, "0 - Back to main menu")

		input, ok := c.readLine("\nSelect a topic: ")
		if !ok || input == "0" {
			return
		}

		idx, err := strconv.Atoi(input)
		switch {
		case err != nil:
			c.warn("please enter a valid number")
		case idx < 1 || idx > len(topics):
			c.warn("invalid topic")
		default:
			c.scriptMenu(filepath.Join(unitPath, topics[idx-1]))
		}
	}
}

// scriptMenu lists the scripts of a topic; selecting one views it and
// offers to launch it in a new terminal window.
func (c *Controller) scriptMenu(topicPath string) {
	for {
		scripts, err := c.lib.Scripts(topicPath)
		if err != nil {
			c.reportListError("failed to list scripts", topicPath, err)
			return
		}

		c.renderList("Available Scripts", scripts, "0 - Back to topics")

		input, ok := c.readLine("\nSelect a script: ")
		if !ok || input == "0" {
			return
		}

		idx, err := strconv.Atoi(input)
		switch {
		case err != nil:
			c.warn("please enter a valid number")
		case idx < 1 || idx > len(scripts):
			c.warn("invalid script")
		default:
			c.showScript(filepath.Join(topicPath, scripts[idx-1]))
		}
	}
}

// showScript views a script and, on confirmation, launches it. The
// acknowledgment prompt always runs before the script menu re-renders.
func (c *Controller) showScript(path string) {
	if res := c.viewer.View(path); res.OK() {
		answer, ok := c.readLine("\nRun this script? (Y/N): ")
		if ok && strings.EqualFold(answer, c.confirm) {
			if err := c.spawner.Launch(path); err != nil {
				c.warn(fmt.Sprintf("could not launch script: %v", err))
			}
		}
	}

	c.readLine("\nPress Enter to continue...")
}

// renderMain renders the catalog plus the exit option.
func (c *Controller) renderMain() {
	sep := strings.Repeat("=", menuWidth)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, titleStyle.Render("Scriptdeck - Main Menu"))
	fmt.Fprintln(c.out, sep)
	for _, e := range c.catalog.Entries() {
		fmt.Fprintf(c.out, "%s - %s\n", e.Key, e.Name)
	}
	fmt.Fprintln(c.out, "0 - Exit")
	fmt.Fprintln(c.out, sep)
}

// renderList renders a 1-based numbered list plus the back option.
func (c *Controller) renderList(title string, items []string, backLabel string) {
	sep := strings.Repeat("=", menuWidth)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, titleStyle.Render(title))
	fmt.Fprintln(c.out, sep)
	for i, item := range items {
		fmt.Fprintf(c.out, "%d - %s\n", i+1, item)
	}
	fmt.Fprintln(c.out, backLabel)
	fmt.Fprintln(c.out, sep)
}

// readLine prompts and reads one trimmed line. ok is false when input is
// exhausted, which ends the enclosing menu the same way as "0".
func (c *Controller) readLine(prompt string) (input string, ok bool) {
	fmt.Fprint(c.out, mutedStyle.Render(prompt))
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// warn prints exactly one validation warning line.
func (c *Controller) warn(msg string) {
	fmt.Fprintf(c.out, "\n%s\n", warningStyle.Render("Warning: "+msg))
}

// reportListError surfaces a listing failure and logs it. The caller pops
// back to the previous menu so the session keeps running.
func (c *Controller) reportListError(msg, path string, err error) {
	c.warn(err.Error())
	c.logger.Error(msg, "path", path, "error", err)
}
