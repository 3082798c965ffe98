package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/catalog"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/launcher"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/library"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
)

// Options configures the TUI browser.
type Options struct {
	Catalog *catalog.Catalog
	Library *library.Library
	Spawner launcher.Spawner
}

// browseLevel is the hierarchy level currently shown.
type browseLevel int

const (
	levelUnits browseLevel = iota
	levelTopics
	levelScripts
	levelSource
)

// entryItem is one row in the picker list.
type entryItem struct {
	title string
	desc  string
	path  string
}

func (i entryItem) Title() string       { return i.title }
func (i entryItem) Description() string { return i.desc }
func (i entryItem) FilterValue() string { return i.title }

// fsChangedMsg signals that the watched directory changed on disk.
type fsChangedMsg struct{}

// watchClosedMsg signals that the filesystem watcher shut down.
type watchClosedMsg struct{}

// Model is the Bubble Tea model for the scriptdeck picker.
type Model struct {
	opts Options

	level     browseLevel
	list      list.Model
	source    viewport.Model
	unitPath  string
	topicPath string
	script    string
	status    string

	watcher *fsnotify.Watcher
	watched string

	logger *logging.Logger
	width  int
	height int
	ready  bool
}

// NewModel creates the picker model rooted at the library's unit catalog.
func NewModel(opts Options) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Units"
	l.SetShowHelp(false)

	m := Model{
		opts:   opts,
		list:   l,
		logger: logging.Get("tui"),
	}

	if w, err := fsnotify.NewWatcher(); err == nil {
		m.watcher = w
	} else {
		m.logger.Warn("filesystem watching disabled", "error", err)
	}

	m.list.SetItems(m.unitItems())
	return m
}

// Init starts the filesystem event listener.
func (m Model) Init() tea.Cmd {
	return m.waitForFS()
}

// waitForFS returns a command that blocks on the next watcher event.
func (m Model) waitForFS() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return watchClosedMsg{}
				}
				return fsChangedMsg{}
			case _, ok := <-w.Errors:
				if !ok {
					return watchClosedMsg{}
				}
			}
		}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-3)
		m.source.Width = msg.Width
		m.source.Height = msg.Height - 4
		m.ready = true
		return m, nil

	case fsChangedMsg:
		m.reload()
		return m, m.waitForFS()

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActive(msg)
}

// handleKey dispatches keys for the current level.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.level == levelSource {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.level = levelScripts
			m.status = ""
			return m, nil
		case "r":
			m.launch()
			return m, nil
		}
		return m.updateActive(msg)
	}

	// Let the list's filter input consume keys while active.
	if m.list.FilterState() == list.Filtering {
		return m.updateActive(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.closeWatcher()
		return m, tea.Quit
	case "enter":
		m.descend()
		return m, nil
	case "esc", "backspace":
		m.ascend()
		return m, nil
	}

	return m.updateActive(msg)
}

// updateActive forwards a message to the focused component.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.level == levelSource {
		m.source, cmd = m.source.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// descend drills into the selected entry.
func (m *Model) descend() {
	sel, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return
	}

	switch m.level {
	case levelUnits:
		m.unitPath = sel.path
		m.level = levelTopics
		m.list.Title = filepath.Base(m.unitPath)
		m.list.SetItems(m.topicItems())
		m.list.ResetSelected()
		m.watch(m.unitPath)
	case levelTopics:
		m.topicPath = sel.path
		m.level = levelScripts
		m.list.Title = filepath.Base(m.topicPath)
		m.list.SetItems(m.scriptItems())
		m.list.ResetSelected()
		m.watch(m.topicPath)
	case levelScripts:
		m.viewSource(sel.path)
	}
}

// ascend pops back up one level.
func (m *Model) ascend() {
	switch m.level {
	case levelTopics:
		m.level = levelUnits
		m.list.Title = "Units"
		m.list.SetItems(m.unitItems())
		m.list.ResetSelected()
		m.watch("")
	case levelScripts:
		m.level = levelTopics
		m.list.Title = filepath.Base(m.unitPath)
		m.list.SetItems(m.topicItems())
		m.list.ResetSelected()
		m.watch(m.unitPath)
	}
	m.status = ""
}

// reload re-lists the current level after a filesystem change.
func (m *Model) reload() {
	switch m.level {
	case levelTopics:
		m.list.SetItems(m.topicItems())
	case levelScripts:
		m.list.SetItems(m.scriptItems())
	}
}

// viewSource loads a script into the pager.
func (m *Model) viewSource(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		m.status = errorTextStyle.Render(fmt.Sprintf("cannot read %s: %v", filepath.Base(path), err))
		m.logger.Error("failed to read script", "path", path, "error", err)
		return
	}

	m.script = path
	m.source.SetContent(string(data))
	m.source.GotoTop()
	m.level = levelSource
	m.status = ""
	m.logger.Info("script viewed", "path", path)
}

// launch runs the viewed script in a detached terminal window.
func (m *Model) launch() {
	if err := m.opts.Spawner.Launch(m.script); err != nil {
		m.status = errorTextStyle.Render(fmt.Sprintf("launch failed: %v", err))
		return
	}
	m.status = statusStyle.Render(fmt.Sprintf("launched %s", filepath.Base(m.script)))
}

// watch points the filesystem watcher at path. Empty path clears it.
func (m *Model) watch(path string) {
	if m.watcher == nil {
		return
	}

	if m.watched != "" {
		_ = m.watcher.Remove(m.watched)
		m.watched = ""
	}
	if path == "" {
		return
	}

	if err := m.watcher.Add(path); err != nil {
		m.logger.Debug("cannot watch directory", "path", path, "error", err)
		return
	}
	m.watched = path
}

// closeWatcher shuts down the filesystem watcher.
func (m *Model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// unitItems builds the catalog level of the picker.
func (m *Model) unitItems() []list.Item {
	var items []list.Item
	for _, e := range m.opts.Catalog.Entries() {
		items = append(items, entryItem{
			title: e.Name,
			desc:  "Unit " + e.Key,
			path:  m.opts.Library.UnitPath(e.Name),
		})
	}
	return items
}

// topicItems lists the topic folders of the current unit.
func (m *Model) topicItems() []list.Item {
	topics, err := m.opts.Library.Subdirs(m.unitPath)
	if err != nil {
		m.status = errorTextStyle.Render(err.Error())
		return nil
	}

	var items []list.Item
	for _, name := range topics {
		items = append(items, entryItem{
			title: name,
			desc:  "Topic",
			path:  filepath.Join(m.unitPath, name),
		})
	}
	return items
}

// scriptItems lists the scripts of the current topic with size and age.
func (m *Model) scriptItems() []list.Item {
	scripts, err := m.opts.Library.Scripts(m.topicPath)
	if err != nil {
		m.status = errorTextStyle.Render(err.Error())
		return nil
	}

	var items []list.Item
	for _, name := range scripts {
		path := filepath.Join(m.topicPath, name)
		desc := "Script"
		if info, err := os.Stat(path); err == nil {
			desc = fmt.Sprintf("%s, %s", humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
		}
		items = append(items, entryItem{title: name, desc: desc, path: path})
	}
	return items
}

// View renders the picker.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.level == levelSource {
		header := titleStyle.Render(filepath.Base(m.script))
		help := helpStyle.Render("r run · esc back · ↑/↓ scroll")
		footer := help
		if m.status != "" {
			footer = m.status + "  " + help
		}
		return fmt.Sprintf("%s\n%s\n%s", header, m.source.View(), footer)
	}

	help := helpStyle.Render("enter open · esc back · / filter · q quit")
	footer := help
	if m.status != "" {
		footer = m.status + "  " + help
	}
	return fmt.Sprintf("%s\n%s", m.list.View(), footer)
}

// Run starts the picker and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	return nil
}
