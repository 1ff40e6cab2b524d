// Package tui provides the BubbleTea-based palette browser.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themeconf/internal/config"
	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
)

// Model is the main TUI model.
type Model struct {
	// Configuration
	cfg   *config.Config
	theme *theme.Theme

	// Components
	list list.Model
	help help.Model

	// State
	extendOnly bool
	width      int
	height     int
	ready      bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

// tokenItem wraps a palette token for the list component.
type tokenItem struct {
	name       string
	value      string
	fromExtend bool
}

func (i tokenItem) Title() string { return i.name }

func (i tokenItem) Description() string {
	origin := "default"
	if i.fromExtend {
		origin = "extension"
	}
	return fmt.Sprintf("%s (%s)", i.value, origin)
}

func (i tokenItem) FilterValue() string {
	return i.name + " " + i.value
}

// tokenDelegate is a custom list delegate that renders color swatches.
type tokenDelegate struct {
	list.DefaultDelegate
	showSwatches bool
	showHex      bool
}

// newTokenDelegate creates a new token delegate.
func newTokenDelegate(cfg *config.Config) tokenDelegate {
	d := list.NewDefaultDelegate()
	return tokenDelegate{
		DefaultDelegate: d,
		showSwatches:    cfg.TUI.ShowSwatches,
		showHex:         cfg.TUI.ShowHex,
	}
}

// Render renders a list item with a swatch in front of the token name.
func (d tokenDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(tokenItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	isSelected := index == m.Index()

	var titleStyle, descStyle lipgloss.Style
	if isSelected {
		titleStyle = d.DefaultDelegate.Styles.SelectedTitle
		descStyle = d.DefaultDelegate.Styles.SelectedDesc
	} else {
		titleStyle = d.DefaultDelegate.Styles.NormalTitle
		descStyle = d.DefaultDelegate.Styles.NormalDesc
	}

	title := ti.name
	if d.showSwatches {
		if hex, err := palette.NormalizeHex(ti.value); err == nil {
			fg := "#000000"
			if palette.IsDark(ti.value) {
				fg = "#FFFFFF"
			}
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(hex)).
				Foreground(lipgloss.Color(fg)).
				Render("  ")
			title = swatch + " " + title
		}
	}

	desc := ti.Description()
	if !d.showHex {
		origin := "default"
		if ti.fromExtend {
			origin = "extension"
		}
		desc = origin
	}

	fmt.Fprint(w, titleStyle.Render(title))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(desc))
}

// New creates a new TUI model for browsing a theme's merged palette.
func New(cfg *config.Config, th *theme.Theme) Model {
	delegate := newTokenDelegate(cfg)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Palette"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	m := Model{
		cfg:   cfg,
		theme: th,
		list:  l,
		help:  help.New(),
		keys:  DefaultKeyMap(),
	}
	m.list.SetItems(m.buildItems())
	return m
}

// buildItems assembles the token list from the merged palette.
func (m Model) buildItems() []list.Item {
	extend := m.theme.Config.Theme.Extend.Colors

	var p palette.Palette
	if m.extendOnly {
		p = palette.Palette(extend).Clone()
	} else {
		p = palette.Default().Merge(extend)
	}

	items := make([]list.Item, 0, len(p))
	for _, name := range p.Names() {
		_, fromExtend := extend[name]
		items = append(items, tokenItem{
			name:       name,
			value:      p[name],
			fromExtend: fromExtend,
		})
	}
	return items
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		headerHeight := 1
		footerHeight := 2
		m.list.SetSize(msg.Width, msg.Height-headerHeight-footerHeight)
		return m, nil

	case tea.KeyMsg:
		// Let the list handle keys while filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.ToggleExtend):
			m.extendOnly = !m.extendOnly
			cmd := m.list.SetItems(m.buildItems())
			return m, cmd

		case key.Matches(msg, m.keys.Reload):
			changed, err := m.theme.Reload()
			if err != nil {
				m.statusMsg = fmt.Sprintf("reload failed: %v", err)
				m.statusErr = true
				return m, nil
			}
			m.statusErr = false
			if changed {
				m.statusMsg = "theme reloaded"
			} else {
				m.statusMsg = "theme unchanged"
			}
			cmd := m.list.SetItems(m.buildItems())
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	scope := "merged"
	if m.extendOnly {
		scope = "extension only"
	}
	header := headerStyle.Render(fmt.Sprintf("themeconf · %s · %s", m.theme.Name, scope))

	status := ""
	if m.statusMsg != "" {
		if m.statusErr {
			status = errorStyle.Render(m.statusMsg)
		} else {
			status = statusStyle.Render(m.statusMsg)
		}
	}

	footer := m.help.View(m.keys)
	if status != "" {
		footer = status + "\n" + footer
	}

	return header + "\n" + m.list.View() + "\n" + footer
}

// Run starts the palette browser for the given theme.
func Run(cfg *config.Config, th *theme.Theme) error {
	p := tea.NewProgram(New(cfg, th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
