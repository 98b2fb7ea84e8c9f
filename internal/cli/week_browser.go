package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/consistency"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type weekBrowserKeys struct {
	Older  key.Binding
	Newer  key.Binding
	Oldest key.Binding
	Newest key.Binding
	Quit   key.Binding
}

func (k weekBrowserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Older, k.Newer, k.Quit}
}

func (k weekBrowserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Older, k.Newer}, {k.Oldest, k.Newest, k.Quit}}
}

func defaultWeekBrowserKeys() weekBrowserKeys {
	return weekBrowserKeys{
		Older:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "older")),
		Newer:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "newer")),
		Oldest: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "oldest")),
		Newest: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "newest")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// weekBrowser pages through week buckets one at a time. Weeks are newest
// first, so index 0 is the current week.
type weekBrowser struct {
	weeks []consistency.WeekBucket
	index int
	keys  weekBrowserKeys
	help  help.Model
}

func newWeekBrowser(weeks []consistency.WeekBucket) weekBrowser {
	return weekBrowser{
		weeks: weeks,
		keys:  defaultWeekBrowserKeys(),
		help:  help.New(),
	}
}

func (m weekBrowser) Init() tea.Cmd { return nil }

func (m weekBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Older):
			if m.index < len(m.weeks)-1 {
				m.index++
			}
		case key.Matches(msg, m.keys.Newer):
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.Oldest):
			if len(m.weeks) > 0 {
				m.index = len(m.weeks) - 1
			}
		case key.Matches(msg, m.keys.Newest):
			m.index = 0
		}
	}
	return m, nil
}

func (m weekBrowser) View() string {
	if len(m.weeks) == 0 {
		return formatter.Dim("No weeks to show.") + "\n"
	}
	var b strings.Builder
	b.WriteString(formatter.FormatWeekDetail(m.weeks[m.index]))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d of %d", m.index+1, len(m.weeks))))
	b.WriteString("  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
