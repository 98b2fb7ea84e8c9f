package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}

// counter counts key presses. "t" schedules a tick that counts too.
type counter struct {
	n    int
	keys []string
}

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		c.n += 10
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		c.n++
		switch msg.String() {
		case "t":
			return c, tea.Batch(func() tea.Msg { return tickMsg{} }, nil)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestKeyMsg_StringRoundTrip(t *testing.T) {
	for _, name := range []string{"left", "right", "esc", "ctrl+c", "home", "end", "q", "G"} {
		assert.Equal(t, name, KeyMsg(name).String())
	}
}

func TestDriver_RunsCmdsInline(t *testing.T) {
	d := New(t, counter{})
	d.Press("a", "t")
	assert.Equal(t, 12, d.Model.(counter).n)

	d.Press("q", "b")
	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"a", "t", "q"}, d.Model.(counter).keys)
}
