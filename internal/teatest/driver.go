// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and any returned Cmd is run inline, so a test
// never starts a tea.Program or a goroutine. Models under test must not
// return Cmds that block.
package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds Cmd chains that keep producing messages.
const maxDepth = 50

// Driver feeds messages to a tea.Model and keeps the latest model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd produced tea.QuitMsg.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.run(model.Init(), 0)
	return d
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) *Driver {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	return d
}

// Send dispatches msg through Update. Nothing is sent after a quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.run(cmd, 0)
}

// Press sends one key per name. Names follow tea.KeyMsg.String(), so
// "left", "esc", "ctrl+c" and single runes such as "q" all work.
func (d *Driver) Press(names ...string) {
	d.T.Helper()
	for _, name := range names {
		d.Send(KeyMsg(name))
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// KeyMsg builds the tea.KeyMsg whose String() is name.
func KeyMsg(name string) tea.KeyMsg {
	if k, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: k}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"tab":    tea.KeyTab,
	" ":      tea.KeySpace,
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: Cmd chain deeper than %d, stopping", maxDepth)
		return
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.QuitMsg:
		d.Quitting = true
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.run(next, depth+1)
	}
}
