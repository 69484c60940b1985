package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/internal/screen"
	"github.com/huangsam/githistory/schema"
	"golang.org/x/term"
)

// Options configure an explorer session.
type Options struct {
	RepoPath string // Shown in the header
	Year     int    // Calendar year of the heatmap
}

// model adapts State and Update to the bubbletea runtime.
type model struct {
	data  *schema.Dataset
	state State
	opts  Options
}

func newModel(data *schema.Dataset, opts Options) model {
	if data == nil {
		data = schema.EmptyDataset()
	}
	return model{data: data, state: NewState(), opts: opts}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	for _, ev := range eventsFromMsg(msg) {
		m.state = Update(m.data, m.state, ev)
	}
	if m.state.Mode == ModeTerminal {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.state.Mode == ModeTerminal {
		return ""
	}
	frame := Snapshot(m.data, m.state, m.opts.RepoPath, m.opts.Year)
	return screen.Render(frame, m.state.Width, m.state.Height)
}

// eventsFromMsg translates a bubbletea message into explorer events. Typed or
// pasted text becomes one event per rune.
func eventsFromMsg(msg tea.Msg) []Event {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return []Event{Resize(msg.Width, msg.Height)}
	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			events := make([]Event, len(msg.Runes))
			for i, r := range msg.Runes {
				events[i] = Key(string(r))
			}
			return events
		}
		return []Event{Key(msg.String())}
	}
	return nil
}

// Run starts the explorer on the current terminal and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, data *schema.Dataset, opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return &contract.RenderSurfaceError{Err: errors.New("stdin and stdout must be a terminal")}
	}

	p := tea.NewProgram(newModel(data, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return &contract.RenderSurfaceError{Err: err}
	}
	return nil
}
