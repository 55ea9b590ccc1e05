package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/voxon-runtime/input"
	"github.com/wippyai/voxon-runtime/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// frameInterval paces the frame loop when the device does not block.
const frameInterval = time.Second / 60

// Emulator steps per key press.
const (
	angleStep    float32 = 0.1
	distanceStep float32 = 100
)

type keyMap struct {
	Left, Right key.Binding
	Up, Down    key.Binding
	Near, Far   key.Binding
	Guides      key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Near, k.Guides, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.Near, k.Far, k.Guides, k.Quit}}
}

var viewKeys = keyMap{
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "rotate")),
	Right:  key.NewBinding(key.WithKeys("right", "l")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "tilt")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Near:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
	Far:    key.NewBinding(key.WithKeys("-", "_")),
	Guides: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "guidelines")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// viewModel renders one device frame per tick. Frames run inside Update so
// the runtime is only touched from the program's event loop.
type viewModel struct {
	err        error
	rt         *runtime.Runtime
	help       help.Model
	keys       keyMap
	frames     int
	hang       float32
	vang       float32
	dist       float32
	held       []string
	guidelines bool
	stopped    bool
}

func newViewModel(rt *runtime.Runtime) *viewModel {
	m := &viewModel{
		rt:         rt,
		help:       help.New(),
		keys:       viewKeys,
		guidelines: true,
	}
	m.hang, _ = rt.EmulatorHorizontalAngle()
	m.vang, _ = rt.EmulatorVerticalAngle()
	m.dist, _ = rt.EmulatorDistance()
	return m
}

func (m *viewModel) Init() tea.Cmd {
	return tick()
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopped = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.hang, m.err = m.rt.SetEmulatorHorizontalAngle(m.hang - angleStep)
		case key.Matches(msg, m.keys.Right):
			m.hang, m.err = m.rt.SetEmulatorHorizontalAngle(m.hang + angleStep)
		case key.Matches(msg, m.keys.Up):
			m.vang, m.err = m.rt.SetEmulatorVerticalAngle(m.vang + angleStep)
		case key.Matches(msg, m.keys.Down):
			m.vang, m.err = m.rt.SetEmulatorVerticalAngle(m.vang - angleStep)
		case key.Matches(msg, m.keys.Near):
			m.dist, m.err = m.rt.SetEmulatorDistance(m.dist - distanceStep)
		case key.Matches(msg, m.keys.Far):
			m.dist, m.err = m.rt.SetEmulatorDistance(m.dist + distanceStep)
		case key.Matches(msg, m.keys.Guides):
			m.guidelines = !m.guidelines
		}

	case tickMsg:
		if m.stopped {
			return m, nil
		}
		breath, err := m.step()
		if err != nil {
			m.err = err
			m.stopped = true
			return m, tea.Quit
		}
		if !breath {
			m.stopped = true
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

func (m *viewModel) step() (bool, error) {
	breath, err := m.rt.FrameStart()
	if err != nil {
		return false, err
	}
	if breath {
		if m.guidelines {
			if err := m.rt.DrawGuidelines(); err != nil {
				return false, err
			}
		}
		m.frames++
		m.held = m.held[:0]
		for _, b := range []input.Button{input.A, input.B, input.X, input.Y, input.Start, input.Back} {
			if down, _ := m.rt.Button(0, b); down {
				m.held = append(m.held, b.String())
			}
		}
	}
	return breath, m.rt.FrameEnd()
}

func (m *viewModel) row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func (m *viewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Voxon"))
	b.WriteString(" ")
	b.WriteString(m.rt.Library().Path())
	b.WriteString("\n\n")

	m.row(&b, "frames", fmt.Sprint(m.frames))
	m.row(&b, "angle", fmt.Sprintf("%.3f rad", m.hang))
	m.row(&b, "tilt", fmt.Sprintf("%.3f rad", m.vang))
	m.row(&b, "distance", fmt.Sprintf("%.0f", m.dist))
	buttons := "-"
	if len(m.held) > 0 {
		buttons = strings.Join(m.held, " ")
	}
	m.row(&b, "buttons", buttons)

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newViewCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Run the frame loop with a live terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("view needs a terminal, use run instead")
			}
			cfg := opts.runtimeConfig(cmd.Context())
			return runtime.With(cfg, func(rt *runtime.Runtime) error {
				m := newViewModel(rt)
				p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
				if _, err := p.Run(); err != nil {
					return err
				}
				return m.err
			})
		},
	}
}
