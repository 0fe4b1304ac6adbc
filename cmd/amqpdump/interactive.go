package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var stylePalette = palette{
	key:   keyStyle.Render,
	kind:  typeStyle.Render,
	value: resultStyle.Render,
}

// interactiveTargets are cycled with tab. A -type outside this list is put
// in front.
var interactiveTargets = []string{"table", "array", "value", "shortstr", "longstr", "decimal", "bits:8"}

type interactiveModel struct {
	err     error
	cfg     *Config
	input   textinput.Model
	output  string
	summary string
	targets []string
	target  int
}

func newInteractiveModel(cfg *Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "00 00 00 09 03 6f 6e 65 49 00 00 00 01"
	ti.Prompt = "hex: "
	ti.Width = 60
	ti.Focus()

	m := &interactiveModel{cfg: cfg, input: ti, targets: interactiveTargets}
	m.target = -1
	for i, name := range m.targets {
		if name == cfg.Type {
			m.target = i
		}
	}
	if m.target < 0 {
		m.targets = append([]string{cfg.Type}, interactiveTargets...)
		m.target = 0
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.target = (m.target + 1) % len(m.targets)
			m.decode()
			return m, nil

		case "enter":
			m.decode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// decode runs the current input through the codec and keeps the rendered
// result. Values decoded before an error are shown alongside it.
func (m *interactiveModel) decode() {
	m.output, m.summary, m.err = "", "", nil
	if strings.TrimSpace(m.input.Value()) == "" {
		return
	}

	data, err := parseHex(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	t, err := parseTarget(m.targets[m.target])
	if err != nil {
		m.err = err
		return
	}

	values, read, err := decodeAll(data, t, m.cfg.codecOptions()...)
	m.output = renderTree(values, stylePalette)
	m.summary = summary(len(values), read, int64(len(data)))
	if err != nil {
		m.err = fmt.Errorf("at offset %d: %w", read, err)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AMQP Dump"))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(m.targets[m.target]))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.output != "" {
		b.WriteString(m.output)
		b.WriteString("\n")
	}
	if m.summary != "" {
		b.WriteString(helpStyle.Render(m.summary))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter decode • tab switch type • esc quit"))
	return b.String()
}

func runInteractive(cfg *Config) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
