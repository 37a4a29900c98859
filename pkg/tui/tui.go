// Package tui implements the interactive drafting flow: pick a
// template, fill in the draft and any structured fields, wait out the
// thinking delay, then review and export the generated letter.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/letteragent/letteragent/pkg/config"
	"github.com/letteragent/letteragent/pkg/export"
	"github.com/letteragent/letteragent/pkg/letter"
	"github.com/letteragent/letteragent/pkg/state"
	"github.com/letteragent/letteragent/pkg/template"
)

type phase int

const (
	phasePick phase = iota
	phaseCompose
	phaseThinking
	phasePreview
)

// generatedMsg carries the finished letter once the thinking delay has
// elapsed.
type generatedMsg struct {
	letter string
}

// fieldInput pairs a template field with its text input.
type fieldInput struct {
	desc  template.FieldDescriptor
	input textinput.Model
}

// Model is the drafting TUI model.
type Model struct {
	cfg config.Config
	st  *state.State
	gen *letter.Generator

	phase  phase
	width  int
	height int

	// Pick
	search    textinput.Model
	cursor    int
	templates []template.Descriptor

	// Compose
	selected   template.Descriptor
	fields     []fieldInput
	body       textarea.Model
	focusIdx   int
	toneIdx    int
	compliance bool

	// Thinking
	spinner spinner.Model

	// Preview
	viewport viewport.Model
	letter   string
	status   string
}

// NewModel creates the drafting model over an already loaded state.
func NewModel(cfg config.Config, st *state.State, gen *letter.Generator) Model {
	search := textinput.New()
	search.Placeholder = "Search templates..."
	search.Prompt = "/ "
	search.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	body := textarea.New()
	body.Placeholder = "Describe what the letter should say..."
	body.SetHeight(8)

	m := Model{
		cfg:     cfg,
		st:      st,
		gen:     gen,
		phase:   phasePick,
		search:  search,
		spinner: s,
		body:    body,
	}
	m.templates = st.Registry().List()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.SetWidth(min(msg.Width-4, 100))
		m.viewport = viewport.New(min(msg.Width-4, 100), max(msg.Height-6, 5))
		if m.letter != "" {
			m.viewport.SetContent(m.letter)
		}
		return m, nil

	case generatedMsg:
		m.letter = msg.letter
		m.viewport.SetContent(m.letter)
		m.phase = phasePreview
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseThinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.phase {
	case phasePick:
		return m.updatePick(msg)
	case phaseCompose:
		return m.updateCompose(msg)
	case phasePreview:
		return m.updatePreview(msg)
	}
	return m, nil
}

func (m Model) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.templates)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.templates) == 0 {
				return m, nil
			}
			m.selectTemplate(m.templates[m.cursor])
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.templates = m.st.Registry().Filter(m.search.Value(), template.CategoryAll)
	if m.cursor >= len(m.templates) {
		m.cursor = 0
	}
	return m, cmd
}

// selectTemplate moves into the compose phase for the chosen template,
// building one text input per custom field.
func (m *Model) selectTemplate(d template.Descriptor) {
	m.selected = d
	m.st.Select(d.ID)
	m.fields = nil
	for _, f := range d.CustomFields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		if in.Placeholder == "" && len(f.Options) > 0 {
			in.Placeholder = strings.Join(f.Options, " | ")
		}
		in.Prompt = ""
		m.fields = append(m.fields, fieldInput{desc: f, input: in})
	}
	m.focusIdx = 0
	m.applyFocus()
	m.phase = phaseCompose
}

// applyFocus focuses the input at focusIdx and blurs the rest. The
// body textarea sits after the last field.
func (m *Model) applyFocus() {
	for i := range m.fields {
		if i == m.focusIdx {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
	if m.focusIdx == len(m.fields) {
		m.body.Focus()
	} else {
		m.body.Blur()
	}
}

func (m Model) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.phase = phasePick
			m.search.Focus()
			return m, nil
		case "tab":
			m.focusIdx = (m.focusIdx + 1) % (len(m.fields) + 1)
			m.applyFocus()
			return m, nil
		case "shift+tab":
			m.focusIdx = (m.focusIdx + len(m.fields)) % (len(m.fields) + 1)
			m.applyFocus()
			return m, nil
		case "ctrl+t":
			m.toneIdx = (m.toneIdx + 1) % len(letter.Tones)
			return m, nil
		case "ctrl+o":
			m.compliance = !m.compliance
			return m, nil
		case "ctrl+g":
			return m.startThinking()
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == len(m.fields) {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.fields[m.focusIdx].input, cmd = m.fields[m.focusIdx].input.Update(msg)
	}
	return m, cmd
}

// startThinking kicks off generation behind the configured delay so
// the letter lands only after the spinner has had its moment.
func (m Model) startThinking() (tea.Model, tea.Cmd) {
	input := m.body.Value()
	if len(m.fields) > 0 {
		values := make(map[string]string, len(m.fields))
		var descs []template.FieldDescriptor
		for _, f := range m.fields {
			values[f.desc.ID] = strings.TrimSpace(f.input.Value())
			descs = append(descs, f.desc)
		}
		input = letter.FlattenFields(descs, values, input)
	}

	req := letter.Request{
		Template:          m.selected,
		UserInput:         input,
		Tone:              letter.Tones[m.toneIdx],
		IncludeCompliance: m.compliance,
		Profile:           m.st.Profile(),
	}

	m.phase = phaseThinking
	gen := m.gen
	return m, tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.cfg.ThinkingDelay(), func(time.Time) tea.Msg {
			return generatedMsg{letter: gen.Generate(req)}
		}),
	)
}

func (m Model) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "e":
			m.phase = phaseCompose
			m.applyFocus()
			return m, nil
		case "s":
			m.status = m.writeOut("letter.txt", func(path string) error {
				return os.WriteFile(path, []byte(m.letter), 0644)
			})
			return m, nil
		case "d":
			m.status = m.writeOut("letter.doc", func(path string) error {
				return export.WriteDoc(path, m.letter)
			})
			return m, nil
		case "h":
			m.status = m.writeOut("letter.html", func(path string) error {
				return export.WriteHTML(path, m.letter)
			})
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) writeOut(path string, write func(string) error) string {
	if err := write(path); err != nil {
		return "error: " + err.Error()
	}
	return "wrote " + path
}

func (m Model) View() string {
	switch m.phase {
	case phasePick:
		return m.viewPick()
	case phaseCompose:
		return m.viewCompose()
	case phaseThinking:
		return fmt.Sprintf("\n  %s AI is analyzing your request...\n", m.spinner.View())
	case phasePreview:
		return m.viewPreview()
	}
	return ""
}

func (m Model) viewPick() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Choose a template"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.templates) == 0 {
		b.WriteString(subtitleStyle.Render("  No templates match."))
	}
	for i, d := range m.templates {
		line := fmt.Sprintf("%s  %s", d.Title, categoryStyle.Render(string(d.Category)))
		if d.IsCustom {
			line += "  " + customTagStyle.Render("custom")
		}
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(normalItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  [↑/↓] Move  [Enter] Select  [Esc] Quit"))
	return b.String()
}

func (m Model) viewCompose() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.selected.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.selected.Description))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := labelStyle
		if i == m.focusIdx {
			label = focusedLabelStyle
		}
		name := f.desc.Label
		if f.desc.Required {
			name += " *"
		}
		b.WriteString(label.Render(name) + f.input.View())
		b.WriteString("\n")
	}
	if len(m.fields) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.body.View())
	b.WriteString("\n\n")

	compliance := "off"
	if m.compliance {
		compliance = "on"
	}
	b.WriteString(fmt.Sprintf("  tone: %s   compliance: %s\n",
		statusStyle.Render(letter.Tones[m.toneIdx]), statusStyle.Render(compliance)))
	b.WriteString(helpStyle.Render("  [Tab] Next field  [Ctrl+T] Tone  [Ctrl+O] Compliance  [Ctrl+G] Generate  [Esc] Back"))
	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generated letter"))
	if m.status != "" {
		b.WriteString("  " + statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(previewStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [s] Save .txt  [d] Word  [h] HTML  [e] Edit  [q] Quit"))
	return b.String()
}

// Run starts the drafting flow.
func Run(cfg config.Config, st *state.State, gen *letter.Generator) error {
	p := tea.NewProgram(
		NewModel(cfg, st, gen),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
