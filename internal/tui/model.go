package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/session"
)

// resultMsg carries the completion of a session command back into Update
type resultMsg struct{ msg session.Msg }

type focusID int

const (
	focusInput focusID = iota
	focusControls
)

const historyRows = 8

// Model is the root Bubble Tea model
type Model struct {
	ctx   context.Context
	exec  *session.Executor
	state session.State

	input   textarea.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  styles

	focus    focusID
	showHelp bool
	cursor   int
	width    int
	height   int
}

// New creates the model for state. Commands run through exec with ctx.
func New(ctx context.Context, exec *session.Executor, state session.State) Model {
	input := textarea.New()
	input.Placeholder = "Type the text to translate..."
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.SetValue(state.InputText)
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		exec:    exec,
		state:   state,
		input:   input,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeys(),
		styles:  newStyles(state.DarkMode),
		focus:   focusInput,
	}
}

// State returns the current session state
func (m Model) State() session.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	_, cmds := session.Reduce(m.state, session.Init{})
	batch := []tea.Cmd{textarea.Blink}
	for _, c := range cmds {
		batch = append(batch, m.execute(c))
	}
	return tea.Batch(batch...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.SetWidth(max(msg.Width-8, 20))
		return m, nil

	case resultMsg:
		return m.dispatch(msg.msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Focus) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.focus == focusInput {
		switch msg.String() {
		case "ctrl+s":
			return m.dispatch(session.Translate{})
		case "ctrl+o":
			return m.dispatch(session.Swap{})
		case "ctrl+r":
			return m.dispatch(session.VoiceInput{})
		}
		if key.Matches(msg, m.keys.Focus) {
			m.focus = focusControls
			m.input.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.state.InputText {
			var editCmd tea.Cmd
			m, editCmd = m.dispatch(session.EditInput{Text: v})
			return m, tea.Batch(cmd, editCmd)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Translate):
		return m.dispatch(session.Translate{})
	case key.Matches(msg, m.keys.Swap):
		return m.dispatch(session.Swap{})
	case key.Matches(msg, m.keys.Voice):
		return m.dispatch(session.VoiceInput{})
	case key.Matches(msg, m.keys.Theme):
		return m.dispatch(session.ToggleTheme{})
	case key.Matches(msg, m.keys.NextSource):
		return m.dispatch(session.SelectSource{Code: cycle(language.Sources(), m.state.SourceLanguage, 1)})
	case key.Matches(msg, m.keys.PrevSource):
		return m.dispatch(session.SelectSource{Code: cycle(language.Sources(), m.state.SourceLanguage, -1)})
	case key.Matches(msg, m.keys.NextTarget):
		return m.dispatch(session.SelectTarget{Code: cycle(language.Targets(), m.state.TargetLanguage, 1)})
	case key.Matches(msg, m.keys.PrevTarget):
		return m.dispatch(session.SelectTarget{Code: cycle(language.Targets(), m.state.TargetLanguage, -1)})
	case key.Matches(msg, m.keys.Up):
		if m.cursor < len(m.state.History)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Restore):
		return m.dispatch(session.SelectHistory{Index: m.cursor})
	}
	return m, nil
}

// dispatch feeds msg through the reducer and schedules the resulting commands
func (m Model) dispatch(msg session.Msg) (Model, tea.Cmd) {
	wasBusy := m.busy()

	state, cmds := session.Reduce(m.state, msg)
	m.state = state

	if m.input.Value() != state.InputText {
		m.input.SetValue(state.InputText)
	}
	m.styles = newStyles(state.DarkMode)
	if m.cursor >= len(state.History) {
		m.cursor = max(len(state.History)-1, 0)
	}

	batch := make([]tea.Cmd, 0, len(cmds)+1)
	for _, c := range cmds {
		batch = append(batch, m.execute(c))
	}
	if !wasBusy && m.busy() {
		batch = append(batch, m.spinner.Tick)
	}
	return m, tea.Batch(batch...)
}

// execute runs a session command off the event loop
func (m Model) execute(cmd session.Command) tea.Cmd {
	exec, ctx := m.exec, m.ctx
	return func() tea.Msg {
		if msg := exec.Execute(ctx, cmd); msg != nil {
			return resultMsg{msg: msg}
		}
		return nil
	}
}

func (m Model) busy() bool {
	return m.state.InProgress() || m.state.Listening
}

// cycle returns the language step positions away from current
func cycle(langs []language.Language, current language.Code, step int) language.Code {
	if len(langs) == 0 {
		return current
	}
	idx := 0
	for i, l := range langs {
		if l.Code == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(langs)) % len(langs)
	return langs[idx].Code
}

func (m Model) View() string {
	v := session.Render(m.state)
	st := m.styles

	if m.showHelp {
		return st.App.Render(lipgloss.JoinVertical(lipgloss.Left,
			st.Title.Render(v.Title+" - keys"),
			"",
			m.help.FullHelpView(m.keys.FullHelp()),
			"",
			st.Muted.Render("? or esc to close"),
		))
	}

	header := st.Title.Render(v.Title)
	theme := st.Muted.Render("(" + string(v.Theme) + ")")

	swap := "⇄"
	if !v.Swap.Enabled {
		swap = st.Disabled.Render(swap)
	}
	languages := fmt.Sprintf("%s %s  %s  %s %s",
		st.Label.Render(v.Source.Label+":"), optionLabel(v.Source),
		swap,
		st.Label.Render(v.Target.Label+":"), optionLabel(v.Target),
	)

	inputPane := st.Pane
	if m.focus == focusInput {
		inputPane = st.PaneActive
	}
	input := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render(v.Input.Label),
		inputPane.Render(m.input.View()),
	)

	actions := st.Button.Render("[ " + v.Translate.Label + " ]")
	if !v.Translate.Enabled {
		actions = m.spinner.View() + " " + st.Disabled.Render(v.Translate.Label)
	}
	if m.state.Listening {
		actions += "  " + m.spinner.View() + " " + v.Mic.Tooltip
	} else if !v.Mic.Enabled {
		actions += "  " + st.Muted.Render(v.Mic.Tooltip)
	}

	outWidth := max(m.width-8, 20)
	output := lipgloss.JoinVertical(lipgloss.Left,
		st.Label.Render(v.Output.Label),
		st.Pane.Width(outWidth).Render(v.Output.Text),
	)

	parts := []string{header + " " + theme, "", languages, "", input, actions, output}
	if v.Error != "" {
		parts = append(parts, st.Error.Render(v.Error))
	}
	parts = append(parts, "", m.historyView(v), "", m.help.ShortHelpView(m.keys.ShortHelp()))

	return st.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) historyView(v session.View) string {
	st := m.styles

	if v.HistoryLoading {
		return st.Muted.Render("Loading history...")
	}
	if len(v.History) == 0 {
		return st.Muted.Render("No translations yet")
	}

	start := 0
	if m.cursor >= historyRows {
		start = m.cursor - historyRows + 1
	}
	end := min(start+historyRows, len(v.History))

	var b strings.Builder
	b.WriteString(st.Label.Render(fmt.Sprintf("History (%d)", len(v.History))))
	for _, row := range v.History[start:end] {
		line := fmt.Sprintf("%s  %s → %s", row.Languages, oneLine(row.Input), oneLine(row.Translated))
		b.WriteString("\n")
		if row.Index == m.cursor && m.focus == focusControls {
			b.WriteString(st.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}

func optionLabel(s session.Selector) string {
	if i := s.Index(); i >= 0 {
		return s.Options[i].Label
	}
	return string(s.Value)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
