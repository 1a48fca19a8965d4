package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mistakeknot/formshell/internal/formshell/form"
	pkgtui "github.com/mistakeknot/formshell/pkg/tui"
)

// Options configures a Model beyond what the definition carries.
type Options struct {
	// Endpoint overrides the definition's endpoint.
	Endpoint string
	// AdvanceDelay is the pause between a valid answer and the automatic
	// advance. Zero keeps the default.
	AdvanceDelay time.Duration
	// SubmitTimeout bounds the submission request.
	SubmitTimeout time.Duration
	// Theme selects the glamour style for markdown panels. Empty means dark.
	Theme string
	// OnComplete receives the submission result.
	OnComplete func(any)
}

// advanceMsg carries a scheduled-advance token back into Update after the
// answer delay.
type advanceMsg struct {
	token int
}

type submitResultMsg struct {
	result any
	err    error
}

// Model drives one form session: Welcome, one screen per visible question,
// and a Summary screen with submission.
type Model struct {
	ctrl          *form.Controller
	keys          pkgtui.CommonKeys
	helpOverlay   pkgtui.HelpOverlay
	input         AnswerBuffer
	mode          string
	status        string
	optionIndex   int
	confirmReset  bool
	submitting    bool
	submitted     bool
	width         int
	height        int
	warnings      []string
	submitTimeout time.Duration
	quitOnSubmit  bool
	hasEndpoint   bool
	theme         string
}

// NewModel builds a model and its controller from a parsed definition.
func NewModel(def *form.Definition, opts Options) (Model, error) {
	ctrl, warnings, err := form.NewController(def, form.ControllerOptions{
		Endpoint:     opts.Endpoint,
		OnComplete:   opts.OnComplete,
		AdvanceDelay: opts.AdvanceDelay,
	})
	if err != nil {
		return Model{}, err
	}
	timeout := opts.SubmitTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return Model{
		ctrl:          ctrl,
		keys:          pkgtui.NewCommonKeys(),
		helpOverlay:   pkgtui.NewHelpOverlay(),
		input:         NewAnswerBuffer(),
		mode:          "welcome",
		width:         100,
		height:        32,
		warnings:      warnings,
		submitTimeout: timeout,
		quitOnSubmit:  true,
		hasEndpoint:   opts.Endpoint != "" || def.Endpoint != "",
		theme:         opts.Theme,
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case advanceMsg:
		if m.ctrl.ConfirmAdvance(msg.token) {
			m.status = ""
			if m.ctrl.Session().Completed() {
				m.mode = "summary"
			} else {
				m.loadInput()
			}
		}
		return m, nil
	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = "Submit failed: " + msg.err.Error()
			return m, nil
		}
		m.submitted = true
		m.status = "Submitted"
		if m.quitOnSubmit {
			return m, tea.Quit
		}
		return m, nil
	case pkgtui.ToggleHelpMsg:
		m.toggleHelp()
		return m, nil
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmReset {
		switch {
		case key.Matches(msg, m.keys.Select):
			m.confirmReset = false
			_ = m.ctrl.Reset()
			m.mode = "welcome"
			m.input.Clear()
			m.status = "Form reset"
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
			m.confirmReset = false
		}
		return m, nil
	}
	if m.helpOverlay.Visible {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.toggleHelp()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}
	if cmd := pkgtui.HandleCommon(msg, m.keys); cmd != nil {
		return m, cmd
	}
	if key.Matches(msg, m.keys.Reset) {
		m.confirmReset = true
		return m, nil
	}
	switch m.mode {
	case "welcome":
		return m.handleWelcomeKey(msg)
	case "answer":
		return m.handleAnswerKey(msg)
	case "summary":
		return m.handleSummaryKey(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		if err := m.ctrl.Start(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = "answer"
		m.loadInput()
	}
	return m, nil
}

func (m Model) handleAnswerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.ctrl.Session()
	step := session.Current()
	if step == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.ctrl.Back(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.loadInput()
		return m, nil
	case key.Matches(msg, m.keys.Skip):
		if err := m.ctrl.Skip(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.scheduleAdvance("Skipped")
	}
	// Bracket navigation is reserved for steps without free-text input,
	// where [ and ] are never part of an answer.
	typing := step.Field.Type() != form.TypeChoice && step.Field.Type() != form.TypeYesNo
	if !typing {
		switch {
		case key.Matches(msg, m.keys.Prev):
			if err := m.ctrl.Back(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = ""
			m.loadInput()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.advanceAnswered(step)
		}
	}
	switch step.Field.Type() {
	case form.TypeChoice:
		return m.handleChoiceKey(msg, step)
	case form.TypeYesNo:
		return m.handleYesNoKey(msg)
	default:
		return m.handleTextKey(msg)
	}
}

// advanceAnswered moves forward past a step that already holds an answer,
// without re-running the answer delay.
func (m Model) advanceAnswered(step *form.Step) (tea.Model, tea.Cmd) {
	if !step.Answered {
		m.status = "Answer or skip this question first"
		return m, nil
	}
	if m.ctrl.ConfirmAdvance(m.ctrl.ScheduleAdvance()) {
		m.status = ""
		if m.ctrl.Session().Completed() {
			m.mode = "summary"
		} else {
			m.loadInput()
		}
	}
	return m, nil
}

func (m Model) handleChoiceKey(msg tea.KeyMsg, step *form.Step) (tea.Model, tea.Cmd) {
	options := step.Field.Options()
	switch {
	case key.Matches(msg, m.keys.NavUp):
		if m.optionIndex > 0 {
			m.optionIndex--
		}
		return m, nil
	case key.Matches(msg, m.keys.NavDown):
		if m.optionIndex < len(options)-1 {
			m.optionIndex++
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.answer(m.optionIndex + 1)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if n, err := strconv.Atoi(string(msg.Runes)); err == nil && n >= 1 && n <= len(options) {
			return m.answer(n)
		}
	}
	return m, nil
}

func (m Model) handleYesNoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if yes, ok := parseYesNoKey(string(msg.Runes)); ok {
			if yes {
				return m.answer("y")
			}
			return m.answer("n")
		}
	}
	if key.Matches(msg, m.keys.Select) && !m.input.Empty() {
		return m.answer(m.input.Text())
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.input.InsertRune(r)
		}
	}
	return m, nil
}

func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.answer(m.input.Text())
	case "backspace":
		if msg.Alt {
			m.input.DeleteWordLeft()
		} else {
			m.input.Backspace()
		}
	case "left":
		if msg.Alt {
			m.input.MoveWordLeft()
		} else {
			m.input.MoveLeft()
		}
	case "right":
		if msg.Alt {
			m.input.MoveWordRight()
		} else {
			m.input.MoveRight()
		}
	case "alt+left":
		m.input.MoveWordLeft()
	case "alt+right":
		m.input.MoveWordRight()
	case "alt+backspace":
		m.input.DeleteWordLeft()
	case "home", "ctrl+a":
		m.input.MoveHome()
	case "end", "ctrl+e":
		m.input.MoveEnd()
	case " ", "space":
		m.input.InsertRune(' ')
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.input.InsertRune(r)
			}
		}
	}
	return m, nil
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.ctrl.Back(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = "answer"
		m.status = ""
		m.loadInput()
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Select):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.status = "Submitting..."
		ctrl := m.ctrl
		timeout := m.submitTimeout
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			result, err := ctrl.Submit(ctx)
			return submitResultMsg{result: result, err: err}
		}
	}
	return m, nil
}

// answer validates the candidate and, on success, schedules the delayed
// advance so the confirmation stays on screen briefly.
func (m Model) answer(candidate any) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Answer(candidate); err != nil {
		m.status = err.Error()
		return m, nil
	}
	step := m.ctrl.Session().Current()
	return m.scheduleAdvance("✓ " + step.Field.Format())
}

func (m Model) scheduleAdvance(status string) (tea.Model, tea.Cmd) {
	m.status = status
	token := m.ctrl.ScheduleAdvance()
	return m, tea.Tick(m.ctrl.AdvanceDelay(), func(time.Time) tea.Msg {
		return advanceMsg{token: token}
	})
}

// toggleHelp keeps the overlay widget and the session's help flag in
// lockstep in every screen, so the command surface stays suspended for as
// long as the overlay is visible.
func (m *Model) toggleHelp() {
	m.helpOverlay.Toggle()
	if m.helpOverlay.Visible {
		_ = m.ctrl.Help()
	} else {
		_ = m.ctrl.Continue()
	}
}

// loadInput primes the buffer and option cursor from the current field's
// stored value so Back re-presents the earlier answer.
func (m *Model) loadInput() {
	m.input.Clear()
	m.optionIndex = 0
	step := m.ctrl.Session().Current()
	if step == nil {
		return
	}
	value := step.Field.Value()
	if value.IsAbsent() {
		return
	}
	if step.Field.Type() == form.TypeChoice {
		for i, opt := range step.Field.Options() {
			if opt.Label == step.Field.Format() {
				m.optionIndex = i
				break
			}
		}
		return
	}
	if step.Field.Type() != form.TypeYesNo {
		m.input.SetText(value.Text())
	}
}

func (m Model) View() string {
	def := m.ctrl.Definition()
	if m.confirmReset {
		header := renderHeader(def.Title, "confirm")
		body := padBodyToHeight(renderConfirmOverlay("Reset the form? All answers will be lost."), m.height-2)
		return renderFrame(header, body, renderFooter("enter confirm  esc cancel", m.status))
	}
	if m.helpOverlay.Visible {
		header := renderHeader(def.Title, "help")
		body := padBodyToHeight(m.helpOverlay.Render(m.keys, m.helpExtras(), m.width), m.height-2)
		return renderFrame(header, body, renderFooter(defaultKeys(), m.status))
	}
	var body string
	switch m.mode {
	case "welcome":
		body = renderSingleColumnLayout("WELCOME", m.welcomeContent(), m.width, m.height-2)
	case "summary":
		body = renderSingleColumnLayout("SUMMARY", m.summaryContent(), m.width, m.height-2)
	default:
		body = m.renderAnswerLayout()
	}
	header := renderHeader(def.Title, m.mode)
	footer := renderFooter(defaultKeys(), m.status)
	return renderFrame(header, padBodyToHeight(body, m.height-2), footer)
}

func (m Model) renderAnswerLayout() string {
	contentHeight := m.height - 2
	question := m.questionContent()
	switch layoutMode(m.width) {
	case LayoutModeSingle:
		return renderSingleColumnLayout(m.questionTitle(), question, m.width, contentHeight)
	case LayoutModeStacked:
		return renderStackedLayout("STEPS", m.stepsContent(), m.questionTitle(), question, m.width, contentHeight)
	default:
		return renderDualColumnLayout("STEPS", m.stepsContent(), m.questionTitle(), question, m.width, contentHeight)
	}
}

func (m Model) questionTitle() string {
	session := m.ctrl.Session()
	_, total, _ := session.Progress()
	return fmt.Sprintf("QUESTION %d/%d", session.Ordinal(), total)
}

func (m Model) welcomeContent() string {
	def := m.ctrl.Definition()
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(def.Title)
	b.WriteString("\n\n")
	if strings.TrimSpace(def.Subtitle) != "" {
		b.WriteString(def.Subtitle)
		b.WriteString("\n\n")
	}
	_, total, _ := m.ctrl.Session().Progress()
	b.WriteString(fmt.Sprintf("%d questions.\n\n", total))
	for _, warning := range m.warnings {
		b.WriteString("Warning: ")
		b.WriteString(warning)
		b.WriteString("\n")
	}
	b.WriteString("\nPress Enter to begin.\n")
	return strings.Join(renderMarkdownLines(b.String(), m.contentWidth(), m.theme), "\n")
}

func (m Model) questionContent() string {
	session := m.ctrl.Session()
	step := session.Current()
	if step == nil {
		return ""
	}
	field := step.Field
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(field.Label())
	if !field.Required() {
		b.WriteString(" (optional)")
	}
	b.WriteString("\n\n")
	if strings.TrimSpace(field.Description()) != "" {
		b.WriteString(field.Description())
		b.WriteString("\n\n")
	}
	switch field.Type() {
	case form.TypeChoice:
		b.WriteString("```\n")
		for i, opt := range field.Options() {
			marker := "[ ]"
			if i == m.optionIndex {
				marker = "[*]"
			}
			fmt.Fprintf(&b, "%s %d) %s\n", marker, i+1, opt.Label)
		}
		b.WriteString("```\n")
	case form.TypeMultipleChoice:
		b.WriteString("```\n")
		for i, opt := range field.Options() {
			fmt.Fprintf(&b, "%d) %s\n", i+1, opt.Label)
		}
		b.WriteString("```\n")
		b.WriteString("Enter numbers separated by commas.\n\n")
		b.WriteString(m.inputBox())
	case form.TypeYesNo:
		b.WriteString("```\n> Y / N\n```\n")
	case form.TypeRating:
		b.WriteString("Rate from 1 to 5.\n\n")
		b.WriteString(m.inputBox())
	default:
		b.WriteString(m.inputBox())
	}
	if reason := field.Err(); reason != "" {
		b.WriteString("\nError: ")
		b.WriteString(reason)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.progressLine())
	return strings.Join(renderMarkdownLines(b.String(), m.contentWidth(), m.theme), "\n")
}

func (m Model) inputBox() string {
	line := m.input.Render()
	width := max(20, visibleWidth(line))
	border := "+" + strings.Repeat("-", width+2) + "+"
	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(border)
	b.WriteString("\n| ")
	b.WriteString(padRight(line, width))
	b.WriteString(" |\n")
	b.WriteString(border)
	b.WriteString("\n```\n")
	return b.String()
}

func (m Model) progressLine() string {
	session := m.ctrl.Session()
	answered, total, percent := session.Progress()
	barWidth := 20
	filled := barWidth * percent / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	line := fmt.Sprintf("`%s` %d/%d (%d%%)", bar, answered, total, percent)
	if eta, ok := session.EstimatedRemaining(); ok && eta > 0 {
		line += fmt.Sprintf(" · ~%s remaining", eta.Round(time.Second))
	}
	return line + "\n"
}

func (m Model) stepsContent() string {
	session := m.ctrl.Session()
	current := session.Current()
	var b strings.Builder
	for _, step := range session.VisibleSteps() {
		marker := "·"
		switch {
		case step == current:
			marker = ">"
		case step.Answered && step.Field.Value().IsAbsent():
			marker = "−"
		case step.Answered:
			marker = "✓"
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(step.Field.Label())
		b.WriteString("\n")
	}
	return wordwrap.String(b.String(), max(10, int(float64(m.width)*0.3)-4))
}

func (m Model) summaryContent() string {
	session := m.ctrl.Session()
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	for _, step := range session.VisibleSteps() {
		formatted := step.Field.Format()
		if formatted == "" {
			formatted = "(skipped)"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", step.Field.Label(), formatted)
	}
	b.WriteString("\n")
	switch {
	case m.submitted:
		b.WriteString("Submitted. Press ctrl+c to exit.\n")
	case m.hasEndpoint:
		b.WriteString("Press Enter or Ctrl+D to submit · Esc to go back · Ctrl+R to reset.\n")
	default:
		b.WriteString("Press Enter or Ctrl+D to finish · Esc to go back · Ctrl+R to reset.\n")
	}
	return strings.Join(renderMarkdownLines(b.String(), m.contentWidth(), m.theme), "\n")
}

func (m Model) contentWidth() int {
	if layoutMode(m.width) == LayoutModeDual {
		return max(20, m.width-int(float64(m.width)*0.3)-9)
	}
	return max(20, m.width-6)
}

func (m Model) helpExtras() []pkgtui.HelpBinding {
	return []pkgtui.HelpBinding{
		{Key: "y / n", Description: "answer yes/no questions"},
		{Key: "1-9", Description: "pick a choice directly"},
		{Key: "[ / ]", Description: "revisit answered option steps"},
	}
}

func defaultKeys() string {
	return "enter answer  ctrl+s skip  esc back  ctrl+d submit  ctrl+r reset  F1 help  ctrl+c quit"
}

func parseYesNoKey(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "y", "1":
		return true, true
	case "n", "2":
		return false, true
	default:
		return false, false
	}
}
