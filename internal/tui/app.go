// Package tui provides the interactive Bubble Tea chat interface for duita.
package tui

import (
	"strings"
	"time"

	"github.com/adiwerna/duita/internal/chat"
	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/config"
	"github.com/adiwerna/duita/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// repliesMsg delivers assistant responses after the typing delay.
type repliesMsg struct {
	lines []string
}

type message struct {
	sender model.Sender
	text   string
}

const (
	minTypingDelay = 400 * time.Millisecond
	maxTypingDelay = 1500 * time.Millisecond

	// Approximate header + input + status lines when laying out the log.
	chromeHeight = 7
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent)
	aiStyle    = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorGreen)
	bodyStyle  = lipgloss.NewStyle().Foreground(cli.ColorText)
	hintStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	waitStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

// App is the root Bubble Tea model for the chat screen.
type App struct {
	session *chat.Session
	cfg     config.Config
	log     *logrus.Logger

	messages []message
	input    textinput.Model
	spinner  spinner.Model
	typing   bool
	pending  []string

	width  int
	height int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp builds the chat model. history seeds the visible log so a
// returning user sees the previous conversation; when it is empty the
// session greeting opens the log instead.
func NewApp(session *chat.Session, history []model.Turn, cfg config.Config, log *logrus.Logger) App {
	if log == nil {
		log = logrus.New()
	}

	ti := textinput.New()
	ti.Placeholder = "Tulis pesan..."
	ti.CharLimit = 280
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	a := App{
		session:   session,
		cfg:       cfg,
		log:       log,
		input:     ti,
		spinner:   sp,
		needSetup: !config.Exists(),
	}

	for _, turn := range history {
		a.messages = append(a.messages, message{sender: turn.Sender, text: turn.Text})
	}

	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
	} else if len(a.messages) == 0 {
		a.messages = append(a.messages, message{sender: model.SenderAI, text: session.Greeting()})
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, a.spinner.Tick}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 6
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		return a.updateKey(msg)

	case repliesMsg:
		a.typing = false
		a.pending = nil
		for _, line := range msg.lines {
			a.messages = append(a.messages, message{sender: model.SenderAI, text: line})
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "ctrl+r":
		a.session.Restart()
		a.typing = false
		a.pending = nil
		a.messages = []message{{sender: model.SenderAI, text: a.session.Greeting()}}
		a.input.Reset()
		return a, nil

	case "enter":
		text := strings.TrimSpace(a.input.Value())
		if text == "" || a.typing {
			return a, nil
		}
		a.input.Reset()
		a.messages = append(a.messages, message{sender: model.SenderUser, text: text})

		// State advances immediately; the delay only paces the visible reply.
		a.pending = a.session.Handle(text)
		a.typing = true
		return a, replyAfter(typingDelay(a.pending), a.pending)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.log.WithError(err).Warn("could not save config")
		}
		a.session.SetTone(a.cfg.Chat.Tone)
		a.needSetup = false
		a.setupForm = nil
		if len(a.messages) == 0 {
			a.messages = append(a.messages, message{sender: model.SenderAI, text: a.session.Greeting()})
		}
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		if len(a.messages) == 0 {
			a.messages = append(a.messages, message{sender: model.SenderAI, text: a.session.Greeting()})
		}
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	width := a.width
	if width < 40 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("  duita"))
	b.WriteString(hintStyle.Render("  asisten keuangan pribadi"))
	b.WriteString("\n\n")
	b.WriteString(a.renderLog(width))
	b.WriteString("\n")

	if a.typing {
		b.WriteString("  ")
		b.WriteString(a.spinner.View())
		b.WriteString(waitStyle.Render(" mengetik..."))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("  Enter kirim · Ctrl+R mulai ulang · Esc keluar"))
	return b.String()
}

// renderLog renders the newest messages that fit the terminal height.
func (a App) renderLog(width int) string {
	wrap := bodyStyle.Width(width - 12)

	var lines []string
	for _, m := range a.messages {
		label := aiStyle.Render("Duita")
		if m.sender == model.SenderUser {
			label = userStyle.Render("Anda")
		}
		block := "  " + label + "\n" + indent(wrap.Render(m.text), "  ")
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}

	visible := a.height - chromeHeight
	if a.typing {
		visible--
	}
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	return strings.Join(lines, "\n")
}

func indent(s, prefix string) string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = prefix + p
	}
	return strings.Join(parts, "\n")
}

func typingDelay(replies []string) time.Duration {
	n := 0
	for _, r := range replies {
		n += len(r)
	}
	d := minTypingDelay + time.Duration(n)*4*time.Millisecond
	if d > maxTypingDelay {
		d = maxTypingDelay
	}
	return d
}

func replyAfter(d time.Duration, lines []string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return repliesMsg{lines: lines}
	})
}
