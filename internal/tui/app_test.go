package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/chat"
	"github.com/adiwerna/duita/internal/config"
	"github.com/adiwerna/duita/internal/model"
)

type nullStore struct{}

func (nullStore) AppendTurn(model.Turn) error     { return nil }
func (nullStore) SaveProfile(model.Profile) error { return nil }

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testApp(t *testing.T, history []model.Turn) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	session := chat.NewSession(nullStore{}, nil, "formal", quietLog())
	a := NewApp(session, history, config.DefaultConfig(), quietLog())

	// Tests drive the chat screen directly, not the first-run wizard.
	a.needSetup = false
	a.setupForm = nil
	if len(a.messages) == 0 {
		a.messages = append(a.messages, message{sender: model.SenderAI, text: session.Greeting()})
	}
	return a
}

func TestNewApp_RestoresHistory(t *testing.T) {
	history := []model.Turn{
		{Sender: model.SenderAI, Text: "Halo!"},
		{Sender: model.SenderUser, Text: "5000"},
	}
	a := testApp(t, history)

	if len(a.messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(a.messages))
	}
	if a.messages[1].sender != model.SenderUser || a.messages[1].text != "5000" {
		t.Errorf("restored turn = %+v", a.messages[1])
	}
}

func TestUpdate_EnterAdvancesSessionBeforeReplyShows(t *testing.T) {
	a := testApp(t, nil)
	a.input.SetValue("3 juta")

	next, cmd := a.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	a = next.(App)

	if !a.typing {
		t.Error("typing = false after submit")
	}
	if cmd == nil {
		t.Error("no reply command scheduled")
	}
	if a.session.State() != chat.StatePeriod {
		t.Errorf("state = %v, want StatePeriod before reply is shown", a.session.State())
	}
	last := a.messages[len(a.messages)-1]
	if last.sender != model.SenderUser {
		t.Errorf("last visible message from %q, want user turn", last.sender)
	}
}

func TestUpdate_RepliesAppendAfterDelay(t *testing.T) {
	a := testApp(t, nil)
	a.typing = true

	next, _ := a.Update(repliesMsg{lines: []string{"satu", "dua"}})
	a = next.(App)

	if a.typing {
		t.Error("typing still set after replies arrived")
	}
	if len(a.messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(a.messages))
	}
	if a.messages[2].text != "dua" {
		t.Errorf("last reply = %q", a.messages[2].text)
	}
}

func TestUpdate_CtrlRRestartsConversation(t *testing.T) {
	a := testApp(t, nil)
	a.input.SetValue("500 ribu")
	next, _ := a.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	a = next.(App)

	next, _ = a.updateKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	a = next.(App)

	if a.session.State() != chat.StateIncome {
		t.Errorf("state after restart = %v, want StateIncome", a.session.State())
	}
	if len(a.messages) != 1 {
		t.Errorf("messages after restart = %d, want just the greeting", len(a.messages))
	}
	if a.typing {
		t.Error("typing flag survived restart")
	}
}

func TestView_ShowsInputAndHints(t *testing.T) {
	a := testApp(t, nil)
	a.width = 80
	a.height = 24

	out := a.View()
	if !strings.Contains(out, "Ctrl+R") {
		t.Error("view missing keybinding hints")
	}
	if !strings.Contains(out, "duita") {
		t.Error("view missing title")
	}
}

func TestTypingDelay_Bounded(t *testing.T) {
	if d := typingDelay(nil); d != minTypingDelay {
		t.Errorf("empty delay = %v, want %v", d, minTypingDelay)
	}
	long := []string{strings.Repeat("a", 10000)}
	if d := typingDelay(long); d != maxTypingDelay {
		t.Errorf("long delay = %v, want cap %v", d, maxTypingDelay)
	}
	if d := typingDelay([]string{"halo"}); d <= minTypingDelay || d >= maxTypingDelay {
		t.Errorf("delay = %v, want between bounds", d)
	}
}

func TestTypingDelay_Monotonic(t *testing.T) {
	short := typingDelay([]string{"ya"})
	longer := typingDelay([]string{"terima kasih, berikut analisis lengkapnya"})
	if longer < short {
		t.Errorf("delay shrank for longer reply: %v < %v", longer, short)
	}
	if longer-short > time.Second {
		t.Errorf("delay spread too wide: %v", longer-short)
	}
}
