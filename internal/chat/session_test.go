package chat

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/model"
)

type fakeStore struct {
	turns    []model.Turn
	profiles []model.Profile
}

func (f *fakeStore) AppendTurn(t model.Turn) error {
	f.turns = append(f.turns, t)
	return nil
}

func (f *fakeStore) SaveProfile(p model.Profile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestSession() (*Session, *fakeStore) {
	fs := &fakeStore{}
	return NewSession(fs, nil, "formal", quietLog()), fs
}

func TestSession_FullSlotSequence(t *testing.T) {
	s, fs := newTestSession()

	inputs := []string{"5000", "hari", "0", "tidak", "nanti"}
	wantStates := []State{StatePeriod, StateSavings, StateTarget, StateDuration, StateComplete}

	for i, in := range inputs {
		replies := s.Handle(in)
		if len(replies) == 0 {
			t.Fatalf("input %q: no reply", in)
		}
		if s.State() != wantStates[i] {
			t.Fatalf("after %q: state = %v, want %v", in, s.State(), wantStates[i])
		}
	}

	if len(fs.profiles) != 1 {
		t.Fatalf("profile saved %d times, want exactly 1", len(fs.profiles))
	}
	p := fs.profiles[0]
	if p.Income != 5000 || p.Period != model.PerDay || p.SavingsNow != 0 {
		t.Errorf("finalized profile = %+v", p)
	}
	if p.Target != nil {
		t.Errorf("target = %v, want nil after opting out", *p.Target)
	}
	if p.Duration != nil {
		t.Errorf("duration = %+v, want nil after skipping", p.Duration)
	}
}

func TestSession_ReprompStaysOnSlot(t *testing.T) {
	s, _ := newTestSession()

	replies := s.Handle("halo apa kabar")
	if s.State() != StateIncome {
		t.Fatalf("state = %v, want StateIncome after unparsed input", s.State())
	}
	if len(replies) != 1 || replies[0] != msgIncomeRetry {
		t.Errorf("reply = %v, want income retry prompt", replies)
	}

	s.Handle("3 juta")
	if s.State() != StatePeriod {
		t.Fatalf("state = %v, want StatePeriod", s.State())
	}
	s.Handle("kadang-kadang")
	if s.State() != StatePeriod {
		t.Errorf("unknown period advanced the cursor")
	}
}

func TestSession_TargetAndDurationStored(t *testing.T) {
	s, fs := newTestSession()

	for _, in := range []string{"3 juta", "bulan", "200 ribu", "1 juta", "2 bulan"} {
		s.Handle(in)
	}

	if s.State() != StateComplete {
		t.Fatalf("state = %v, want StateComplete", s.State())
	}
	p := fs.profiles[0]
	if p.Target == nil || *p.Target != 1000000 {
		t.Fatalf("target = %v, want 1000000", p.Target)
	}
	if p.Duration == nil || p.Duration.Amount != 2 || p.Duration.Unit != model.PerMonth {
		t.Errorf("duration = %+v, want 2 months", p.Duration)
	}
	if p.SavingsNow != 200000 {
		t.Errorf("savings = %v, want 200000", p.SavingsNow)
	}
}

func TestSession_FreeformOverridesSlot(t *testing.T) {
	s, fs := newTestSession()

	replies := s.Handle("jika penghasilan per hari ku 10000 maka butuh berapa?")
	if len(replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(replies))
	}
	if !strings.Contains(replies[0], "Rekomendasi alokasi") {
		t.Errorf("simulation reply missing allocation section: %q", replies[0])
	}
	if s.State() != StateIncome {
		t.Errorf("state = %v, want cursor unchanged at StateIncome", s.State())
	}
	if len(fs.profiles) != 0 {
		t.Errorf("simulation persisted a profile: %+v", fs.profiles)
	}
}

func TestSession_FreeformCheckedBeforeSlotDispatch(t *testing.T) {
	s, _ := newTestSession()
	s.Handle("3 juta") // now awaiting period

	s.Handle("kalau gaji per bulan 2 juta butuh berapa?")
	if s.State() != StatePeriod {
		t.Errorf("freeform turn moved the cursor: state = %v", s.State())
	}
}

func TestSession_CompleteIsTerminal(t *testing.T) {
	s, fs := newTestSession()
	for _, in := range []string{"5000", "hari", "0", "tidak", "nanti"} {
		s.Handle(in)
	}

	replies := s.Handle("10000")
	if s.State() != StateComplete {
		t.Errorf("completed session re-entered slot filling")
	}
	if len(fs.profiles) != 1 {
		t.Errorf("extra finalize after completion: %d saves", len(fs.profiles))
	}
	if len(replies) != 1 || replies[0] != msgFallback {
		t.Errorf("reply = %v, want fallback", replies)
	}
}

func TestSession_RestartGivesFreshProfile(t *testing.T) {
	s, _ := newTestSession()
	for _, in := range []string{"5000", "hari", "0", "tidak", "nanti"} {
		s.Handle(in)
	}

	s.Restart()
	if s.State() != StateIncome {
		t.Fatalf("state after restart = %v, want StateIncome", s.State())
	}
	if s.Profile().Income != 0 {
		t.Errorf("restart kept old income %v", s.Profile().Income)
	}
}

func TestSession_EveryTurnLogged(t *testing.T) {
	s, fs := newTestSession()

	s.Greeting()
	s.Handle("5000")

	if len(fs.turns) != 3 { // greeting, user input, period prompt
		t.Fatalf("logged turns = %d, want 3", len(fs.turns))
	}
	if fs.turns[0].Sender != model.SenderAI || fs.turns[1].Sender != model.SenderUser || fs.turns[2].Sender != model.SenderAI {
		t.Errorf("turn senders = %v %v %v", fs.turns[0].Sender, fs.turns[1].Sender, fs.turns[2].Sender)
	}
	if fs.turns[1].Text != "5000" {
		t.Errorf("user turn text = %q", fs.turns[1].Text)
	}
}

func TestSession_CurrencyTagFromIncome(t *testing.T) {
	s, _ := newTestSession()
	s.Handle("100 usd")
	if got := s.Profile().Currency; got != "USD" {
		t.Errorf("currency = %q, want USD", got)
	}
}
