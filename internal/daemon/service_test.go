package daemon

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/model"
)

type fakeSource struct {
	profile *model.Profile
	days    []model.DaySpend
}

func (f *fakeSource) LoadProfile() *model.Profile { return f.profile }

func (f *fakeSource) SpendingHistory(int) ([]model.DaySpend, error) { return f.days, nil }

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRemindOnce_NoProfileIsSkipped(t *testing.T) {
	s := New(Config{}, &fakeSource{}, quietLog())

	s.remindOnce()

	st := s.status()
	if st.ReminderCount != 0 {
		t.Errorf("reminder count = %d, want 0 without a profile", st.ReminderCount)
	}
	if st.LastReminder != nil {
		t.Errorf("last reminder = %+v, want nil", st.LastReminder)
	}
}

func TestRemindOnce_UsesDailySaveTarget(t *testing.T) {
	src := &fakeSource{
		profile: &model.Profile{Income: 3000000, Period: model.PerMonth, Currency: "IDR"},
	}
	s := New(Config{}, src, quietLog())

	s.remindOnce()
	s.remindOnce()

	st := s.status()
	if st.ReminderCount != 2 {
		t.Fatalf("reminder count = %d, want 2", st.ReminderCount)
	}
	if st.LastReminder == nil {
		t.Fatal("last reminder is nil")
	}
	if st.LastReminder.SaveTarget != 25000 {
		t.Errorf("save target = %d, want 25000", st.LastReminder.SaveTarget)
	}
	if !st.HasProfile {
		t.Error("HasProfile = false with a stored profile")
	}
}

func TestStatus_SumsSpendingWindow(t *testing.T) {
	src := &fakeSource{
		days: []model.DaySpend{
			{Date: time.Now(), Total: 5000},
			{Date: time.Now(), Total: 2500},
		},
	}
	s := New(Config{}, src, quietLog())

	if got := s.status().Spent14Days; got != 7500 {
		t.Errorf("Spent14Days = %v, want 7500", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{}, &fakeSource{}, nil)
	if s.cfg.Addr == "" || s.cfg.ReminderCron == "" {
		t.Errorf("defaults not applied: %+v", s.cfg)
	}
	if s.cfg.EventsBuffer < 1 {
		t.Errorf("events buffer = %d", s.cfg.EventsBuffer)
	}
}

func TestReminderBuffer_Bounded(t *testing.T) {
	src := &fakeSource{
		profile: &model.Profile{Income: 100000, Period: model.PerDay, Currency: "IDR"},
	}
	s := New(Config{EventsBuffer: 3}, src, quietLog())

	for i := 0; i < 10; i++ {
		s.remindOnce()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.reminders) != 3 {
		t.Errorf("buffered reminders = %d, want 3", len(s.reminders))
	}
	if s.reminders[2].ID != 10 {
		t.Errorf("newest reminder ID = %d, want 10", s.reminders[2].ID)
	}
}
