// Package daemon provides the long-running savings-reminder service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/cli"
	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/plan"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr         string
	ReminderCron string
	EventsBuffer int
}

// ProfileSource is the read side the daemon needs from persistence.
type ProfileSource interface {
	LoadProfile() *model.Profile
	SpendingHistory(days int) ([]model.DaySpend, error)
}

// Reminder is one emitted reminder event.
type Reminder struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
	SaveTarget int64     `json:"save_target"` // today's savings goal, whole units
	Currency   string    `json:"currency"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt     time.Time `json:"started_at"`
	Schedule      string    `json:"schedule"`
	LastReminder  *Reminder `json:"last_reminder,omitempty"`
	ReminderCount int64     `json:"reminder_count"`
	HasProfile    bool      `json:"has_profile"`
	Spent14Days   float64   `json:"spent_14_days"`
}

// Service is the daemon runtime: a cron schedule that turns the persisted
// profile into daily savings reminders, plus a loopback HTTP API.
type Service struct {
	cfg    Config
	source ProfileSource
	log    *logrus.Logger

	mu        sync.RWMutex
	startedAt time.Time
	nextID    int64
	last      *Reminder
	count     int64
	reminders []Reminder
}

// New returns a daemon service with the provided config.
func New(cfg Config, source ProfileSource, log *logrus.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7865"
	}
	if cfg.ReminderCron == "" {
		cfg.ReminderCron = "0 9 * * *"
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		cfg:       cfg,
		source:    source,
		log:       log,
		startedAt: time.Now(),
	}
}

// Run starts the HTTP endpoints and the cron schedule until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/v1/reminders", s.handleReminders).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.ReminderCron, s.remindOnce); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", s.cfg.ReminderCron, err)
	}
	c.Start()
	defer c.Stop()

	s.log.WithFields(logrus.Fields{
		"addr":     s.cfg.Addr,
		"schedule": s.cfg.ReminderCron,
	}).Info("reminder daemon started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("daemon http server: %w", err)
	}
}

// remindOnce computes today's savings target from the persisted profile
// and records a reminder. No profile means nothing to remind about.
func (s *Service) remindOnce() {
	profile := s.source.LoadProfile()
	if profile == nil {
		s.log.Info("reminder skipped, no profile yet")
		return
	}

	proj := plan.Project(*profile)
	msg := fmt.Sprintf("Pengingat: sisihkan %s untuk tabungan hari ini.",
		cli.FormatMoney(float64(proj.SavePerDay), profile.Currency))

	s.mu.Lock()
	s.nextID++
	rem := Reminder{
		ID:         s.nextID,
		Timestamp:  time.Now(),
		Message:    msg,
		SaveTarget: proj.SavePerDay,
		Currency:   profile.Currency,
	}
	s.last = &rem
	s.count++
	s.reminders = append(s.reminders, rem)
	if len(s.reminders) > s.cfg.EventsBuffer {
		s.reminders = s.reminders[len(s.reminders)-s.cfg.EventsBuffer:]
	}
	s.mu.Unlock()

	s.log.WithField("save_target", rem.SaveTarget).Info("reminder emitted")
}

func (s *Service) status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:     s.startedAt,
		Schedule:      s.cfg.ReminderCron,
		LastReminder:  s.last,
		ReminderCount: s.count,
	}

	if profile := s.source.LoadProfile(); profile != nil {
		st.HasProfile = true
	}
	if days, err := s.source.SpendingHistory(14); err == nil {
		for _, d := range days {
			st.Spent14Days += d.Total
		}
	}
	return st
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.status())
}

func (s *Service) handleReminders(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	reminders := make([]Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reminders)
}
