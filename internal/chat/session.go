// Package chat drives the slot-filling conversation that collects a
// financial profile and reports a budget recommendation.
package chat

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adiwerna/duita/internal/model"
	"github.com/adiwerna/duita/internal/parse"
)

// State is the slot the session is waiting on.
type State int

// Slot-filling states, in asking order.
const (
	StateIncome State = iota
	StatePeriod
	StateSavings
	StateTarget
	StateDuration
	StateComplete
)

// Store is what the session needs from persistence: the append-only log
// and the profile row. Failures are logged and never interrupt the
// conversation.
type Store interface {
	AppendTurn(model.Turn) error
	SaveProfile(model.Profile) error
}

// Simulation-trigger pattern: a conditional or question marker together
// with an income reference. Checked before slot dispatch on every turn.
var (
	questionRe = regexp.MustCompile(`jika|kalau|berapa|butuh`)
	incomeRe   = regexp.MustCompile(`penghasil|gaji`)
	targetRe   = regexp.MustCompile(`(?i)(?:mencapai|target|butuh|untuk)\s+([0-9.,a-z ]+)`)
)

// Session is one conversation: an explicit state cursor plus the profile
// being filled. One session is active at a time; a completed session stays
// terminal until Restart.
type Session struct {
	state   State
	profile model.Profile
	store   Store
	vocab   *parse.Vocab
	tone    string
	log     *logrus.Logger
}

// NewSession starts a fresh session in the income slot.
func NewSession(store Store, vocab *parse.Vocab, tone string, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		state:   StateIncome,
		profile: model.NewProfile(),
		store:   store,
		vocab:   vocab,
		tone:    tone,
		log:     log,
	}
}

// State returns the current slot cursor.
func (s *Session) State() State { return s.state }

// SetTone switches the reply tone for subsequent responses.
func (s *Session) SetTone(tone string) { s.tone = tone }

// Profile returns a copy of the profile as filled so far.
func (s *Session) Profile() model.Profile { return s.profile }

// Restart discards the session state and begins again at the income slot
// with a fresh profile. The previously persisted profile is untouched
// until the new session finalizes, at which point it is overwritten.
func (s *Session) Restart() {
	s.state = StateIncome
	s.profile = model.NewProfile()
}

// Greeting returns the opening prompt and records it in the log.
func (s *Session) Greeting() string {
	return s.reply(msgWelcome)
}

// Handle processes one user turn and returns the responses, in order.
// The user turn is logged before interpretation; every response is logged
// after being produced, whichever branch produced it.
func (s *Session) Handle(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	s.record(model.SenderUser, text)

	if err := s.vocab.Learn(text); err != nil {
		s.log.WithError(err).Warn("vocab learn failed")
	}

	lower := strings.ToLower(text)

	// Freeform simulation overrides slot dispatch for this single turn;
	// the cursor and the profile under construction stay put.
	if questionRe.MatchString(lower) && incomeRe.MatchString(lower) {
		return s.simulate(text)
	}

	switch s.state {
	case StateIncome:
		return s.handleIncome(text)
	case StatePeriod:
		return s.handlePeriod(lower)
	case StateSavings:
		return s.handleSavings(text)
	case StateTarget:
		return s.handleTarget(text, lower)
	case StateDuration:
		return s.handleDuration(text, lower)
	default:
		// Terminal: the session does not silently restart itself.
		if questionRe.MatchString(lower) {
			return s.simulate(text)
		}
		return []string{s.reply(msgFallback)}
	}
}

func (s *Session) handleIncome(text string) []string {
	amt := parse.Parse(text)
	if !amt.Found || amt.Value == 0 {
		return []string{s.reply(msgIncomeRetry)}
	}
	s.profile.Income = amt.Value
	s.profile.Currency = amt.Currency
	s.state = StatePeriod
	return []string{s.reply(msgAskPeriod)}
}

func (s *Session) handlePeriod(lower string) []string {
	switch {
	case strings.Contains(lower, "hari"):
		s.profile.Period = model.PerDay
	case strings.Contains(lower, "bulan"):
		s.profile.Period = model.PerMonth
	case strings.Contains(lower, "tahun"):
		s.profile.Period = model.PerYear
	default:
		return []string{s.reply(msgPeriodRetry)}
	}
	s.state = StateSavings
	return []string{s.reply(msgAskSavings)}
}

func (s *Session) handleSavings(text string) []string {
	amt := parse.Parse(text)
	if !amt.Found {
		return []string{s.reply(msgSavingsRetry)}
	}
	s.profile.SavingsNow = amt.Value
	s.state = StateTarget
	return []string{s.reply(msgAskTarget)}
}

func (s *Session) handleTarget(text, lower string) []string {
	if strings.Contains(lower, "tidak") {
		s.profile.Target = nil
		s.state = StateDuration
		return []string{s.reply(msgAskDurationNoTarget)}
	}
	amt := parse.Parse(text)
	if !amt.Found || amt.Value == 0 {
		return []string{s.reply(msgTargetRetry)}
	}
	v := amt.Value
	s.profile.Target = &v
	s.state = StateDuration
	return []string{s.reply(msgAskDuration)}
}

func (s *Session) handleDuration(text, lower string) []string {
	if strings.Contains(lower, "nanti") {
		s.profile.Duration = nil
		return s.finalize()
	}
	amt := parse.Parse(text)
	if !amt.Found || amt.Value == 0 {
		return []string{s.reply(msgDurationRetry)}
	}
	unit := model.PerDay
	if strings.Contains(lower, "bulan") || strings.Contains(lower, "bln") {
		unit = model.PerMonth
	}
	if strings.Contains(lower, "tahun") || strings.Contains(lower, "thn") {
		unit = model.PerYear
	}
	s.profile.Duration = &model.Duration{Amount: amt.Value, Unit: unit}
	return s.finalize()
}

// finalize snapshots the profile, persists it, and reports. Runs exactly
// once per completed session.
func (s *Session) finalize() []string {
	s.state = StateComplete
	if err := s.store.SaveProfile(s.profile); err != nil {
		s.log.WithError(err).Warn("profile save failed")
	}
	return []string{s.reply(buildReport(s.profile, s.tone))}
}

// simulate answers a hypothetical ("jika penghasilan per hari ku 10000...")
// with a throwaway profile. Nothing is persisted and the cursor does not move.
func (s *Session) simulate(text string) []string {
	lower := strings.ToLower(text)
	amt := parse.Parse(text)
	if !amt.Found || amt.Value == 0 {
		return []string{s.reply(msgSimulateRetry)}
	}

	temp := model.NewProfile()
	temp.Income = amt.Value
	temp.Currency = amt.Currency
	temp.Period = model.PerDay
	if strings.Contains(lower, "bulan") {
		temp.Period = model.PerMonth
	}
	if strings.Contains(lower, "tahun") {
		temp.Period = model.PerYear
	}

	if m := targetRe.FindStringSubmatch(text); len(m) == 2 {
		if t := parse.Parse(m[1]); t.Found && t.Value != 0 && t.Value != temp.Income {
			v := t.Value
			temp.Target = &v
		}
	}

	return []string{s.reply(buildReport(temp, s.tone))}
}

// reply logs an AI turn and returns its text.
func (s *Session) reply(text string) string {
	s.record(model.SenderAI, text)
	return text
}

func (s *Session) record(sender model.Sender, text string) {
	if s.store == nil {
		return
	}
	if err := s.store.AppendTurn(model.Turn{Sender: sender, Text: text}); err != nil {
		s.log.WithError(err).Warn("conversation log append failed")
	}
}
