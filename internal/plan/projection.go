// Package plan computes deterministic budget projections from a profile.
package plan

import (
	"github.com/shopspring/decimal"

	"github.com/adiwerna/duita/internal/model"
)

// Allocation holds the fixed split fractions applied to income.
// Spend is always the slack absorber: it is whatever remains after save
// and emergency, clamped at zero.
type Allocation struct {
	SavePct      decimal.Decimal
	EmergencyPct decimal.Decimal
}

// DefaultAllocation is the 25% save / 8% emergency rule.
func DefaultAllocation() Allocation {
	return Allocation{
		SavePct:      decimal.NewFromFloat(0.25),
		EmergencyPct: decimal.NewFromFloat(0.08),
	}
}

// SpendPct returns the remaining fraction, clamped at zero.
func (a Allocation) SpendPct() decimal.Decimal {
	spend := decimal.NewFromInt(1).Sub(a.SavePct).Sub(a.EmergencyPct)
	if spend.IsNegative() {
		return decimal.Zero
	}
	return spend
}

// Outcome classifies a reachability estimate.
type Outcome int

// Reachability outcomes.
const (
	Reachable   Outcome = iota // Days and Months are meaningful
	Infeasible                 // daily savings is zero, target can never be reached
	Suspect                    // under a day, inputs look wrong
	Unrealistic                // over 100 years, target out of proportion
)

// Reachability estimates how long closing the savings gap will take.
type Reachability struct {
	Outcome Outcome
	Days    int64
	Months  int64
}

// Projection is the per-period budget recommendation for a profile.
// All amounts are whole currency units.
type Projection struct {
	SavePerDay      int64
	EmergencyPerDay int64
	SpendPerDay     int64

	SavePerPeriod      int64
	EmergencyPerPeriod int64
	SpendPerPeriod     int64

	Reach *Reachability // nil when no target is set
}

// Project computes the budget split and target reachability for a profile.
// Pure and deterministic: it never consults the learned model.
func Project(p model.Profile) Projection {
	return ProjectWith(p, DefaultAllocation())
}

// ProjectWith is Project with an explicit allocation rule.
func ProjectWith(p model.Profile, alloc Allocation) Projection {
	income := decimal.NewFromFloat(p.Income)
	period := p.Period
	if !period.Valid() {
		period = model.PerMonth
	}
	periodDays := decimal.NewFromInt(int64(period.Days()))

	incomePerDay := income.Div(periodDays)

	savePerDay := clampZero(incomePerDay.Mul(alloc.SavePct).Round(0))
	emergencyPerDay := clampZero(incomePerDay.Mul(alloc.EmergencyPct).Round(0))
	spendPerDay := clampZero(incomePerDay.Mul(alloc.SpendPct()).Round(0))

	savePeriod := savePerDay.Mul(periodDays).Round(0)
	emergencyPeriod := emergencyPerDay.Mul(periodDays).Round(0)
	spendPeriod := spendPerDay.Mul(periodDays).Round(0)

	// Double rounding can push the three buckets past the stated income.
	// The overage comes out of spend alone; save and emergency stand.
	total := savePeriod.Add(emergencyPeriod).Add(spendPeriod)
	if total.GreaterThan(income) {
		spendPeriod = clampZero(spendPeriod.Sub(total.Sub(income)).Floor())
	}

	proj := Projection{
		SavePerDay:         savePerDay.IntPart(),
		EmergencyPerDay:    emergencyPerDay.IntPart(),
		SpendPerDay:        spendPerDay.IntPart(),
		SavePerPeriod:      savePeriod.IntPart(),
		EmergencyPerPeriod: emergencyPeriod.IntPart(),
		SpendPerPeriod:     spendPeriod.IntPart(),
	}

	if p.Target != nil {
		r := reachability(*p.Target, p.SavingsNow, savePerDay)
		proj.Reach = &r
	}
	return proj
}

// unrealisticDays is the 100-year horizon past which a target is flagged.
const unrealisticDays = 36500

func reachability(target, savingsNow float64, savePerDay decimal.Decimal) Reachability {
	if savePerDay.LessThanOrEqual(decimal.Zero) {
		return Reachability{Outcome: Infeasible}
	}
	remaining := decimal.NewFromFloat(target).Sub(decimal.NewFromFloat(savingsNow))
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	days := remaining.Div(savePerDay).Ceil().IntPart()
	switch {
	case days < 1:
		return Reachability{Outcome: Suspect, Days: days}
	case days > unrealisticDays:
		return Reachability{Outcome: Unrealistic, Days: days}
	}
	months := decimal.NewFromInt(days).Div(decimal.NewFromInt(30)).Round(0).IntPart()
	return Reachability{Outcome: Reachable, Days: days, Months: months}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
