package attendance

import (
	"fmt"
	"math"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
)

// RuleEngine classifies days against one shift policy and holds no other state.
type RuleEngine struct {
	policy attendance.ShiftPolicy
}

func NewRuleEngine(policy attendance.ShiftPolicy) (*RuleEngine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shift policy: %w", err)
	}
	return &RuleEngine{policy: policy}, nil
}

func (e *RuleEngine) Policy() attendance.ShiftPolicy {
	return e.policy
}

// ClassifyIn checks a time-in against the morning half-day window first and
// only then computes late units, so a half-day arrival is never counted late.
func (e *RuleEngine) ClassifyIn(in *clock.TimeOfDay) attendance.InResult {
	if in == nil {
		return attendance.InResult{Label: attendance.LabelMissingIn}
	}

	if in.Between(e.policy.MorningHalfDayStart, e.policy.MorningHalfDayEnd) {
		return attendance.InResult{Label: attendance.LabelMorningHalfDay, MorningHalfDay: 1}
	}

	lateMinutes := in.Sub(e.policy.ShiftStart).Minutes()
	if lateMinutes <= 0 {
		return attendance.InResult{Label: attendance.LabelOnTime}
	}

	lateUnits := int(math.Ceil(lateMinutes / e.policy.LateUnit.Minutes()))
	return attendance.InResult{
		LateUnits: lateUnits,
		Label:     e.lateLabel(lateUnits),
	}
}

// ClassifyOut checks a time-out against the one-hour leave window, then the
// evening half-day cutoff. Departures before shift end that match neither
// (for example 16:45:30 under the default policy) are "Other Early Out".
func (e *RuleEngine) ClassifyOut(out *clock.TimeOfDay) attendance.OutResult {
	if out == nil {
		return attendance.OutResult{Label: attendance.LabelMissingOut}
	}

	earlyMinutes := e.policy.ShiftEnd.Sub(*out).Minutes()
	if earlyMinutes <= 0 {
		return attendance.OutResult{Label: attendance.LabelOnTimeOrOvertime}
	}

	if out.Between(e.policy.OneHourLeaveStart, e.policy.OneHourLeaveEnd) {
		return attendance.OutResult{EarlyOutUnits: 1, Label: attendance.LabelOneHourLeave}
	}

	if !out.After(e.policy.EveningHalfDayCutoff) {
		return attendance.OutResult{Label: attendance.LabelEveningHalfDay, EveningHalfDay: 1}
	}

	return attendance.OutResult{Label: attendance.LabelOtherEarlyOut}
}

// ResolveDay picks one label per day. First match wins:
// full day, morning half, evening half, 1-hour leave, late, incomplete, on time.
func (e *RuleEngine) ResolveDay(r attendance.ClassifiedRecord) string {
	morning := r.IsMorningHalfDay == 1
	evening := r.IsEveningHalfDay == 1

	switch {
	case morning && evening:
		return attendance.LabelFullDayLeave
	case morning:
		return attendance.LabelMorningHalfDay
	case evening:
		return attendance.LabelEveningHalfDay
	case r.EarlyOutUnits == 1:
		return attendance.LabelOneHourLeaveEarlyOut
	case r.LateUnits > 0:
		return e.lateLabel(r.LateUnits)
	case !r.Complete():
		return attendance.LabelIncompleteRecord
	default:
		return attendance.LabelOnTime
	}
}

// Classify derives the window results for one record and attaches the day label.
// The input record is copied, never modified.
func (e *RuleEngine) Classify(r attendance.Record) attendance.ClassifiedRecord {
	in := e.ClassifyIn(r.TimeIn)
	out := e.ClassifyOut(r.TimeOut)

	classified := attendance.ClassifiedRecord{
		Record:            r,
		LateUnits:         in.LateUnits,
		IsMorningHalfDay:  in.MorningHalfDay,
		EarlyOutUnits:     out.EarlyOutUnits,
		IsEveningHalfDay:  out.EveningHalfDay,
		InClassification:  in.Label,
		OutClassification: out.Label,
	}
	classified.DayClassification = e.ResolveDay(classified)
	return classified
}

func (e *RuleEngine) ClassifyAll(records []attendance.Record) []attendance.ClassifiedRecord {
	classified := make([]attendance.ClassifiedRecord, 0, len(records))
	for _, r := range records {
		classified = append(classified, e.Classify(r))
	}
	return classified
}

func (e *RuleEngine) lateLabel(units int) string {
	return fmt.Sprintf("%d x %d Min Late", units, e.policy.LateUnitMinutes())
}
