package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/validator"
)

// ShiftPolicy holds the time windows a day is classified against. Values are
// wall-clock times; the policy is independent of the calendar date.
type ShiftPolicy struct {
	ShiftStart clock.TimeOfDay
	ShiftEnd   clock.TimeOfDay
	LateUnit   time.Duration

	MorningHalfDayStart  clock.TimeOfDay
	MorningHalfDayEnd    clock.TimeOfDay
	EveningHalfDayCutoff clock.TimeOfDay
	OneHourLeaveStart    clock.TimeOfDay
	OneHourLeaveEnd      clock.TimeOfDay
}

// DefaultShiftPolicy is the 09:15-17:45 office shift.
func DefaultShiftPolicy() ShiftPolicy {
	return ShiftPolicy{
		ShiftStart:           clock.MustParseHHMM("09:15"),
		ShiftEnd:             clock.MustParseHHMM("17:45"),
		LateUnit:             15 * time.Minute,
		MorningHalfDayStart:  clock.MustParseHHMM("10:16"),
		MorningHalfDayEnd:    clock.MustParseHHMM("13:30"),
		EveningHalfDayCutoff: clock.MustParseHHMM("16:45"),
		OneHourLeaveStart:    clock.MustParseHHMM("16:46"),
		OneHourLeaveEnd:      clock.MustParseHHMM("17:44"),
	}
}

// LateUnitMinutes is the late unit expressed in whole minutes.
func (p ShiftPolicy) LateUnitMinutes() int {
	return int(p.LateUnit / time.Minute)
}

func (p ShiftPolicy) Validate() error {
	var errs validator.ValidationErrors

	if !p.ShiftStart.Before(p.ShiftEnd) {
		errs.Add("shift_start", "shift_start must be before shift_end")
	}
	if p.LateUnit < time.Minute || p.LateUnit%time.Minute != 0 {
		errs.Add("late_unit_minutes", "late_unit_minutes must be a positive whole number of minutes")
	}
	if p.MorningHalfDayEnd.Before(p.MorningHalfDayStart) {
		errs.Add("morning_half_day_end", "morning_half_day_end must not be before morning_half_day_start")
	}
	if p.OneHourLeaveEnd.Before(p.OneHourLeaveStart) {
		errs.Add("one_hour_leave_end", "one_hour_leave_end must not be before one_hour_leave_start")
	}
	if p.EveningHalfDayCutoff.After(p.ShiftEnd) {
		errs.Add("evening_half_day_cutoff", "evening_half_day_cutoff must not be after shift_end")
	}

	return errs.Err()
}
