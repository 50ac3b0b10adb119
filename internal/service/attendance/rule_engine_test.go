package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *RuleEngine {
	t.Helper()
	engine, err := NewRuleEngine(attendance.DefaultShiftPolicy())
	require.NoError(t, err)
	return engine
}

func at(s string) *clock.TimeOfDay {
	t := clock.MustParseHHMM(s)
	return &t
}

func atSec(h, m, s int) *clock.TimeOfDay {
	t := clock.New(h, m, s)
	return &t
}

func TestRuleEngine_ClassifyIn(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name string
		in   *clock.TimeOfDay
		want attendance.InResult
	}{
		{"missing", nil, attendance.InResult{Label: "Missing IN Time"}},
		{"early", at("08:50"), attendance.InResult{Label: "On Time"}},
		{"shift start", at("09:15"), attendance.InResult{Label: "On Time"}},
		{"one minute late", at("09:16"), attendance.InResult{LateUnits: 1, Label: "1 x 15 Min Late"}},
		{"end of first unit", at("09:30"), attendance.InResult{LateUnits: 1, Label: "1 x 15 Min Late"}},
		{"start of second unit", at("09:31"), attendance.InResult{LateUnits: 2, Label: "2 x 15 Min Late"}},
		{"half a minute late", atSec(9, 15, 30), attendance.InResult{LateUnits: 1, Label: "1 x 15 Min Late"}},
		{"just before half day", at("10:15"), attendance.InResult{LateUnits: 4, Label: "4 x 15 Min Late"}},
		{"half day start", at("10:16"), attendance.InResult{Label: "Half Day Leave (Morning IN)", MorningHalfDay: 1}},
		{"half day middle", at("12:00"), attendance.InResult{Label: "Half Day Leave (Morning IN)", MorningHalfDay: 1}},
		{"half day end", at("13:30"), attendance.InResult{Label: "Half Day Leave (Morning IN)", MorningHalfDay: 1}},
		{"after half day window", at("13:31"), attendance.InResult{LateUnits: 18, Label: "18 x 15 Min Late"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, engine.ClassifyIn(c.in))
		})
	}
}

func TestRuleEngine_ClassifyIn_HalfDayWindowNeverLate(t *testing.T) {
	engine := newTestEngine(t)

	for m := 10*60 + 16; m <= 13*60+30; m++ {
		in := clock.New(m/60, m%60, 0)
		got := engine.ClassifyIn(&in)
		assert.Equal(t, attendance.InResult{Label: "Half Day Leave (Morning IN)", MorningHalfDay: 1}, got, "time-in %s", in)
	}
}

func TestRuleEngine_ClassifyIn_LateUnitsRoundUp(t *testing.T) {
	engine := newTestEngine(t)
	start := clock.MustParseHHMM("09:15")

	for m := 9*60 + 16; m < 10*60+16; m++ {
		in := clock.New(m/60, m%60, 0)
		late := int(in.Sub(start) / time.Minute)
		want := (late + 14) / 15

		got := engine.ClassifyIn(&in)
		assert.Equal(t, want, got.LateUnits, "time-in %s", in)
		assert.Equal(t, 0, got.MorningHalfDay, "time-in %s", in)
	}
}

func TestRuleEngine_ClassifyOut(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name string
		out  *clock.TimeOfDay
		want attendance.OutResult
	}{
		{"missing", nil, attendance.OutResult{Label: "Missing OUT Time"}},
		{"overtime", at("19:00"), attendance.OutResult{Label: "On Time/Overtime"}},
		{"shift end", at("17:45"), attendance.OutResult{Label: "On Time/Overtime"}},
		{"one hour leave end", at("17:44"), attendance.OutResult{EarlyOutUnits: 1, Label: "1 Hour Leave"}},
		{"one hour leave start", at("16:46"), attendance.OutResult{EarlyOutUnits: 1, Label: "1 Hour Leave"}},
		{"evening cutoff", at("16:45"), attendance.OutResult{Label: "Half Day Leave (Evening OUT)", EveningHalfDay: 1}},
		{"well before cutoff", at("13:00"), attendance.OutResult{Label: "Half Day Leave (Evening OUT)", EveningHalfDay: 1}},
		{"between cutoff and window", atSec(16, 45, 30), attendance.OutResult{Label: "Other Early Out"}},
		{"seconds inside last minute", atSec(17, 44, 30), attendance.OutResult{Label: "Other Early Out"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, engine.ClassifyOut(c.out))
		})
	}
}

func TestRuleEngine_ClassifyOut_EarlyOutExcludesEveningHalfDay(t *testing.T) {
	engine := newTestEngine(t)

	for m := 0; m < 24*60; m++ {
		out := clock.New(m/60, m%60, 0)
		got := engine.ClassifyOut(&out)
		assert.False(t, got.EarlyOutUnits == 1 && got.EveningHalfDay == 1, "time-out %s", out)
	}
}

func TestRuleEngine_ResolveDay(t *testing.T) {
	engine := newTestEngine(t)
	complete := attendance.Record{TimeIn: at("09:00"), TimeOut: at("18:00")}

	cases := []struct {
		name   string
		record attendance.ClassifiedRecord
		want   string
	}{
		{
			name:   "full day beats everything",
			record: attendance.ClassifiedRecord{Record: complete, IsMorningHalfDay: 1, IsEveningHalfDay: 1, EarlyOutUnits: 1, LateUnits: 3},
			want:   "FULL Day Leave (Morn + Even Half)",
		},
		{
			name:   "morning half day",
			record: attendance.ClassifiedRecord{Record: complete, IsMorningHalfDay: 1, EarlyOutUnits: 1},
			want:   "Half Day Leave (Morning IN)",
		},
		{
			name:   "evening half day beats lateness",
			record: attendance.ClassifiedRecord{Record: complete, IsEveningHalfDay: 1, LateUnits: 2},
			want:   "Half Day Leave (Evening OUT)",
		},
		{
			name:   "one hour leave beats lateness",
			record: attendance.ClassifiedRecord{Record: complete, EarlyOutUnits: 1, LateUnits: 2},
			want:   "1 Hour Leave (Early OUT)",
		},
		{
			name:   "late",
			record: attendance.ClassifiedRecord{Record: complete, LateUnits: 2},
			want:   "2 x 15 Min Late",
		},
		{
			name:   "late with missing out",
			record: attendance.ClassifiedRecord{Record: attendance.Record{TimeIn: at("09:40")}, LateUnits: 2},
			want:   "2 x 15 Min Late",
		},
		{
			name:   "missing out",
			record: attendance.ClassifiedRecord{Record: attendance.Record{TimeIn: at("09:00")}},
			want:   "Incomplete Record",
		},
		{
			name:   "missing in",
			record: attendance.ClassifiedRecord{Record: attendance.Record{TimeOut: at("18:00")}},
			want:   "Incomplete Record",
		},
		{
			name:   "on time",
			record: attendance.ClassifiedRecord{Record: complete},
			want:   "On Time",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, engine.ResolveDay(c.record))
		})
	}
}

func TestRuleEngine_Classify(t *testing.T) {
	engine := newTestEngine(t)
	in := at("10:30")
	out := at("16:00")
	record := attendance.Record{EmployeeName: "Asha", DayLabel: "1 M", Status: "P", TimeIn: in, TimeOut: out}

	got := engine.Classify(record)

	assert.Equal(t, record, got.Record)
	assert.Equal(t, 0, got.LateUnits)
	assert.Equal(t, 1, got.IsMorningHalfDay)
	assert.Equal(t, 1, got.IsEveningHalfDay)
	assert.Equal(t, 0, got.EarlyOutUnits)
	assert.Equal(t, "Half Day Leave (Morning IN)", got.InClassification)
	assert.Equal(t, "Half Day Leave (Evening OUT)", got.OutClassification)
	assert.Equal(t, "FULL Day Leave (Morn + Even Half)", got.DayClassification)

	assert.Same(t, in, got.TimeIn)
	assert.Same(t, out, got.TimeOut)
}

func TestRuleEngine_ClassifyAll(t *testing.T) {
	engine := newTestEngine(t)
	records := []attendance.Record{
		{EmployeeName: "Asha", DayLabel: "1 M", Status: "P", TimeIn: at("09:10"), TimeOut: at("17:50")},
		{EmployeeName: "Asha", DayLabel: "2 T", Status: "P", TimeIn: at("09:40"), TimeOut: at("17:00")},
		{EmployeeName: "Asha", DayLabel: "3 W", Status: "P", TimeOut: at("17:50")},
	}

	got := engine.ClassifyAll(records)
	require.Len(t, got, 3)
	assert.Equal(t, "On Time", got[0].DayClassification)
	assert.Equal(t, "1 Hour Leave (Early OUT)", got[1].DayClassification)
	assert.Equal(t, 2, got[1].LateUnits)
	assert.Equal(t, "Incomplete Record", got[2].DayClassification)
	assert.Equal(t, "Missing IN Time", got[2].InClassification)
}

func TestRuleEngine_IndependentPolicies(t *testing.T) {
	night := attendance.DefaultShiftPolicy()
	night.ShiftStart = clock.MustParseHHMM("10:00")
	night.LateUnit = 30 * time.Minute
	night.MorningHalfDayStart = clock.MustParseHHMM("11:01")
	night.MorningHalfDayEnd = clock.MustParseHHMM("14:00")

	late, err := NewRuleEngine(night)
	require.NoError(t, err)
	standard := newTestEngine(t)

	assert.Equal(t, attendance.InResult{LateUnits: 1, Label: "1 x 30 Min Late"}, late.ClassifyIn(at("10:20")))
	assert.Equal(t, attendance.InResult{Label: "Half Day Leave (Morning IN)", MorningHalfDay: 1}, standard.ClassifyIn(at("10:20")))
	assert.Equal(t, clock.MustParseHHMM("09:15"), standard.Policy().ShiftStart)
}

func TestNewRuleEngine_InvalidPolicy(t *testing.T) {
	policy := attendance.DefaultShiftPolicy()
	policy.ShiftStart = clock.MustParseHHMM("18:00")
	policy.LateUnit = 0

	_, err := NewRuleEngine(policy)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shift_start")
	assert.Contains(t, err.Error(), "late_unit_minutes")
}
