package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/clock"
	"gopkg.in/yaml.v3"
)

// policyFile is the YAML form of a shift policy. Keys left out of the file
// keep their default values.
type policyFile struct {
	ShiftStart           string `yaml:"shift_start"`
	ShiftEnd             string `yaml:"shift_end"`
	LateUnitMinutes      int    `yaml:"late_unit_minutes"`
	MorningHalfDayStart  string `yaml:"morning_half_day_start"`
	MorningHalfDayEnd    string `yaml:"morning_half_day_end"`
	EveningHalfDayCutoff string `yaml:"evening_half_day_cutoff"`
	OneHourLeaveStart    string `yaml:"one_hour_leave_start"`
	OneHourLeaveEnd      string `yaml:"one_hour_leave_end"`
}

func newPolicyFile(p attendance.ShiftPolicy) policyFile {
	return policyFile{
		ShiftStart:           p.ShiftStart.String(),
		ShiftEnd:             p.ShiftEnd.String(),
		LateUnitMinutes:      p.LateUnitMinutes(),
		MorningHalfDayStart:  p.MorningHalfDayStart.String(),
		MorningHalfDayEnd:    p.MorningHalfDayEnd.String(),
		EveningHalfDayCutoff: p.EveningHalfDayCutoff.String(),
		OneHourLeaveStart:    p.OneHourLeaveStart.String(),
		OneHourLeaveEnd:      p.OneHourLeaveEnd.String(),
	}
}

func (f policyFile) toPolicy() (attendance.ShiftPolicy, error) {
	var policy attendance.ShiftPolicy

	fields := []struct {
		key   string
		value string
		dst   *clock.TimeOfDay
	}{
		{"shift_start", f.ShiftStart, &policy.ShiftStart},
		{"shift_end", f.ShiftEnd, &policy.ShiftEnd},
		{"morning_half_day_start", f.MorningHalfDayStart, &policy.MorningHalfDayStart},
		{"morning_half_day_end", f.MorningHalfDayEnd, &policy.MorningHalfDayEnd},
		{"evening_half_day_cutoff", f.EveningHalfDayCutoff, &policy.EveningHalfDayCutoff},
		{"one_hour_leave_start", f.OneHourLeaveStart, &policy.OneHourLeaveStart},
		{"one_hour_leave_end", f.OneHourLeaveEnd, &policy.OneHourLeaveEnd},
	}
	for _, field := range fields {
		t, err := clock.ParseHHMM(field.value)
		if err != nil {
			return attendance.ShiftPolicy{}, fmt.Errorf("%s: %w", field.key, err)
		}
		*field.dst = t
	}
	policy.LateUnit = time.Duration(f.LateUnitMinutes) * time.Minute

	return policy, nil
}

// LoadShiftPolicy reads a YAML shift policy over the defaults. An empty path
// returns the default policy.
func LoadShiftPolicy(path string) (attendance.ShiftPolicy, error) {
	if path == "" {
		return attendance.DefaultShiftPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	return ParseShiftPolicy(data)
}

// ParseShiftPolicy decodes YAML policy data over the defaults and validates the result.
func ParseShiftPolicy(data []byte) (attendance.ShiftPolicy, error) {
	file := newPolicyFile(attendance.DefaultShiftPolicy())
	if err := yaml.Unmarshal(data, &file); err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}

	policy, err := file.toPolicy()
	if err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("invalid policy file: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return attendance.ShiftPolicy{}, fmt.Errorf("invalid policy file: %w", err)
	}

	return policy, nil
}
