package clock

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// TimeOfDay is a wall-clock time measured from midnight. It carries no date,
// so comparisons between two values never depend on the current day.
type TimeOfDay struct {
	offset time.Duration
}

// New builds a TimeOfDay from its clock components.
func New(hour, minute, second int) TimeOfDay {
	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(second)*time.Second,
	}
}

// FromTime keeps only the clock part of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		offset: time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond()),
	}
}

func (t TimeOfDay) Hour() int   { return int(t.offset / time.Hour) }
func (t TimeOfDay) Minute() int { return int(t.offset % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int { return int(t.offset % time.Minute / time.Second) }

// Sub returns t-u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return t.offset - u.offset
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t.offset < u.offset }
func (t TimeOfDay) After(u TimeOfDay) bool  { return t.offset > u.offset }
func (t TimeOfDay) Equal(u TimeOfDay) bool  { return t.offset == u.offset }

// Between reports whether start <= t <= end.
func (t TimeOfDay) Between(start, end TimeOfDay) bool {
	return t.offset >= start.offset && t.offset <= end.offset
}

// String renders HH:MM, or HH:MM:SS when the value carries seconds.
func (t TimeOfDay) String() string {
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the forms String produces.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseHHMM(string(text))
	if err != nil {
		withSeconds, perr := time.Parse("15:04:05", string(text))
		if perr != nil {
			return err
		}
		parsed = FromTime(withSeconds)
	}
	*t = parsed
	return nil
}

var hhmmRegex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// ParseHHMM parses the strict 24-hour H:MM / HH:MM form without seconds.
func ParseHHMM(s string) (TimeOfDay, error) {
	m := hhmmRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return New(hour, minute, 0), nil
}

// MustParseHHMM is ParseHHMM for constants; it panics on malformed input.
func MustParseHHMM(s string) TimeOfDay {
	t, err := ParseHHMM(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Cell values that mean "no punch" in attendance exports.
var absentMarkers = map[string]struct{}{
	"00:00": {},
	"nan":   {},
	"NaT":   {},
}

// Layouts tried after the strict form fails.
var looseLayouts = []string{
	"15:04:05",
	"15:04:05.000",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
	"3:04pm",
	"3:04:05 PM",
	"3:04:05PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"02-01-2006 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"Jan 2, 2006 15:04",
	"2 Jan 2006 15:04",
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse converts a raw cell into a time of day. It returns nil for empty or
// placeholder cells and for anything it cannot read; it never fails.
func Parse(cell string) *TimeOfDay {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	if _, ok := absentMarkers[s]; ok {
		return nil
	}

	if t, err := ParseHHMM(s); err == nil {
		return &t
	}

	for _, layout := range looseLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t := FromTime(parsed)
			return &t
		}
	}

	// Excel numeric values: day fractions for time-only cells, serials for date-times.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 0 && !math.IsInf(serial, 1) {
		if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
			t := FromTime(parsed.Round(time.Second))
			return &t
		}
	}

	return nil
}
