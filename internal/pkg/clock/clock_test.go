package clock

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Absent(t *testing.T) {
	cases := []string{"", "   ", "00:00", " 00:00 ", "nan", "NaT", "not a time", "25:00", "9:60", "-1"}
	for _, c := range cases {
		if got := Parse(c); got != nil {
			t.Errorf("Parse(%q) = %v, want nil", c, got)
		}
	}
}

func TestParse_Strict(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
	}{
		{"09:15", New(9, 15, 0)},
		{"9:15", New(9, 15, 0)},
		{" 17:45 ", New(17, 45, 0)},
		{"9:5", New(9, 5, 0)},
		{"23:59", New(23, 59, 0)},
		{"0:01", New(0, 1, 0)},
	}
	for _, c := range cases {
		got := Parse(c.input)
		require.NotNil(t, got, "Parse(%q)", c.input)
		assert.True(t, got.Equal(c.want), "Parse(%q) = %v, want %v", c.input, got, c.want)
	}
}

func TestParse_Loose(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
	}{
		{"09:15:30", New(9, 15, 30)},
		{"5:45 PM", New(17, 45, 0)},
		{"2024-03-01 10:20:00", New(10, 20, 0)},
		{"2024-03-01T08:05:00Z", New(8, 5, 0)},
		{"3/1/2024 16:46", New(16, 46, 0)},
		{"0.5", New(12, 0, 0)},
	}
	for _, c := range cases {
		got := Parse(c.input)
		require.NotNil(t, got, "Parse(%q)", c.input)
		assert.True(t, got.Equal(c.want), "Parse(%q) = %v, want %v", c.input, got, c.want)
	}
}

func TestParse_MidnightFromDateIsKept(t *testing.T) {
	// Only the literal "00:00" is a placeholder; a parsed date still has a clock part.
	got := Parse("2024-03-01")
	require.NotNil(t, got)
	assert.True(t, got.Equal(New(0, 0, 0)))
}

func TestParseHHMM(t *testing.T) {
	got, err := ParseHHMM("16:45")
	require.NoError(t, err)
	assert.Equal(t, 16, got.Hour())
	assert.Equal(t, 45, got.Minute())

	_, err = ParseHHMM("16:45:00")
	assert.Error(t, err)
	_, err = ParseHHMM("24:00")
	assert.Error(t, err)
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	start := New(9, 15, 0)
	in := New(9, 31, 0)

	assert.Equal(t, 16*time.Minute, in.Sub(start))
	assert.True(t, in.After(start))
	assert.True(t, start.Before(in))
	assert.True(t, New(10, 16, 0).Between(New(10, 16, 0), New(13, 30, 0)))
	assert.True(t, New(13, 30, 0).Between(New(10, 16, 0), New(13, 30, 0)))
	assert.False(t, New(13, 30, 1).Between(New(10, 16, 0), New(13, 30, 0)))
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", New(9, 5, 0).String())
	assert.Equal(t, "16:45:30", New(16, 45, 30).String())
}

func TestTimeOfDay_JSON(t *testing.T) {
	type payload struct {
		In  *TimeOfDay `json:"in"`
		Out *TimeOfDay `json:"out"`
	}
	in := New(9, 15, 0)
	data, err := json.Marshal(payload{In: &in})
	require.NoError(t, err)
	assert.JSONEq(t, `{"in":"09:15","out":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"in":"10:16","out":"17:44"}`), &decoded))
	require.NotNil(t, decoded.Out)
	assert.True(t, decoded.In.Equal(New(10, 16, 0)))
	assert.True(t, decoded.Out.Equal(New(17, 44, 0)))

	withSeconds := New(16, 45, 30)
	data, err = json.Marshal(&withSeconds)
	require.NoError(t, err)
	var roundTrip TimeOfDay
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.True(t, roundTrip.Equal(withSeconds))

	assert.Error(t, json.Unmarshal([]byte(`"late"`), &roundTrip))
}
