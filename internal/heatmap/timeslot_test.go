package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeToMinutes(t *testing.T) {
	t.Run("valid four digit times", func(t *testing.T) {
		cases := map[string]int{
			"0000": 0,
			"0940": 9*60 + 40,
			"1330": 13*60 + 30,
			"2359": 23*60 + 59,
		}
		for raw, want := range cases {
			got, ok := ParseTimeToMinutes(raw)
			assert.True(t, ok, "expected %q to parse", raw)
			assert.Equal(t, want, got, "minutes for %q", raw)
		}
	})

	t.Run("short numerals are left padded", func(t *testing.T) {
		got, ok := ParseTimeToMinutes("900")
		assert.True(t, ok)
		assert.Equal(t, 9*60, got)

		got, ok = ParseTimeToMinutes("930")
		assert.True(t, ok)
		assert.Equal(t, 9*60+30, got)

		got, ok = ParseTimeToMinutes("5")
		assert.True(t, ok)
		assert.Equal(t, 5, got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "12345", "24:00", "9 40", "-130"} {
			_, ok := ParseTimeToMinutes(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
		}
	})

	t.Run("rejects out of range times", func(t *testing.T) {
		for _, raw := range []string{"2400", "1260", "2525"} {
			_, ok := ParseTimeToMinutes(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
		}
	})
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(9*60+5))
	assert.Equal(t, "23:59", FormatMinutes(23*60+59))
}

func TestGenerateSlots(t *testing.T) {
	t.Run("thirty minute interval tiles the full day", func(t *testing.T) {
		slots := GenerateSlots(30)
		assert.Len(t, slots, 48)
		assert.Equal(t, "00:00", slots[0])
		assert.Equal(t, "23:30", slots[len(slots)-1])
	})

	t.Run("sixty minute interval", func(t *testing.T) {
		slots := GenerateSlots(60)
		assert.Len(t, slots, 24)
		assert.Equal(t, "23:00", slots[len(slots)-1])
	})

	t.Run("interval that does not divide the day stops before midnight", func(t *testing.T) {
		slots := GenerateSlots(7)
		assert.Len(t, slots, 206)
		assert.Equal(t, "00:00", slots[0])
		assert.Equal(t, "23:55", slots[len(slots)-1])
	})

	t.Run("non positive interval yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(0))
		assert.Empty(t, GenerateSlots(-15))
	})
}

func TestDisplaySlots(t *testing.T) {
	slots := DisplaySlots(30)
	assert.Len(t, slots, 29)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "22:00", slots[len(slots)-1])
}

func TestMeetingSlots(t *testing.T) {
	t.Run("partial overlap at both boundaries", func(t *testing.T) {
		assert.Equal(t, []string{"09:30", "10:00", "10:30"}, MeetingSlots("0940", "1100", 30))
	})

	t.Run("exact slot alignment", func(t *testing.T) {
		assert.Equal(t, []string{"09:00", "09:30"}, MeetingSlots("0900", "1000", 30))
	})

	t.Run("offset start drags in the preceding slot", func(t *testing.T) {
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, MeetingSlots("0910", "1010", 30))
	})

	t.Run("meeting fully inside a single slot", func(t *testing.T) {
		assert.Equal(t, []string{"09:00"}, MeetingSlots("0910", "0920", 30))
	})

	t.Run("meeting crossing one slot boundary", func(t *testing.T) {
		assert.Equal(t, []string{"09:00", "09:30"}, MeetingSlots("0920", "0940", 30))
	})

	t.Run("short numerals parse like their padded forms", func(t *testing.T) {
		assert.Equal(t, []string{"09:00"}, MeetingSlots("900", "930", 30))
	})

	t.Run("unparseable endpoints contribute nothing", func(t *testing.T) {
		assert.Empty(t, MeetingSlots("", "1000", 30))
		assert.Empty(t, MeetingSlots("0900", "abc", 30))
		assert.Empty(t, MeetingSlots("2400", "2430", 30))
	})

	t.Run("inverted or empty intervals contribute nothing", func(t *testing.T) {
		assert.Empty(t, MeetingSlots("1000", "0900", 30))
		assert.Empty(t, MeetingSlots("0900", "0900", 30))
	})
}
