package heatmap

import (
	"fmt"
	"strings"
)

// Time arithmetic for the slot grid. Banner encodes meeting times as 1-4
// digit "HHMM" numerals ("940" means 09:40); everything here works in
// integer minutes since midnight, never in time.Time, so the math is immune
// to timezone and DST concerns.

const (
	minutesPerDay = 24 * 60

	// Bounds of the slot list advertised to clients. Aggregation always
	// covers the full day; only the returned timeSlots list is clamped to
	// campus operating hours, 08:00 through 22:00 inclusive.
	displayWindowStart = 8 * 60
	displayWindowEnd   = 22 * 60
)

// ParseTimeToMinutes converts a Banner "HHMM" numeral to minutes since
// midnight. Inputs shorter than four digits are zero-padded on the left.
// Returns ok=false for empty, non-numeric, overlong, or out-of-range values;
// callers treat such meetings as contributing nothing.
func ParseTimeToMinutes(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if len(raw) < 4 {
		raw = strings.Repeat("0", 4-len(raw)) + raw
	}
	if len(raw) != 4 {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	hour := int(raw[0]-'0')*10 + int(raw[1]-'0')
	minute := int(raw[2]-'0')*10 + int(raw[3]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatMinutes renders minutes since midnight as a zero-padded "HH:MM"
// slot label.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// slotStarts returns every multiple of interval minutes from first through
// last inclusive. Stepping is purely integral; when interval does not divide
// the span evenly the sequence stops before exceeding the bound, so the
// final slot may be shorter than interval in wall-clock terms.
func slotStarts(first, last, interval int) []int {
	if interval <= 0 || last < first {
		return nil
	}
	starts := make([]int, 0, (last-first)/interval+1)
	for s := first; s <= last; s += interval {
		starts = append(starts, s)
	}
	return starts
}

func labelsFor(starts []int) []string {
	labels := make([]string, len(starts))
	for i, s := range starts {
		labels[i] = FormatMinutes(s)
	}
	return labels
}

// GenerateSlots produces the slot labels used as grid keys: every multiple
// of interval from midnight up to the last one before 24:00.
func GenerateSlots(interval int) []string {
	return labelsFor(slotStarts(0, minutesPerDay-1, interval))
}

// DisplaySlots produces the bounded display slot list returned to clients
// alongside the grid.
func DisplaySlots(interval int) []string {
	return labelsFor(slotStarts(displayWindowStart, displayWindowEnd, interval))
}

// MeetingSlots returns the slot labels whose [start, start+interval) window
// overlaps the meeting's [begin, end) interval. An endpoint that fails to
// parse yields an empty set: a malformed meeting contributes nothing rather
// than failing the whole build.
func MeetingSlots(beginRaw, endRaw string, interval int) []string {
	begin, ok := ParseTimeToMinutes(beginRaw)
	if !ok {
		return nil
	}
	end, ok := ParseTimeToMinutes(endRaw)
	if !ok {
		return nil
	}
	var labels []string
	for _, s := range slotStarts(0, minutesPerDay-1, interval) {
		if max(begin, s) < min(end, s+interval) {
			labels = append(labels, FormatMinutes(s))
		}
	}
	return labels
}
