// Package heatmap converts raw course-section datasets into a weekly
// classroom occupancy grid: sections are filtered by campus and delivery
// mode, then every meeting's time interval is resolved onto a fixed
// Monday-Friday slot grid and weighted by enrollment. The whole package is
// pure computation over its arguments; it holds no configuration, no
// storage handles, and no state between calls, so concurrent invocations
// are safe by construction.
package heatmap

import (
	"github.com/ahatanar/StudentSpace/internal/app/models"
)

// Defaults applied by Build when the corresponding Options field is zero.
const (
	DefaultIntervalMinutes = 30
	DefaultCampus          = "Oshawa"
)

// Options control one heatmap computation.
type Options struct {
	// IntervalMinutes is the slot width; zero or negative falls back to
	// DefaultIntervalMinutes.
	IntervalMinutes int
	// CampusSubstring selects sections by case-sensitive containment;
	// empty falls back to DefaultCampus.
	CampusSubstring string
	// IncludeHybrid keeps sections that also carry an online component.
	// False means strict in-person only.
	IncludeHybrid bool
}

// Result is the complete outcome of one build.
type Result struct {
	Campus        string
	TotalSections int
	HeatmapData   Grid
	TimeSlots     []string
	Interval      int
	RawSections   []models.Section
}

// Build filters the dataset and aggregates the survivors into the weekly
// grid. An empty dataset is valid input and yields a fully-keyed all-zero
// grid. Identical inputs always produce identical results.
func Build(sections []models.Section, opts Options) *Result {
	interval := opts.IntervalMinutes
	if interval <= 0 {
		interval = DefaultIntervalMinutes
	}
	campus := opts.CampusSubstring
	if campus == "" {
		campus = DefaultCampus
	}

	filtered := FilterSections(sections, campus, opts.IncludeHybrid)
	return &Result{
		Campus:        campus,
		TotalSections: len(filtered),
		HeatmapData:   BuildGrid(filtered, interval),
		TimeSlots:     DisplaySlots(interval),
		Interval:      interval,
		RawSections:   filtered,
	}
}
