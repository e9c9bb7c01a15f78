package heatmap

import (
	"github.com/ahatanar/StudentSpace/internal/app/models"
)

// Weekdays aggregated into the grid, in display order. Meetings carry
// weekend flags too, but the campus schedules no regular weekend sections,
// so the grid stays Monday through Friday.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Grid maps weekday name -> slot label -> accumulated enrollment.
type Grid map[string]map[string]int

func weekdayFlags(mt *models.MeetingTime) [5]bool {
	return [5]bool{mt.Monday, mt.Tuesday, mt.Wednesday, mt.Thursday, mt.Friday}
}

// BuildGrid aggregates every section's weekly meeting pattern into a fresh
// weekday x slot grid at the given interval. Each meeting adds the section's
// enrollment to every slot it touches on every flagged weekday; overlapping
// meetings within one section stack their counts in the shared slots.
// Input records are never mutated.
func BuildGrid(sections []models.Section, interval int) Grid {
	slotLabels := GenerateSlots(interval)
	grid := make(Grid, len(Weekdays))
	for _, day := range Weekdays {
		row := make(map[string]int, len(slotLabels))
		for _, label := range slotLabels {
			row[label] = 0
		}
		grid[day] = row
	}

	for _, section := range sections {
		enrollment := section.Enrollment.Int()
		for _, mf := range section.MeetingsFaculty {
			mt := mf.MeetingTime
			if mt == nil {
				continue
			}
			occupied := MeetingSlots(mt.BeginTime, mt.EndTime, interval)
			if len(occupied) == 0 {
				continue
			}
			for i, flagged := range weekdayFlags(mt) {
				if !flagged {
					continue
				}
				row := grid[Weekdays[i]]
				for _, label := range occupied {
					row[label] += enrollment
				}
			}
		}
	}
	return grid
}
