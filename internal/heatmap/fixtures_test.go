package heatmap

import (
	"github.com/ahatanar/StudentSpace/internal/app/models"
)

// Shared builders for the package tests.

func meeting(begin, end string, days ...string) models.MeetingFaculty {
	mt := &models.MeetingTime{BeginTime: begin, EndTime: end}
	for _, day := range days {
		switch day {
		case "monday":
			mt.Monday = true
		case "tuesday":
			mt.Tuesday = true
		case "wednesday":
			mt.Wednesday = true
		case "thursday":
			mt.Thursday = true
		case "friday":
			mt.Friday = true
		case "saturday":
			mt.Saturday = true
		case "sunday":
			mt.Sunday = true
		}
	}
	return models.MeetingFaculty{MeetingTime: mt}
}

func section(campus, method string, enrollment int, meetings ...models.MeetingFaculty) models.Section {
	return models.Section{
		CampusDescription:              campus,
		InstructionalMethodDescription: method,
		Enrollment:                     models.FlexInt(enrollment),
		MeetingsFaculty:                meetings,
	}
}
