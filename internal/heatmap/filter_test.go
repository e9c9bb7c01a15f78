package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahatanar/StudentSpace/internal/app/models"
)

func TestClassifyDelivery(t *testing.T) {
	cases := []struct {
		description string
		inPerson    bool
		online      bool
	}{
		{"In-Person", true, false},
		{"in person", true, false},
		{"Online", false, true},
		{"Remote Learning", false, true},
		{"Virtual Meet Times", false, true},
		{"Web-Based", false, true},
		{"Distance Education", false, true},
		{"In-Person with Web Component", true, true},
		{"Hybrid: In-Person and Online", true, true},
		{"Correspondence", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			mode := ClassifyDelivery(tc.description)
			assert.Equal(t, tc.inPerson, mode.InPerson, "InPerson for %q", tc.description)
			assert.Equal(t, tc.online, mode.Online, "Online for %q", tc.description)
		})
	}

	t.Run("empty description sets neither flag", func(t *testing.T) {
		assert.Equal(t, DeliveryMode{}, ClassifyDelivery(""))
	})
}

func TestFilterSections(t *testing.T) {
	oshawaInPerson := section("Oshawa", "In-Person", 30, meeting("0900", "1000", "monday"))
	whitby := section("Whitby", "In-Person", 25, meeting("0900", "1000", "monday"))
	oshawaOnline := section("Oshawa", "Online", 40, meeting("0900", "1000", "monday"))
	webComponent := section("Oshawa", "In-Person with Web Component", 20, meeting("0900", "1000", "tuesday"))
	hybrid := section("Oshawa", "Hybrid: In-Person and Online", 15, meeting("0900", "1000", "wednesday"))
	unclassified := section("Oshawa", "Independent Study", 10, meeting("0900", "1000", "monday"))
	all := []models.Section{oshawaInPerson, whitby, oshawaOnline, webComponent, hybrid, unclassified}

	t.Run("hybrid sections pass when included", func(t *testing.T) {
		got := FilterSections(all, "Oshawa", true)
		assert.Equal(t, []models.Section{oshawaInPerson, webComponent, hybrid}, got)
	})

	t.Run("strict in-person drops hybrid sections", func(t *testing.T) {
		got := FilterSections(all, "Oshawa", false)
		assert.Equal(t, []models.Section{oshawaInPerson}, got)
	})

	t.Run("other campuses are always excluded", func(t *testing.T) {
		got := FilterSections([]models.Section{whitby}, "Oshawa", true)
		assert.Empty(t, got)
	})

	t.Run("meeting level campus can satisfy the match", func(t *testing.T) {
		s := section("", "In-Person", 5, meeting("0900", "1000", "monday"))
		s.MeetingsFaculty[0].MeetingTime.CampusDescription = "Oshawa Downtown"
		got := FilterSections([]models.Section{s}, "Oshawa", false)
		assert.Len(t, got, 1)
	})

	t.Run("campus match is case sensitive", func(t *testing.T) {
		got := FilterSections(all, "oshawa", true)
		assert.Empty(t, got)
	})

	t.Run("sections without meetings can still match on their own campus", func(t *testing.T) {
		s := section("Oshawa", "In-Person", 5)
		got := FilterSections([]models.Section{s}, "Oshawa", false)
		assert.Len(t, got, 1)
	})

	t.Run("unclassified delivery modes never pass", func(t *testing.T) {
		got := FilterSections([]models.Section{unclassified}, "Oshawa", true)
		assert.Empty(t, got)
	})
}
