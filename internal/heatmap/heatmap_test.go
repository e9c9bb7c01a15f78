package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahatanar/StudentSpace/internal/app/models"
)

func TestBuild(t *testing.T) {
	t.Run("empty dataset yields a zero grid not an error", func(t *testing.T) {
		result := Build(nil, Options{IntervalMinutes: 30, CampusSubstring: "Oshawa", IncludeHybrid: true})

		assert.Equal(t, 0, result.TotalSections)
		assert.Equal(t, 30, result.Interval)
		require.Len(t, result.TimeSlots, 29)
		assert.Equal(t, "08:00", result.TimeSlots[0])
		assert.Equal(t, "22:00", result.TimeSlots[len(result.TimeSlots)-1])
		for _, day := range Weekdays {
			for _, count := range result.HeatmapData[day] {
				assert.Zero(t, count)
			}
		}
	})

	t.Run("zero options fall back to defaults", func(t *testing.T) {
		result := Build(nil, Options{})
		assert.Equal(t, DefaultIntervalMinutes, result.Interval)
		assert.Equal(t, DefaultCampus, result.Campus)
	})

	t.Run("raw sections carry the filtered records", func(t *testing.T) {
		kept := section("Oshawa", "In-Person", 12, meeting("0900", "1000", "monday"))
		dropped := section("Whitby", "In-Person", 3, meeting("0900", "1000", "monday"))

		result := Build([]models.Section{kept, dropped}, Options{IncludeHybrid: true})

		require.Len(t, result.RawSections, 1)
		assert.Equal(t, kept, result.RawSections[0])
		assert.Equal(t, 1, result.TotalSections)
	})

	t.Run("identical inputs produce identical results", func(t *testing.T) {
		sections := []models.Section{
			section("Oshawa", "In-Person", 10, meeting("0900", "1000", "monday", "wednesday")),
			section("Oshawa", "Hybrid: In-Person and Online", 5, meeting("0930", "1030", "monday")),
		}
		opts := Options{IntervalMinutes: 15, CampusSubstring: "Oshawa", IncludeHybrid: true}

		first := Build(sections, opts)
		second := Build(sections, opts)

		assert.Equal(t, first, second)
	})
}
