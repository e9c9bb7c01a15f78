package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahatanar/StudentSpace/internal/app/models"
)

func TestBuildGrid(t *testing.T) {
	t.Run("two sections accumulate by weekday and slot", func(t *testing.T) {
		sections := []models.Section{
			section("Oshawa", "In-Person", 10, meeting("0900", "1000", "monday", "wednesday")),
			section("Oshawa", "In-Person", 5, meeting("0930", "1030", "monday")),
		}
		grid := BuildGrid(sections, 30)

		assert.Equal(t, 10, grid["Monday"]["09:00"])
		assert.Equal(t, 15, grid["Monday"]["09:30"])
		assert.Equal(t, 5, grid["Monday"]["10:00"])
		assert.Equal(t, 10, grid["Wednesday"]["09:00"])
		assert.Equal(t, 10, grid["Wednesday"]["09:30"])
		assert.Equal(t, 0, grid["Wednesday"]["10:00"])
		assert.Equal(t, 0, grid["Tuesday"]["09:00"])
	})

	t.Run("overlapping meetings within one section stack their counts", func(t *testing.T) {
		sections := []models.Section{
			section("Oshawa", "In-Person", 10,
				meeting("0900", "1000", "monday"),
				meeting("0930", "1030", "monday"),
			),
		}
		grid := BuildGrid(sections, 30)

		assert.Equal(t, 10, grid["Monday"]["09:00"])
		assert.Equal(t, 20, grid["Monday"]["09:30"])
		assert.Equal(t, 10, grid["Monday"]["10:00"])
	})

	t.Run("grid is fully keyed even for empty input", func(t *testing.T) {
		grid := BuildGrid(nil, 30)
		require.Len(t, grid, len(Weekdays))
		for _, day := range Weekdays {
			require.Len(t, grid[day], 48)
			assert.Equal(t, 0, grid[day]["08:00"])
		}
	})

	t.Run("weekend flags are ignored", func(t *testing.T) {
		sections := []models.Section{
			section("Oshawa", "In-Person", 8, meeting("0900", "1000", "saturday", "sunday")),
		}
		grid := BuildGrid(sections, 30)
		for _, day := range Weekdays {
			assert.Equal(t, 0, grid[day]["09:00"])
		}
	})

	t.Run("malformed times and missing meeting blocks degrade to nothing", func(t *testing.T) {
		noTime := section("Oshawa", "In-Person", 7)
		noTime.MeetingsFaculty = []models.MeetingFaculty{{MeetingTime: nil}}
		sections := []models.Section{
			section("Oshawa", "In-Person", 10, meeting("abc", "1000", "monday")),
			noTime,
		}
		grid := BuildGrid(sections, 30)
		for _, day := range Weekdays {
			for _, count := range grid[day] {
				assert.Zero(t, count)
			}
		}
	})

	t.Run("input sections are not mutated", func(t *testing.T) {
		sections := []models.Section{
			section("Oshawa", "In-Person", 10, meeting("0900", "1000", "monday")),
		}
		before := sections[0]
		BuildGrid(sections, 30)
		assert.Equal(t, before, sections[0])
	})
}
