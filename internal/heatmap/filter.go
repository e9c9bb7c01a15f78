package heatmap

import (
	"strings"

	"github.com/ahatanar/StudentSpace/internal/app/models"
)

// Keywords recognized in Banner's free-text instructionalMethodDescription
// labels. The registrar is not consistent ("In-Person", "In Person and
// Online", "Virtual Meet Times"), so classification is substring based.
var (
	inPersonMarkers = []string{"in-person", "in person"}
	onlineMarkers   = []string{"online", "remote", "virtual", "web", "distance"}
)

// DeliveryMode classifies a section's instructional method. The two flags
// are independent: "Hybrid: In-Person and Online" sets both.
type DeliveryMode struct {
	InPerson bool
	Online   bool
}

// ClassifyDelivery derives delivery-mode flags from a method description.
// Matching is case-insensitive substring containment; an empty or
// unrecognized description leaves both flags false.
func ClassifyDelivery(description string) DeliveryMode {
	lowered := strings.ToLower(description)
	var mode DeliveryMode
	for _, marker := range inPersonMarkers {
		if strings.Contains(lowered, marker) {
			mode.InPerson = true
			break
		}
	}
	for _, marker := range onlineMarkers {
		if strings.Contains(lowered, marker) {
			mode.Online = true
			break
		}
	}
	return mode
}

// matchesCampus reports whether a section belongs to the target campus:
// its own campusDescription contains the substring, or failing that, any
// meeting-level campusDescription does. The match is case-sensitive.
func matchesCampus(section models.Section, campusSubstring string) bool {
	if strings.Contains(section.CampusDescription, campusSubstring) {
		return true
	}
	for _, mf := range section.MeetingsFaculty {
		if mf.MeetingTime != nil && strings.Contains(mf.MeetingTime.CampusDescription, campusSubstring) {
			return true
		}
	}
	return false
}

// FilterSections keeps the sections taught in person on the target campus.
// Hybrid sections (in-person and online components in one section) pass only
// when includeHybrid is set. Sections with no recognizable in-person
// component are always dropped, whatever the hybrid policy.
func FilterSections(sections []models.Section, campusSubstring string, includeHybrid bool) []models.Section {
	filtered := make([]models.Section, 0, len(sections))
	for _, section := range sections {
		if !matchesCampus(section, campusSubstring) {
			continue
		}
		mode := ClassifyDelivery(section.InstructionalMethodDescription)
		if !mode.InPerson {
			continue
		}
		if !includeHybrid && mode.Online {
			continue
		}
		filtered = append(filtered, section)
	}
	return filtered
}
