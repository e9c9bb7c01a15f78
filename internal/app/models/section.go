package models

import (
	"strconv"
	"strings"
)

// Course-section records as delivered by the Banner registration system's
// searchResults endpoint. Field names mirror the upstream JSON so that
// datasets fetched by sectionsync round-trip without translation.

// Section is one scheduled offering of a course within a term.
type Section struct {
	ID                             FlexInt          `json:"id"`
	Term                           string           `json:"term"`
	TermDesc                       string           `json:"termDesc"`
	CourseReferenceNumber          string           `json:"courseReferenceNumber"`
	PartOfTerm                     string           `json:"partOfTerm"`
	CourseNumber                   string           `json:"courseNumber"`
	Subject                        string           `json:"subject"`
	SubjectDescription             string           `json:"subjectDescription"`
	SequenceNumber                 string           `json:"sequenceNumber"`
	CampusDescription              string           `json:"campusDescription"`
	ScheduleTypeDescription        string           `json:"scheduleTypeDescription"`
	CourseTitle                    string           `json:"courseTitle"`
	CreditHours                    *float64         `json:"creditHours"`
	MaximumEnrollment              FlexInt          `json:"maximumEnrollment"`
	Enrollment                     FlexInt          `json:"enrollment"`
	SeatsAvailable                 FlexInt          `json:"seatsAvailable"`
	WaitCapacity                   FlexInt          `json:"waitCapacity"`
	WaitCount                      FlexInt          `json:"waitCount"`
	WaitAvailable                  FlexInt          `json:"waitAvailable"`
	OpenSection                    bool             `json:"openSection"`
	InstructionalMethod            string           `json:"instructionalMethod"`
	InstructionalMethodDescription string           `json:"instructionalMethodDescription"`
	IsSectionLinked                bool             `json:"isSectionLinked"`
	LinkIdentifier                 string           `json:"linkIdentifier"`
	Faculty                        []SectionFaculty `json:"faculty"`
	MeetingsFaculty                []MeetingFaculty `json:"meetingsFaculty"`
}

// SectionFaculty is an instructor assignment on a section.
type SectionFaculty struct {
	BannerID         string `json:"bannerId"`
	Category         string `json:"category"`
	DisplayName      string `json:"displayName"`
	EmailAddress     string `json:"emailAddress"`
	PrimaryIndicator bool   `json:"primaryIndicator"`
	Term             string `json:"term"`
}

// MeetingFaculty wraps one recurring weekly time block of a section.
// Banner nests the actual schedule one level down in meetingTime, which may
// be null for sections without assigned times.
type MeetingFaculty struct {
	Category              string       `json:"category"`
	CourseReferenceNumber string       `json:"courseReferenceNumber"`
	MeetingTime           *MeetingTime `json:"meetingTime"`
	Term                  string       `json:"term"`
}

// MeetingTime is the schedule detail of one meeting block. BeginTime and
// EndTime are 1-4 digit "HHMM" numerals ("940" means 09:40) and may be empty
// when the registrar has not published times yet.
type MeetingTime struct {
	BeginTime              string  `json:"beginTime"`
	EndTime                string  `json:"endTime"`
	Monday                 bool    `json:"monday"`
	Tuesday                bool    `json:"tuesday"`
	Wednesday              bool    `json:"wednesday"`
	Thursday               bool    `json:"thursday"`
	Friday                 bool    `json:"friday"`
	Saturday               bool    `json:"saturday"`
	Sunday                 bool    `json:"sunday"`
	Campus                 string  `json:"campus"`
	CampusDescription      string  `json:"campusDescription"`
	Building               string  `json:"building"`
	BuildingDescription    string  `json:"buildingDescription"`
	Room                   string  `json:"room"`
	StartDate              string  `json:"startDate"`
	EndDate                string  `json:"endDate"`
	HoursWeek              float64 `json:"hoursWeek"`
	CreditHourSession      float64 `json:"creditHourSession"`
	MeetingType            string  `json:"meetingType"`
	MeetingTypeDescription string  `json:"meetingTypeDescription"`
	MeetingScheduleType    string  `json:"meetingScheduleType"`
	Category               string  `json:"category"`
	CourseReferenceNumber  string  `json:"courseReferenceNumber"`
	Term                   string  `json:"term"`
}

// FlexInt decodes numeric Banner fields that may arrive as numbers, quoted
// numbers, or null. Anything unreadable decodes to zero so one sloppy record
// never sinks a whole dataset.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}
	*f = 0
	return nil
}

// Int returns the plain integer value.
func (f FlexInt) Int() int { return int(f) }
