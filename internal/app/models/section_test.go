package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"plain number", `{"count": 42}`, 42},
		{"quoted number", `{"count": "17"}`, 17},
		{"float truncates", `{"count": 3.0}`, 3},
		{"null", `{"count": null}`, 0},
		{"absent", `{}`, 0},
		{"garbage", `{"count": "full"}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				Count FlexInt `json:"count"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &out))
			assert.Equal(t, tc.want, out.Count.Int())
		})
	}
}

func TestSectionUnmarshal(t *testing.T) {
	payload := `{
		"id": 12345,
		"term": "202601",
		"termDesc": "Winter 2026",
		"courseReferenceNumber": "70233",
		"subject": "CSCI",
		"courseNumber": "2050U",
		"campusDescription": "Oshawa - North",
		"instructionalMethodDescription": "In-Person",
		"enrollment": 180,
		"maximumEnrollment": 200,
		"creditHours": null,
		"linkIdentifier": null,
		"meetingsFaculty": [
			{
				"category": "01",
				"courseReferenceNumber": "70233",
				"meetingTime": {
					"beginTime": "940",
					"endTime": "1100",
					"monday": true,
					"wednesday": true,
					"campusDescription": "Oshawa - North",
					"room": "UA1350"
				}
			},
			{
				"category": "02",
				"courseReferenceNumber": "70233",
				"meetingTime": null
			}
		]
	}`

	var s Section
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, "202601", s.Term)
	assert.Equal(t, "70233", s.CourseReferenceNumber)
	assert.Equal(t, 180, s.Enrollment.Int())
	assert.Equal(t, 200, s.MaximumEnrollment.Int())
	assert.Nil(t, s.CreditHours)
	assert.Equal(t, "", s.LinkIdentifier)

	require.Len(t, s.MeetingsFaculty, 2)
	mt := s.MeetingsFaculty[0].MeetingTime
	require.NotNil(t, mt)
	assert.Equal(t, "940", mt.BeginTime)
	assert.Equal(t, "1100", mt.EndTime)
	assert.True(t, mt.Monday)
	assert.True(t, mt.Wednesday)
	assert.False(t, mt.Friday)
	assert.Nil(t, s.MeetingsFaculty[1].MeetingTime)
}
