package banner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahatanar/StudentSpace/internal/app/models"
)

const enrollmentFragment = `
<div class="enrollment-info">
  <span class="status-bold">Enrollment Actual:</span> <span dir="ltr"> 42 </span><br/>
  <span class="status-bold">Enrollment Maximum:</span> <span dir="ltr"> 60 </span><br/>
  <span class="status-bold">Enrollment Seats Available:</span> <span dir="ltr"> 18 </span><br/>
  <span class="status-bold">Waitlist Capacity:</span> <span dir="ltr"> 10 </span><br/>
  <span class="status-bold">Waitlist Actual:</span> <span dir="ltr"> 3 </span><br/>
  <span class="status-bold">Waitlist Seats Available:</span> <span dir="ltr"> 7 </span>
</div>`

// newBannerServer fakes the three Banner endpoints the client uses.
func newBannerServer(t *testing.T, sectionsBySubject map[string][]models.Section) (*httptest.Server, *int) {
	t.Helper()
	resets := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/classSearch/get_subjectcoursecombo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "%", r.URL.Query().Get("searchTerm"))
		fmt.Fprint(w, `[
			{"code": "CSCI1000U", "description": "Intro to CS"},
			{"code": "CSCI2040U", "description": "Software Design"},
			{"code": "MATH1010U", "description": "Calculus I"}
		]`)
	})
	mux.HandleFunc("/classSearch/resetDataForm", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		resets++
		fmt.Fprint(w, `{"reset": true}`)
	})
	mux.HandleFunc("/searchResults/searchResults", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("JSESSIONID")
		require.NoError(t, err)
		assert.Equal(t, "test-session", cookie.Value)

		subject := r.URL.Query().Get("txt_subject")
		offset, _ := strconv.Atoi(r.URL.Query().Get("pageOffset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("pageMaxSize"))

		sections := sectionsBySubject[subject]
		end := offset + limit
		if end > len(sections) {
			end = len(sections)
		}
		var page []models.Section
		if offset < len(sections) {
			page = sections[offset:end]
		}

		w.Header().Set("Content-Type", "application/json")
		payload := map[string]interface{}{
			"success":    true,
			"totalCount": len(sections),
			"data":       page,
		}
		if page == nil {
			payload["data"] = []models.Section{}
		}
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		_, _ = w.Write(encoded)
	})
	mux.HandleFunc("/searchResults/getEnrollmentInfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, enrollmentFragment)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &resets
}

func TestSubjectCodes(t *testing.T) {
	server, _ := newBannerServer(t, nil)
	client := NewClient("test-session").WithBaseURL(server.URL)

	subjects, err := client.SubjectCodes(context.Background(), "202601")
	require.NoError(t, err)
	assert.Equal(t, []string{"CSCI", "MATH"}, subjects)
}

func TestSectionsResetsBeforeEverySearch(t *testing.T) {
	server, resets := newBannerServer(t, map[string][]models.Section{
		"CSCI": {{CourseReferenceNumber: "40001"}, {CourseReferenceNumber: "40002"}},
	})
	client := NewClient("test-session").WithBaseURL(server.URL)

	page, err := client.Sections(context.Background(), "202601", "CSCI", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "40001", page.Data[0].CourseReferenceNumber)
	assert.Equal(t, 1, *resets)

	_, err = client.Sections(context.Background(), "202601", "CSCI", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, *resets)
}

func TestAllSectionsCrawlsEverySubject(t *testing.T) {
	server, _ := newBannerServer(t, map[string][]models.Section{
		"CSCI": {{CourseReferenceNumber: "40001"}, {CourseReferenceNumber: "40002"}},
		"MATH": {{CourseReferenceNumber: "50001"}},
	})
	client := NewClient("test-session").WithBaseURL(server.URL)

	sections, err := client.AllSections(context.Background(), "202601")
	require.NoError(t, err)
	assert.Len(t, sections, 3)
}

func TestEnrollmentInfoParsesTheFragment(t *testing.T) {
	server, _ := newBannerServer(t, nil)
	client := NewClient("test-session").WithBaseURL(server.URL)

	info, err := client.EnrollmentInfo(context.Background(), "202601", "40001")
	require.NoError(t, err)

	assert.Equal(t, 42, info.Enrollment)
	assert.Equal(t, 60, info.MaximumEnrollment)
	assert.Equal(t, 18, info.SeatsAvailable)
	assert.Equal(t, 10, info.WaitCapacity)
	assert.Equal(t, 3, info.WaitCount)
	assert.Equal(t, 7, info.WaitAvailable)
}

func TestEnrollmentInfoRejectsPartialFragments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/searchResults/getEnrollmentInfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<span>Enrollment Actual:</span> <span> 5 </span>`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient("test-session").WithBaseURL(server.URL)
	_, err := client.EnrollmentInfo(context.Background(), "202601", "40001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to extract")
}

func TestRefreshEnrollment(t *testing.T) {
	server, _ := newBannerServer(t, nil)
	client := NewClient("test-session").WithBaseURL(server.URL)

	sections := []models.Section{
		{CourseReferenceNumber: "40001", Enrollment: 1},
		{CourseReferenceNumber: ""}, // no CRN, skipped
	}
	updated, err := client.RefreshEnrollment(context.Background(), "202601", sections)
	require.NoError(t, err)

	assert.Equal(t, 1, updated)
	assert.Equal(t, 42, sections[0].Enrollment.Int())
	assert.Equal(t, 60, sections[0].MaximumEnrollment.Int())
	assert.Zero(t, sections[1].Enrollment.Int())
}
