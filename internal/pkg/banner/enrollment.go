package banner

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

// EnrollmentInfo is the live availability of one section.
type EnrollmentInfo struct {
	Enrollment        int
	MaximumEnrollment int
	SeatsAvailable    int
	WaitCapacity      int
	WaitCount         int
	WaitAvailable     int
}

// getEnrollmentInfo returns an HTML fragment of label/value span pairs:
//
//	<span class="status-bold">Enrollment Actual:</span> <span dir="ltr"> 42 </span>
var enrollmentLabels = map[string]func(*EnrollmentInfo, int){
	"Enrollment Actual:":                func(e *EnrollmentInfo, v int) { e.Enrollment = v },
	"Enrollment Maximum:":               func(e *EnrollmentInfo, v int) { e.MaximumEnrollment = v },
	"Enrollment Seats Available:":       func(e *EnrollmentInfo, v int) { e.SeatsAvailable = v },
	"Waitlist Capacity:":                func(e *EnrollmentInfo, v int) { e.WaitCapacity = v },
	"Waitlist Actual:":                  func(e *EnrollmentInfo, v int) { e.WaitCount = v },
	"Waitlist Seats Available:":         func(e *EnrollmentInfo, v int) { e.WaitAvailable = v },
}

// EnrollmentInfo fetches and parses the live enrollment counts for one CRN.
// Every expected label must be present; a partial fragment usually means the
// session expired mid-crawl.
func (c *Client) EnrollmentInfo(ctx context.Context, term, crn string) (*EnrollmentInfo, error) {
	params := url.Values{
		"term":                  {term},
		"courseReferenceNumber": {crn},
		"mepCode":               {c.mepCode},
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/searchResults/getEnrollmentInfo", params)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse enrollment fragment: %w", err)
	}

	info := &EnrollmentInfo{}
	found := make(map[string]bool)
	doc.Find("span").Each(func(_ int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Text())
		assign, ok := enrollmentLabels[label]
		if !ok {
			return
		}
		value, err := strconv.Atoi(strings.TrimSpace(s.Next().Text()))
		if err != nil {
			return
		}
		assign(info, value)
		found[label] = true
	})

	for label := range enrollmentLabels {
		if !found[label] {
			return nil, fmt.Errorf("unable to extract %q for CRN %s in term %s", label, crn, term)
		}
	}
	return info, nil
}

// RefreshEnrollment re-queries live enrollment for every section in the
// dataset and updates the counts in place. Sections whose lookup fails keep
// their stored counts. Returns the number of sections updated.
func (c *Client) RefreshEnrollment(ctx context.Context, term string, sections []models.Section) (int, error) {
	updated := 0
	for i := range sections {
		crn := sections[i].CourseReferenceNumber
		if crn == "" {
			continue
		}

		info, err := c.EnrollmentInfo(ctx, term, crn)
		if err != nil {
			if ctx.Err() != nil {
				return updated, ctx.Err()
			}
			logger.Warn().Err(err).Str("crn", crn).Msg("Enrollment refresh failed, keeping stored counts")
			continue
		}

		sections[i].Enrollment = models.FlexInt(info.Enrollment)
		sections[i].MaximumEnrollment = models.FlexInt(info.MaximumEnrollment)
		sections[i].SeatsAvailable = models.FlexInt(info.SeatsAvailable)
		sections[i].WaitCapacity = models.FlexInt(info.WaitCapacity)
		sections[i].WaitCount = models.FlexInt(info.WaitCount)
		sections[i].WaitAvailable = models.FlexInt(info.WaitAvailable)
		updated++
	}
	return updated, nil
}
