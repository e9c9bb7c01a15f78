// Package banner is an HTTP client for the campus Banner registration
// system. The search endpoints sit behind a browser session: callers supply
// a JSESSIONID captured from a logged-in browser, and the data form must be
// reset before every search or Banner replays the previous query's results.
package banner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ahatanar/StudentSpace/internal/app/models"
	"github.com/ahatanar/StudentSpace/internal/pkg/logger"
)

const (
	// DefaultBaseURL is the production Banner self-service root.
	DefaultBaseURL = "https://ssp.mycampus.ca/StudentRegistrationSsb/ssb"
	// DefaultMEPCode identifies the institution within the shared Banner
	// installation.
	DefaultMEPCode = "UOIT"

	// Banner rejects requests without a browser-like User-Agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// pageSize is the searchResults page size used by the full crawl.
	pageSize = 500
)

// Client talks to the Banner registration system using a captured session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mepCode    string
	jsessionID string
}

// NewClient creates a Banner client bound to a JSESSIONID session cookie.
func NewClient(jsessionID string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		mepCode:    DefaultMEPCode,
		jsessionID: jsessionID,
	}
}

// WithBaseURL overrides the Banner root URL, for test servers.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if c.jsessionID != "" {
		req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: c.jsessionID})
	}
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("banner request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read banner response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("banner returned status %d for %s", resp.StatusCode, req.URL.Path)
	}
	return body, nil
}

// subjectCourse is one entry of the subject/course combo search.
type subjectCourse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

var subjectPrefix = regexp.MustCompile(`^[A-Z]+`)

// SubjectCodes discovers the term's subject codes by running a wildcard
// course search and collecting the unique alpha prefixes of the course codes
// ("CSCI" from "CSCI1000U").
func (c *Client) SubjectCodes(ctx context.Context, term string) ([]string, error) {
	params := url.Values{
		"searchTerm": {"%"},
		"term":       {term},
		"offset":     {"1"},
		"max":        {"1000"},
		"mepCode":    {c.mepCode},
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/classSearch/get_subjectcoursecombo", params)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var combos []subjectCourse
	if err := json.Unmarshal(body, &combos); err != nil {
		return nil, fmt.Errorf("failed to decode subject list: %w", err)
	}

	seen := make(map[string]bool)
	var subjects []string
	for _, combo := range combos {
		prefix := subjectPrefix.FindString(combo.Code)
		if prefix == "" || seen[prefix] {
			continue
		}
		seen[prefix] = true
		subjects = append(subjects, prefix)
	}
	sort.Strings(subjects)

	logger.Info().Str("term", term).Int("subjects", len(subjects)).Msg("Discovered subjects")
	return subjects, nil
}

// resetDataForm clears Banner's server-side search state. Must run before
// every searchResults call.
func (c *Client) resetDataForm(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/classSearch/resetDataForm", nil)
	if err != nil {
		return err
	}
	if _, err := c.do(req); err != nil {
		return fmt.Errorf("failed to reset data form: %w", err)
	}
	return nil
}

// SearchResultsPage is the envelope of one searchResults response.
type SearchResultsPage struct {
	Success    bool             `json:"success"`
	TotalCount int              `json:"totalCount"`
	Data       []models.Section `json:"data"`
}

// Sections fetches one page of sections for a subject. A null data field
// means the session is invalid or expired.
func (c *Client) Sections(ctx context.Context, term, subject string, offset, limit int) (*SearchResultsPage, error) {
	if err := c.resetDataForm(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"txt_subject":   {subject},
		"txt_term":      {term},
		"pageOffset":    {strconv.Itoa(offset)},
		"pageMaxSize":   {strconv.Itoa(limit)},
		"sortColumn":    {"subjectDescription"},
		"sortDirection": {"asc"},
		"mepCode":       {c.mepCode},
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/searchResults/searchResults", params)
	if err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var page SearchResultsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	if page.Data == nil {
		return nil, fmt.Errorf("no sections returned for term %s: check the JSESSIONID", term)
	}
	return &page, nil
}

// AllSections crawls the full term: every subject, every page. Subjects that
// fail mid-crawl are logged and skipped so one bad subject does not lose the
// rest of the dataset.
func (c *Client) AllSections(ctx context.Context, term string) ([]models.Section, error) {
	subjects, err := c.SubjectCodes(ctx, term)
	if err != nil {
		return nil, err
	}

	var all []models.Section
	for _, subject := range subjects {
		offset := 0
		fetched := 0
		for {
			page, err := c.Sections(ctx, term, subject, offset, pageSize)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				logger.Warn().Err(err).Str("subject", subject).Int("offset", offset).Msg("Subject fetch failed, skipping rest of subject")
				break
			}

			all = append(all, page.Data...)
			fetched += len(page.Data)
			offset += pageSize
			if offset >= page.TotalCount || len(page.Data) == 0 {
				break
			}
		}
		logger.Info().Str("subject", subject).Int("sections", fetched).Msg("Subject crawled")
	}

	logger.Info().Str("term", term).Int("sections", len(all)).Msg("Term crawl complete")
	return all, nil
}
