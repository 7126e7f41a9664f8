package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the HTTP request timeout for API calls.
const DefaultTimeout = 30 * time.Second

// PeopleSearchRequest is the payload for one page of a people search.
type PeopleSearchRequest struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Query   string `json:"query"`
}

// ProfileRecord is one result row from the people-search endpoint.
type ProfileRecord struct {
	ProfileID       string   `json:"profile_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	SubTitle        string   `json:"sub_title"`
	LocationCity    string   `json:"location_city"`
	LocationCountry string   `json:"location_country"`
	LIURL           string   `json:"li_url"`
	Skills          []string `json:"skills"`
}

// Pagination is the API-reported paging metadata.
type Pagination struct {
	TotalPages int `json:"total_pages"`
}

// PeopleSearchResponse is one decoded search page.
type PeopleSearchResponse struct {
	Data       []ProfileRecord `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// ProfileDetail is the decoded profile-details response. All nested levels
// are optional; extraction degrades to nulls when keys are missing.
type ProfileDetail struct {
	SubTitle       string          `json:"sub_title"`
	PositionGroups []PositionGroup `json:"position_groups"`
}

// PositionGroup holds one employer and its positions.
type PositionGroup struct {
	Company          *DetailCompany    `json:"company"`
	ProfilePositions []ProfilePosition `json:"profile_positions"`
}

// DetailCompany identifies the employer of a position group.
type DetailCompany struct {
	Name string `json:"name"`
}

// ProfilePosition is one position within a group.
type ProfilePosition struct {
	Title          string      `json:"title"`
	Date           *DetailDate `json:"date"`
	EmploymentType string      `json:"employment_type"`
	Location       string      `json:"location"`
}

// DetailDate holds a position's start/end year-month pair.
type DetailDate struct {
	Start *YearMonth `json:"start"`
}

// YearMonth is a partial date; Month defaults to January when absent.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Client calls the hosted search and profile-detail endpoints. All calls are
// blocking, synchronous round-trips; the collector serializes them.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a Client for the given API root and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SearchPeople fetches one page of people-search results. The raw response
// body is returned alongside the decoded page so callers can persist it
// verbatim for auditability.
func (c *Client) SearchPeople(ctx context.Context, query string, page, perPage int) (*PeopleSearchResponse, []byte, error) {
	raw, err := c.post(ctx, "/search/hosted/people", PeopleSearchRequest{
		Page:    page,
		PerPage: perPage,
		Query:   query,
	})
	if err != nil {
		return nil, nil, err
	}

	var resp PeopleSearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil, &DecodeError{Message: "people search page", Cause: err}
	}
	return &resp, raw, nil
}

// ProfileDetails fetches the extended detail record for one profile.
func (c *Client) ProfileDetails(ctx context.Context, profileID string) (*ProfileDetail, []byte, error) {
	raw, err := c.post(ctx, "/profile-details", map[string]string{"profile_id": profileID})
	if err != nil {
		return nil, nil, err
	}

	var detail ProfileDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, nil, &DecodeError{Message: fmt.Sprintf("profile details for %s", profileID), Cause: err}
	}
	return &detail, raw, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &RequestError{Message: "encoding payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Message: "creating request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "executing request", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Message: "reading response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
