// Package collect implements the paginated profile collector over the
// people-search API.
package collect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrei/stealth-scout/internal/search"
	"github.com/andrei/stealth-scout/internal/types"
)

// maxRetries is the number of additional attempts after a failed page
// request before the page is abandoned.
const maxRetries = 3

// PeopleSearcher is the slice of the search client the collector needs.
type PeopleSearcher interface {
	SearchPeople(ctx context.Context, query string, page, perPage int) (*search.PeopleSearchResponse, []byte, error)
}

// PageWriter persists a raw page response verbatim before it is transformed
// into profiles.
type PageWriter interface {
	WritePage(qt types.QueryType, page int, raw []byte) error
}

// Options configures a Collector.
type Options struct {
	// PageSize is the per_page value for each request; the API caps it at 20.
	PageSize int
	// PageDelay is slept after every successful page to respect rate limits.
	PageDelay time.Duration
	// RetryDelay is the linear backoff unit: attempt N sleeps N*RetryDelay.
	RetryDelay time.Duration
	// Pages receives every raw page body; nil disables persistence.
	Pages PageWriter
}

// Collector retrieves all pages for a query, one request at a time.
// Requests are issued strictly in increasing page order; there are never
// concurrent in-flight requests for the same query.
type Collector struct {
	searcher   PeopleSearcher
	pages      PageWriter
	pageSize   int
	pageDelay  time.Duration
	retryDelay time.Duration
	sleep      func(time.Duration)
}

// New returns a Collector using the given searcher and options.
func New(searcher PeopleSearcher, opts Options) *Collector {
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > 20 {
		pageSize = 20
	}
	return &Collector{
		searcher:   searcher,
		pages:      opts.Pages,
		pageSize:   pageSize,
		pageDelay:  opts.PageDelay,
		retryDelay: opts.RetryDelay,
		sleep:      time.Sleep,
	}
}

// Collect walks the query's pages until the API reports no more data. A page
// that still fails after all retries is abandoned and collection continues
// with the next page, trading completeness for recall. Only a failure on the
// very first page, before any pagination metadata is known, abandons the
// whole query.
//
// Termination trusts the API-reported total_pages even though it has been
// observed to undercount the true result set; that is a known limitation of
// the upstream API, deliberately not corrected here.
func (c *Collector) Collect(ctx context.Context, q types.SearchQuery) ([]types.Profile, error) {
	var out []types.Profile
	page := 1
	totalPages := 0

	for {
		resp, raw, err := c.fetchPage(ctx, q.Query, page)
		if err != nil {
			if totalPages == 0 {
				// No page has succeeded yet, so the pagination extent is
				// unknown; skip the query rather than probe blindly.
				return nil, fmt.Errorf("collecting %s page %d: %w", q.Type, page, err)
			}
			fmt.Printf("Warning: abandoning %s page %d after %d retries: %v\n", q.Type, page, maxRetries, err)
			if page >= totalPages {
				break
			}
			page++
			continue
		}

		if c.pages != nil {
			if werr := c.pages.WritePage(q.Type, page, raw); werr != nil {
				return out, fmt.Errorf("persisting %s page %d: %w", q.Type, page, werr)
			}
		}

		if len(resp.Data) == 0 {
			break
		}

		for _, rec := range resp.Data {
			out = append(out, toProfile(rec, q.Type))
		}
		totalPages = resp.Pagination.TotalPages

		if page >= totalPages {
			break
		}
		page++
		c.sleep(c.pageDelay)
	}

	return out, nil
}

// fetchPage requests one page, retrying transient failures with linear
// backoff. Terminal failures (non-retryable HTTP classes) stop immediately.
func (c *Collector) fetchPage(ctx context.Context, query string, page int) (*search.PeopleSearchResponse, []byte, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(time.Duration(attempt) * c.retryDelay)
		}

		resp, raw, err := c.searcher.SearchPeople(ctx, query, page, c.pageSize)
		if err == nil {
			return resp, raw, nil
		}
		lastErr = err
		if !search.IsRetryable(err) {
			break
		}
	}
	return nil, nil, lastErr
}

// toProfile converts one API result row into a Profile tagged with its
// originating query.
func toProfile(rec search.ProfileRecord, qt types.QueryType) types.Profile {
	return types.Profile{
		ProfileID:       rec.ProfileID,
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		SubTitle:        rec.SubTitle,
		LocationCity:    rec.LocationCity,
		LocationCountry: rec.LocationCountry,
		LIURL:           rec.LIURL,
		Skills:          strings.Join(rec.Skills, ", "),
		QueryType:       qt,
	}
}
