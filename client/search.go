// Package client provides paginated YouTube search over the platform's
// internal query API. A Search session lazily fetches its first page,
// accumulates typed results across continuation pages, and exposes the
// autocomplete suggestions carried by the first page.
package client

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/famomatic/ytsearch/internal/innertube"
	"github.com/famomatic/ytsearch/internal/results"
)

// Search is one search session: a fixed query plus the state accumulated
// while paging through its results. Sessions are safe for concurrent use;
// independent sessions share nothing.
type Search struct {
	query     string
	filter    Filter
	config    Config
	requester *innertube.Requester
	logger    Logger

	mu sync.Mutex
	// fetched distinguishes a session that has never fetched from one whose
	// continuation is exhausted.
	fetched      bool
	accumulated  []Result
	continuation string
	// firstPage is retained for the session lifetime: it alone carries the
	// completion suggestions and the estimated result count.
	firstPage          *innertube.SearchResponse
	suggestions        []string
	suggestionsDerived bool
	diagnostics        []Diagnostic
}

// New creates a search session for query with no result-type restriction
// and default configuration.
func New(query string) *Search {
	return NewWithConfig(query, FilterNone, Config{})
}

// NewWithFilter creates a search session restricted to one result type.
func NewWithFilter(query string, filter Filter) *Search {
	return NewWithConfig(query, filter, Config{})
}

// NewWithConfig creates a fully configured search session. The query and
// filter are fixed for the session lifetime.
func NewWithConfig(query string, filter Filter, config Config) *Search {
	if config.HTTPClient == nil {
		config.HTTPClient = defaultHTTPClient(config.ProxyURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Search{
		query:     query,
		filter:    filter,
		config:    config,
		requester: innertube.NewRequester(innertube.WebClient, config.ToInnerTubeConfig()),
		logger:    logger,
	}
}

// Query returns the session's query text.
func (s *Search) Query() string {
	return s.query
}

// Results returns the accumulated search results. The first call performs
// the initial fetch; later calls return the cached list without refetching,
// even when the first page was empty. Grow the list with GetNextResults.
func (s *Search) Results(ctx context.Context) ([]Result, error) {
	ctx, cancel := withDefaultTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFetchedLocked(ctx); err != nil {
		return nil, err
	}
	return s.accumulated, nil
}

// GetNextResults fetches the next page and appends its results to the list
// served by Results. It returns ErrNoMoreResults when the session is
// exhausted or has not fetched its first page yet. Session state is only
// updated after the whole fetch-and-parse succeeds.
func (s *Search) GetNextResults(ctx context.Context) error {
	ctx, cancel := withDefaultTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fetched || s.continuation == "" {
		return ErrNoMoreResults
	}

	page, err := s.fetchAndParseLocked(ctx, results.ContinuationPage, s.continuation)
	if err != nil {
		return err
	}

	s.accumulated = append(s.accumulated, toResults(page.Items)...)
	s.continuation = page.NextToken
	s.recordDiagnosticsLocked(page.Diagnostics)
	return nil
}

// CompletionSuggestions returns the autocomplete suggestions the platform
// provided for the query. Suggestions arrive on the first page only; the
// initial fetch is performed if it has not happened yet and the derived
// list is cached for the session lifetime.
func (s *Search) CompletionSuggestions(ctx context.Context) ([]string, error) {
	ctx, cancel := withDefaultTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFetchedLocked(ctx); err != nil {
		return nil, err
	}
	if !s.suggestionsDerived {
		if s.firstPage != nil && len(s.firstPage.Refinements) > 0 {
			s.suggestions = append([]string(nil), s.firstPage.Refinements...)
		}
		s.suggestionsDerived = true
	}
	return s.suggestions, nil
}

// EstimatedResults returns the platform's estimated total result count for
// the query, reported on the first page. 0 when the platform omits it.
func (s *Search) EstimatedResults(ctx context.Context) (int64, error) {
	ctx, cancel := withDefaultTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureFetchedLocked(ctx); err != nil {
		return 0, err
	}
	if s.firstPage == nil {
		return 0, nil
	}
	return parseInt64String(s.firstPage.EstimatedResults), nil
}

// Diagnostics returns the entry-level diagnostics collected so far, in the
// order the offending entries were encountered.
func (s *Search) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Diagnostic(nil), s.diagnostics...)
}

func (s *Search) ensureFetchedLocked(ctx context.Context) error {
	if s.fetched {
		return nil
	}

	resp, err := s.requester.Search(ctx, s.query, string(s.filter), "")
	if err != nil {
		return mapError(err)
	}
	page, err := results.Parse(resp, results.InitialPage, s.query)
	if err != nil {
		return mapError(err)
	}

	s.firstPage = resp
	s.accumulated = toResults(page.Items)
	s.continuation = page.NextToken
	s.recordDiagnosticsLocked(page.Diagnostics)
	s.fetched = true
	return nil
}

func (s *Search) fetchAndParseLocked(ctx context.Context, kind results.PageKind, continuation string) (*results.Page, error) {
	resp, err := s.requester.Search(ctx, s.query, string(s.filter), continuation)
	if err != nil {
		return nil, mapError(err)
	}
	page, err := results.Parse(resp, kind, s.query)
	if err != nil {
		return nil, mapError(err)
	}
	return page, nil
}

func (s *Search) recordDiagnosticsLocked(diags []results.Diagnostic) {
	for _, d := range diags {
		cd := toDiagnostic(d)
		s.diagnostics = append(s.diagnostics, cd)
		switch cd.Kind {
		case DiagnosticUnrecognizedRenderer:
			s.logger.Warnf("unrecognized renderer encountered: keys=%s query=%q",
				strings.Join(cd.EntryKeys, ","), cd.Query)
		default:
			s.logger.Warnf("search entry dropped: %s (query=%q)", cd.Detail, cd.Query)
		}
	}
}

func toResults(items []results.Item) []Result {
	if items == nil {
		return nil
	}
	out := make([]Result, 0, len(items))
	for _, item := range items {
		switch {
		case item.Video != nil:
			out = append(out, VideoResult{
				ID:          item.Video.ID,
				URL:         item.Video.URL,
				Title:       item.Video.Title,
				ChannelName: item.Video.ChannelName,
				ChannelURL:  item.Video.ChannelURL,
				ViewCount:   item.Video.ViewCount,
				Duration:    item.Video.Duration,
			})
		case item.Channel != nil:
			out = append(out, ChannelResult{
				ChannelID:  item.Channel.ChannelID,
				ChannelURL: item.Channel.ChannelURL,
			})
		}
	}
	return out
}

func toDiagnostic(d results.Diagnostic) Diagnostic {
	return Diagnostic{
		Kind:      DiagnosticKind(d.Kind),
		EntryKeys: append([]string(nil), d.EntryKeys...),
		Query:     d.Query,
		Detail:    d.Detail,
	}
}

func parseInt64String(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
