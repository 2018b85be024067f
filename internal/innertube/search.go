package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
)

// HTTPStatusError reports a non-200 response from the search endpoint.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("innertube search: unexpected status %d", e.StatusCode)
}

// Requester executes search calls against the innertube API for one client
// profile.
type Requester struct {
	profile ClientProfile
	config  Config
}

func NewRequester(profile ClientProfile, config Config) *Requester {
	return &Requester{
		profile: profile,
		config:  config,
	}
}

// Search posts one search request. An empty continuation requests the
// initial page; params is the opaque filter token, forwarded verbatim.
func (r *Requester) Search(ctx context.Context, query, params, continuation string) (*SearchResponse, error) {
	req := NewSearchRequest(r.profile, query, SearchRequestOptions{
		Params:       params,
		Continuation: continuation,
		Language:     r.config.Language,
		Region:       r.config.Region,
		VisitorData:  r.config.VisitorData,
	})

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpointURL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", r.profile.UserAgent)
	httpReq.Header.Set("Origin", "https://"+r.profile.Host)
	httpReq.Header.Set("Referer", "https://"+r.profile.Host+"/results?search_query="+neturl.QueryEscape(query))
	for k, vals := range r.profile.Headers {
		for _, v := range vals {
			httpReq.Header.Add(k, v)
		}
	}
	for k, vals := range r.config.RequestHeaders {
		for _, v := range vals {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := r.httpClient().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(respBody, &searchResp); err != nil {
		return nil, fmt.Errorf("innertube search: decode response: %w", err)
	}

	return &searchResp, nil
}

func (r *Requester) endpointURL() string {
	base := r.config.BaseURL
	if base == "" {
		base = "https://" + r.profile.Host
	}
	return base + "/youtubei/v1/search?key=" + neturl.QueryEscape(r.profile.APIKey) + "&prettyPrint=false"
}

func (r *Requester) httpClient() *http.Client {
	if r.config.HTTPClient != nil {
		return r.config.HTTPClient
	}
	return http.DefaultClient
}
