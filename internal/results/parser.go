// Package results turns one raw search response into normalized result
// records plus the next continuation token.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/famomatic/ytsearch/internal/innertube"
)

// ErrMalformedEnvelope indicates the results-bearing section could not be
// located under the envelope expected for the requested page kind.
var ErrMalformedEnvelope = errors.New("malformed search envelope")

// PageKind selects which response envelope the parser expects. The caller
// always knows whether it issued an initial or a continuation request, so
// the envelope is dispatched explicitly instead of probed structurally.
type PageKind int

const (
	InitialPage PageKind = iota
	ContinuationPage
)

func (k PageKind) String() string {
	if k == ContinuationPage {
		return "continuation"
	}
	return "initial"
}

// Video is a normalized video row.
type Video struct {
	ID          string
	URL         string
	Title       string
	ChannelName string
	ChannelURL  string
	ViewCount   int64
	// Duration is empty for livestreams and scheduled releases.
	Duration string
}

// Channel is a normalized channel row.
type Channel struct {
	ChannelID  string
	ChannelURL string
}

// Item is one extracted result. Exactly one variant field is non-nil.
type Item struct {
	Video   *Video
	Channel *Channel
}

// DiagnosticKind classifies a per-entry parse diagnostic.
type DiagnosticKind string

const (
	// DiagnosticUnrecognizedRenderer reports a renderer shape outside the
	// known variant set, usually a sign of platform-side format drift.
	DiagnosticUnrecognizedRenderer DiagnosticKind = "unrecognized_renderer"
	// DiagnosticFieldExtraction reports a recognized renderer whose required
	// fields could not be extracted. The entry is omitted from the page.
	DiagnosticFieldExtraction DiagnosticKind = "field_extraction"
)

// Diagnostic records one discarded entry. Diagnostics never abort the page.
type Diagnostic struct {
	Kind      DiagnosticKind
	EntryKeys []string
	Query     string
	Detail    string
}

// Page is the parse output for one response document.
type Page struct {
	// Items is nil when the page carried no item section at all, and empty
	// (non-nil) when the section was present but every entry was discarded.
	Items       []Item
	NextToken   string
	Diagnostics []Diagnostic
}

// Parse extracts the ordered results and next continuation token from one
// response. Entry-level failures are contained as diagnostics; only a
// missing envelope is an error.
func Parse(resp *innertube.SearchResponse, kind PageKind, query string) (*Page, error) {
	sections, err := sectionsFor(resp, kind)
	if err != nil {
		return nil, err
	}

	var itemSection *innertube.ItemSectionRenderer
	var continuationItem *innertube.ContinuationItemRenderer
	for i := range sections {
		if itemSection == nil && sections[i].ItemSectionRenderer != nil {
			itemSection = sections[i].ItemSectionRenderer
		}
		if continuationItem == nil && sections[i].ContinuationItemRenderer != nil {
			continuationItem = sections[i].ContinuationItemRenderer
		}
	}

	page := &Page{}
	if continuationItem != nil {
		page.NextToken = continuationItem.ContinuationEndpoint.ContinuationCommand.Token
	}
	if itemSection == nil {
		return page, nil
	}

	page.Items = make([]Item, 0, len(itemSection.Contents))
	for _, raw := range itemSection.Contents {
		item, diag := classifyEntry(raw, query)
		if diag != nil {
			page.Diagnostics = append(page.Diagnostics, *diag)
		}
		if item != nil {
			page.Items = append(page.Items, *item)
		}
	}
	return page, nil
}

func sectionsFor(resp *innertube.SearchResponse, kind PageKind) ([]innertube.SectionContent, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedEnvelope)
	}
	switch kind {
	case ContinuationPage:
		for _, cmd := range resp.OnResponseReceivedCommands {
			if cmd.AppendContinuationItemsAction != nil {
				return cmd.AppendContinuationItemsAction.ContinuationItems, nil
			}
		}
		return nil, fmt.Errorf("%w: no appendContinuationItemsAction in continuation response", ErrMalformedEnvelope)
	default:
		if resp.Contents == nil ||
			resp.Contents.TwoColumnSearchResultsRenderer == nil ||
			resp.Contents.TwoColumnSearchResultsRenderer.PrimaryContents == nil ||
			resp.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer == nil {
			return nil, fmt.Errorf("%w: no sectionListRenderer in initial response", ErrMalformedEnvelope)
		}
		return resp.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents, nil
	}
}

// classifyEntry decodes one item-section entry and dispatches on its
// renderer variant in a fixed order: ad, shelf, radio, playlist, card,
// didYouMean, promo, video, channel. Anything else is discarded with an
// unrecognized-renderer diagnostic.
func classifyEntry(raw json.RawMessage, query string) (*Item, *Diagnostic) {
	var entry innertube.SearchItem
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, &Diagnostic{
			Kind:   DiagnosticFieldExtraction,
			Query:  query,
			Detail: "undecodable entry: " + err.Error(),
		}
	}

	switch {
	case entry.SearchPyvRenderer != nil && len(entry.SearchPyvRenderer.Ads) > 0:
		return nil, nil
	case entry.ShelfRenderer != nil:
		return nil, nil
	case entry.RadioRenderer != nil:
		return nil, nil
	case entry.PlaylistRenderer != nil:
		return nil, nil
	case entry.HorizontalCardListRenderer != nil:
		return nil, nil
	case entry.DidYouMeanRenderer != nil:
		return nil, nil
	case entry.BackgroundPromoRenderer != nil:
		return nil, nil
	case entry.VideoRenderer != nil:
		video, err := extractVideo(entry.VideoRenderer)
		if err != nil {
			return nil, &Diagnostic{
				Kind:   DiagnosticFieldExtraction,
				Query:  query,
				Detail: err.Error(),
			}
		}
		return &Item{Video: video}, nil
	case entry.ChannelRenderer != nil:
		channel, err := extractChannel(entry.ChannelRenderer)
		if err != nil {
			return nil, &Diagnostic{
				Kind:   DiagnosticFieldExtraction,
				Query:  query,
				Detail: err.Error(),
			}
		}
		return &Item{Channel: channel}, nil
	}

	return nil, &Diagnostic{
		Kind:      DiagnosticUnrecognizedRenderer,
		EntryKeys: entryKeys(raw),
		Query:     query,
	}
}

func extractVideo(r *innertube.VideoRenderer) (*Video, error) {
	if r.VideoID == "" {
		return nil, errors.New("videoRenderer: missing videoId")
	}
	title, ok := r.Title.FirstText()
	if !ok {
		return nil, fmt.Errorf("videoRenderer %s: missing title", r.VideoID)
	}
	channelName, ok := r.OwnerText.FirstText()
	if !ok {
		return nil, fmt.Errorf("videoRenderer %s: missing ownerText", r.VideoID)
	}
	channelURL := ""
	if len(r.OwnerText.Runs) > 0 && r.OwnerText.Runs[0].NavigationEndpoint != nil {
		channelURL = r.OwnerText.Runs[0].NavigationEndpoint.CommandMetadata.WebCommandMetadata.URL
	}
	if channelURL == "" {
		return nil, fmt.Errorf("videoRenderer %s: missing channel url", r.VideoID)
	}
	viewCount, err := parseViewCount(r.ViewCountText)
	if err != nil {
		return nil, fmt.Errorf("videoRenderer %s: %w", r.VideoID, err)
	}

	duration := ""
	if r.LengthText != nil {
		duration = r.LengthText.SimpleText
	}

	return &Video{
		ID:          r.VideoID,
		URL:         "https://www.youtube.com/watch?v=" + r.VideoID,
		Title:       title,
		ChannelName: channelName,
		ChannelURL:  absoluteURL(channelURL),
		ViewCount:   viewCount,
		Duration:    duration,
	}, nil
}

func extractChannel(r *innertube.ChannelRenderer) (*Channel, error) {
	if r.ChannelID == "" {
		return nil, errors.New("channelRenderer: missing channelId")
	}
	return &Channel{
		ChannelID:  r.ChannelID,
		ChannelURL: "https://www.youtube.com/channel/" + r.ChannelID,
	}, nil
}

func absoluteURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return "https://www.youtube.com" + u
	}
	return u
}

func entryKeys(raw json.RawMessage) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
