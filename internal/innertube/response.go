package innertube

import "encoding/json"

// SearchResponse is the top-level response from the /search endpoint.
// Initial pages populate Contents; continuation pages populate
// OnResponseReceivedCommands. Refinements and EstimatedResults appear on
// initial pages only.
type SearchResponse struct {
	Contents                   *SearchContents             `json:"contents"`
	OnResponseReceivedCommands []OnResponseReceivedCommand `json:"onResponseReceivedCommands"`
	Refinements                []string                    `json:"refinements"`
	EstimatedResults           string                      `json:"estimatedResults"`
}

type SearchContents struct {
	TwoColumnSearchResultsRenderer *TwoColumnSearchResultsRenderer `json:"twoColumnSearchResultsRenderer"`
}

type TwoColumnSearchResultsRenderer struct {
	PrimaryContents *PrimaryContents `json:"primaryContents"`
}

type PrimaryContents struct {
	SectionListRenderer *SectionListRenderer `json:"sectionListRenderer"`
}

type SectionListRenderer struct {
	Contents []SectionContent `json:"contents"`
}

type OnResponseReceivedCommand struct {
	AppendContinuationItemsAction *AppendContinuationItemsAction `json:"appendContinuationItemsAction"`
}

type AppendContinuationItemsAction struct {
	ContinuationItems []SectionContent `json:"continuationItems"`
}

// SectionContent is one entry of a section list: either the item section
// holding result rows or the continuation carrier. A page holds at most one
// of each.
type SectionContent struct {
	ItemSectionRenderer      *ItemSectionRenderer      `json:"itemSectionRenderer"`
	ContinuationItemRenderer *ContinuationItemRenderer `json:"continuationItemRenderer"`
}

// ItemSectionRenderer keeps its entries raw so the parser can decode the
// known renderer variants and still report the key set of unknown ones.
type ItemSectionRenderer struct {
	Contents []json.RawMessage `json:"contents"`
}

type ContinuationItemRenderer struct {
	ContinuationEndpoint ContinuationEndpoint `json:"continuationEndpoint"`
}

type ContinuationEndpoint struct {
	ContinuationCommand ContinuationCommand `json:"continuationCommand"`
}

type ContinuationCommand struct {
	Token string `json:"token"`
}

// SearchItem is the closed union of renderer variants a result row can
// carry. A real payload sets exactly one field; the marker variants are
// kept raw because only their presence matters.
type SearchItem struct {
	SearchPyvRenderer          *SearchPyvRenderer `json:"searchPyvRenderer"`
	ShelfRenderer              json.RawMessage    `json:"shelfRenderer"`
	RadioRenderer              json.RawMessage    `json:"radioRenderer"`
	PlaylistRenderer           json.RawMessage    `json:"playlistRenderer"`
	HorizontalCardListRenderer json.RawMessage    `json:"horizontalCardListRenderer"`
	DidYouMeanRenderer         json.RawMessage    `json:"didYouMeanRenderer"`
	BackgroundPromoRenderer    json.RawMessage    `json:"backgroundPromoRenderer"`
	VideoRenderer              *VideoRenderer     `json:"videoRenderer"`
	ChannelRenderer            *ChannelRenderer   `json:"channelRenderer"`
}

// SearchPyvRenderer marks promoted (ad) rows.
type SearchPyvRenderer struct {
	Ads []json.RawMessage `json:"ads"`
}

type VideoRenderer struct {
	VideoID string   `json:"videoId"`
	Title   LangText `json:"title"`
	// OwnerText run 0 carries the channel name and its navigation endpoint.
	OwnerText LangText `json:"ownerText"`
	// ViewCountText uses runs for live content and simpleText otherwise.
	// Scheduled releases omit the field entirely.
	ViewCountText *LangText `json:"viewCountText"`
	// LengthText is absent for livestreams and scheduled releases.
	LengthText *LangText `json:"lengthText"`
}

type ChannelRenderer struct {
	ChannelID string `json:"channelId"`
}

// LangText is the platform's text container: either a simpleText string or
// a list of runs.
type LangText struct {
	SimpleText string    `json:"simpleText"`
	Runs       []TextRun `json:"runs"`
}

type TextRun struct {
	Text               string              `json:"text"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint"`
}

type NavigationEndpoint struct {
	CommandMetadata CommandMetadata `json:"commandMetadata"`
}

type CommandMetadata struct {
	WebCommandMetadata WebCommandMetadata `json:"webCommandMetadata"`
}

type WebCommandMetadata struct {
	URL string `json:"url"`
}

// FirstText returns run 0's text when runs are present, falling back to
// simpleText. ok is false when the container carries no text at all.
func (t LangText) FirstText() (text string, ok bool) {
	if len(t.Runs) > 0 {
		return t.Runs[0].Text, true
	}
	if t.SimpleText != "" {
		return t.SimpleText, true
	}
	return "", false
}
