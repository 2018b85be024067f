package client

// Result is one typed search result: a VideoResult or a ChannelResult.
// Results carry exactly the fields derivable from a search-results row and
// seed a later full entity fetch.
type Result interface {
	isResult()
}

// VideoResult is the normalized public model of a video row.
type VideoResult struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
	ChannelURL  string `json:"channelUrl"`
	ViewCount   int64  `json:"viewCount"`
	// Duration is the display duration text ("12:34"). Empty for
	// livestreams and scheduled releases.
	Duration string `json:"duration,omitempty"`
}

func (VideoResult) isResult() {}

// ChannelResult is the normalized public model of a channel row.
type ChannelResult struct {
	ChannelID  string `json:"channelId"`
	ChannelURL string `json:"channelUrl"`
}

func (ChannelResult) isResult() {}

// DiagnosticKind classifies a parse diagnostic.
type DiagnosticKind string

const (
	// DiagnosticUnrecognizedRenderer reports an entry shape outside the
	// known renderer set; its key set is retained so platform format drift
	// can be monitored.
	DiagnosticUnrecognizedRenderer DiagnosticKind = "unrecognized_renderer"
	// DiagnosticFieldExtraction reports a recognized entry that was dropped
	// because a required field was missing or unparseable.
	DiagnosticFieldExtraction DiagnosticKind = "field_extraction"
)

// Diagnostic records one entry discarded during parsing. Diagnostics are
// informational: they never abort the page they were collected on.
type Diagnostic struct {
	Kind      DiagnosticKind
	EntryKeys []string
	Query     string
	Detail    string
}
