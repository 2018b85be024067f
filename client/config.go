package client

import (
	"net/http"
	"time"

	"github.com/famomatic/ytsearch/internal/innertube"
)

// Config holds configuration for a search session.
type Config struct {
	// HTTPClient is the client used for making requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// RequestTimeout bounds each API call when the caller's context has no
	// deadline of its own. Zero means no package-imposed timeout.
	RequestTimeout time.Duration

	// RequestHeaders are added to every search request.
	RequestHeaders http.Header

	// Language is the interface language ("hl") for returned text fields.
	// Defaults to "en".
	Language string

	// Region is the content region ("gl"). Empty means platform default.
	Region string

	// VisitorData is the "VISITOR_INFO1_LIVE" cookie value.
	// Use this to persist sessions or emulate a specific user context.
	VisitorData string

	// APIBaseURL overrides the API host (default: https://www.youtube.com).
	APIBaseURL string

	// Logger receives non-fatal parse warnings. If nil, warnings are
	// collected as diagnostics only.
	Logger Logger
}

func (c Config) ToInnerTubeConfig() innertube.Config {
	return innertube.Config{
		HTTPClient:     c.HTTPClient,
		BaseURL:        c.APIBaseURL,
		RequestHeaders: c.RequestHeaders,
		Language:       c.Language,
		Region:         c.Region,
		VisitorData:    c.VisitorData,
	}
}
