package innertube

import "net/http"

// Config holds configuration specific to the innertube search transport.
type Config struct {
	// HTTPClient executes search requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// BaseURL overrides the innertube host (default: https://<profile host>).
	BaseURL string

	// RequestHeaders are added to every search request.
	RequestHeaders http.Header

	// Language is the "hl" context value. Defaults to "en".
	Language string

	// Region is the "gl" context value. Empty means platform default.
	Region string

	// VisitorData is the "VISITOR_INFO1_LIVE" session value, forwarded
	// verbatim in the client context when set.
	VisitorData string
}
