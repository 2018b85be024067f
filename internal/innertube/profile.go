package innertube

import "net/http"

// ClientProfile describes one innertube client identity. The profile feeds
// both the request context payload and the HTTP headers of a search call.
type ClientProfile struct {
	Name      string
	Version   string
	APIKey    string
	UserAgent string
	Host      string
	Headers   http.Header
}
