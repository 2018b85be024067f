package innertube

// SearchRequest is the body of a /search endpoint call. A continuation
// request carries the opaque token from the previous page verbatim; the
// platform rejects tokens paired with a different context shape than the
// one that issued them, so the full client context is always sent.
type SearchRequest struct {
	Context      Context `json:"context"`
	Query        string  `json:"query"`
	Params       string  `json:"params,omitempty"`
	Continuation string  `json:"continuation,omitempty"`
}

type Context struct {
	Client  ClientInfo     `json:"client"`
	User    UserContext    `json:"user,omitempty"`
	Request RequestContext `json:"request,omitempty"`
}

type ClientInfo struct {
	ClientName       string `json:"clientName"`
	ClientVersion    string `json:"clientVersion"`
	UserAgent        string `json:"userAgent,omitempty"`
	AcceptLanguage   string `json:"hl"`
	Region           string `json:"gl,omitempty"`
	TimeZone         string `json:"timeZone"`
	UtcOffsetMinutes int    `json:"utcOffsetMinutes"`
	VisitorData      string `json:"visitorData,omitempty"`
}

type UserContext struct {
	LockedSafetyMode bool `json:"lockedSafetyMode,omitempty"`
}

type RequestContext struct {
	UseSsl bool `json:"useSsl"`
}

// SearchRequestOptions carries optional per-session request fields.
type SearchRequestOptions struct {
	// Params is the opaque result-type filter token, passed through verbatim.
	Params string
	// Continuation requests the next page. Empty means initial page.
	Continuation string
	// Language overrides the "hl" context value.
	Language string
	// Region sets the "gl" context value.
	Region string
	// VisitorData persists a session identity across requests.
	VisitorData string
}

func NewSearchRequest(profile ClientProfile, query string, opts SearchRequestOptions) *SearchRequest {
	language := opts.Language
	if language == "" {
		language = "en"
	}

	return &SearchRequest{
		Query:        query,
		Params:       opts.Params,
		Continuation: opts.Continuation,
		Context: Context{
			Client: ClientInfo{
				ClientName:       profile.Name,
				ClientVersion:    profile.Version,
				UserAgent:        profile.UserAgent,
				AcceptLanguage:   language,
				Region:           opts.Region,
				TimeZone:         "UTC",
				UtcOffsetMinutes: 0,
				VisitorData:      opts.VisitorData,
			},
			Request: RequestContext{
				UseSsl: true,
			},
		},
	}
}
