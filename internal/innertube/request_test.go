package innertube

import "testing"

func TestNewSearchRequestDefaults(t *testing.T) {
	req := NewSearchRequest(WebClient, "golang tutorial", SearchRequestOptions{})
	c := req.Context.Client
	if c.ClientName != "WEB" || c.ClientVersion == "" {
		t.Fatalf("unexpected client context: %+v", c)
	}
	if c.AcceptLanguage != "en" || c.TimeZone != "UTC" {
		t.Fatalf("unexpected locale defaults: %+v", c)
	}
	if req.Query != "golang tutorial" {
		t.Fatalf("query = %q", req.Query)
	}
	if req.Params != "" || req.Continuation != "" {
		t.Fatalf("initial request should carry no params/continuation: %+v", req)
	}
	if !req.Context.Request.UseSsl {
		t.Fatalf("useSsl should default to true")
	}
}

func TestNewSearchRequestPassesTokensVerbatim(t *testing.T) {
	req := NewSearchRequest(WebClient, "q", SearchRequestOptions{
		Params:       "EgIQAg%3D%3D",
		Continuation: "OPAQUE==token",
	})
	if req.Params != "EgIQAg%3D%3D" {
		t.Fatalf("params = %q, must be passed through verbatim", req.Params)
	}
	if req.Continuation != "OPAQUE==token" {
		t.Fatalf("continuation = %q, must be passed through verbatim", req.Continuation)
	}
}

func TestNewSearchRequestLocaleOverrides(t *testing.T) {
	req := NewSearchRequest(WebClient, "q", SearchRequestOptions{
		Language:    "de",
		Region:      "DE",
		VisitorData: "visitor-123",
	})
	c := req.Context.Client
	if c.AcceptLanguage != "de" || c.Region != "DE" {
		t.Fatalf("locale overrides not applied: %+v", c)
	}
	if c.VisitorData != "visitor-123" {
		t.Fatalf("visitorData = %q", c.VisitorData)
	}
}
