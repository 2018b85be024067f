package client

import (
	"net/http"
	"testing"
)

func TestToInnerTubeConfig(t *testing.T) {
	httpClient := &http.Client{}
	headers := http.Header{"X-Extra": []string{"1"}}
	cfg := Config{
		HTTPClient:     httpClient,
		RequestHeaders: headers,
		Language:       "de",
		Region:         "DE",
		VisitorData:    "visitor-1",
		APIBaseURL:     "http://127.0.0.1:1",
	}

	inner := cfg.ToInnerTubeConfig()
	if inner.HTTPClient != httpClient {
		t.Fatalf("HTTPClient not forwarded")
	}
	if inner.BaseURL != "http://127.0.0.1:1" {
		t.Fatalf("BaseURL = %q", inner.BaseURL)
	}
	if inner.Language != "de" || inner.Region != "DE" || inner.VisitorData != "visitor-1" {
		t.Fatalf("context fields not forwarded: %+v", inner)
	}
	if inner.RequestHeaders.Get("X-Extra") != "1" {
		t.Fatalf("RequestHeaders not forwarded")
	}
}

func TestDefaultHTTPClient(t *testing.T) {
	if got := defaultHTTPClient(""); got != http.DefaultClient {
		t.Fatalf("empty proxy should use http.DefaultClient")
	}
	if got := defaultHTTPClient("::bad::"); got != http.DefaultClient {
		t.Fatalf("invalid proxy should fall back to http.DefaultClient")
	}
	got := defaultHTTPClient("http://127.0.0.1:8080")
	if got == http.DefaultClient {
		t.Fatalf("valid proxy should build a dedicated client")
	}
	transport, ok := got.Transport.(*http.Transport)
	if !ok || transport.Proxy == nil {
		t.Fatalf("proxy transport not configured")
	}
}
