package results

import (
	"testing"

	"github.com/famomatic/ytsearch/internal/innertube"
)

func simple(text string) *innertube.LangText {
	return &innertube.LangText{SimpleText: text}
}

func runs(text string) *innertube.LangText {
	return &innertube.LangText{Runs: []innertube.TextRun{{Text: text}}}
}

func TestParseViewCount(t *testing.T) {
	cases := []struct {
		name    string
		input   *innertube.LangText
		want    int64
		wantErr bool
	}{
		{name: "simple text with separators", input: simple("1,234,567 views"), want: 1234567},
		{name: "no views", input: simple("No views"), want: 0},
		{name: "field absent", input: nil, want: 0},
		{name: "live runs text", input: runs("1,057 watching"), want: 1057},
		{name: "single view", input: simple("1 view"), want: 1},
		{name: "bare number", input: simple("42"), want: 42},
		{name: "non numeric", input: simple("about a million views"), wantErr: true},
		{name: "empty text", input: simple(""), wantErr: true},
		{name: "negative", input: simple("-5 views"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseViewCount(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseViewCount(%+v) = %d, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseViewCount(%+v): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("parseViewCount(%+v) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseViewCountPrefersRunsOverSimpleText(t *testing.T) {
	in := &innertube.LangText{
		SimpleText: "9 views",
		Runs:       []innertube.TextRun{{Text: "7 watching"}},
	}
	got, err := parseViewCount(in)
	if err != nil {
		t.Fatalf("parseViewCount: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want runs value 7", got)
	}
}
