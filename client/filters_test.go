package client

import "testing"

func TestParseFilter(t *testing.T) {
	cases := []struct {
		name    string
		want    Filter
		wantErr bool
	}{
		{name: "", want: FilterNone},
		{name: "video", want: FilterVideo},
		{name: "channel", want: FilterChannel},
		{name: "playlist", want: FilterPlaylist},
		{name: "movie", want: FilterMovie},
		{name: "shorts", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseFilter(%q) = %q, want error", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFilter(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
