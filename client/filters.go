package client

import "fmt"

// Filter restricts a search to one result type. Values are opaque
// platform-defined tokens passed through to the API verbatim.
type Filter string

const (
	FilterNone     Filter = ""
	FilterVideo    Filter = "EgIQAQ%3D%3D"
	FilterChannel  Filter = "EgIQAg%3D%3D"
	FilterPlaylist Filter = "EgIQAw%3D%3D"
	FilterMovie    Filter = "EgIQBA%3D%3D"
)

// ParseFilter maps a restriction name ("video", "channel", "playlist",
// "movie", or "" for none) to its filter token.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "":
		return FilterNone, nil
	case "video":
		return FilterVideo, nil
	case "channel":
		return FilterChannel, nil
	case "playlist":
		return FilterPlaylist, nil
	case "movie":
		return FilterMovie, nil
	}
	return FilterNone, fmt.Errorf("unknown filter %q", name)
}
