package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/famomatic/ytsearch/internal/innertube"
)

// parseViewCount normalizes the view-count text of a video row.
//
// The field is absent for scheduled releases (counts as 0). Live content
// carries runs ("1,057 watching"), normal content carries simpleText
// ("1,234,567 views"). The leading token is taken with thousands separators
// removed; the literal "No" (as in "No views") maps to 0. Any other
// non-numeric content is an extraction failure, not a silent zero.
func parseViewCount(t *innertube.LangText) (int64, error) {
	if t == nil {
		return 0, nil
	}
	text := t.SimpleText
	if len(t.Runs) > 0 {
		text = t.Runs[0].Text
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty view count text %q", text)
	}
	token := strings.ReplaceAll(fields[0], ",", "")
	if token == "No" {
		return 0, nil
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("unparseable view count text %q", text)
	}
	return n, nil
}
