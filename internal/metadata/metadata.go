// Package metadata projects an innertube action-list payload into a flat
// metadata record. The platform delivers incremental metadata updates as a
// list of update actions; only the four known action kinds are extracted.
package metadata

import (
	"encoding/json"
	"strings"

	"github.com/famomatic/ytsearch/internal/innertube"
)

// Metadata is the flat projection of one action-list document. Fields are
// empty when the corresponding action was absent.
type Metadata struct {
	ViewCount    string
	Title        string
	RelativeDate string
	Description  string
}

type document struct {
	Actions []action `json:"actions"`
}

type action struct {
	UpdateViewershipAction  *updateViewershipAction  `json:"updateViewershipAction"`
	UpdateTitleAction       *updateTitleAction       `json:"updateTitleAction"`
	UpdateDateAction        *updateDateAction        `json:"updateDateAction"`
	UpdateDescriptionAction *updateDescriptionAction `json:"updateDescriptionAction"`
}

type updateViewershipAction struct {
	ViewCount viewCount `json:"viewCount"`
}

type viewCount struct {
	VideoViewCountRenderer videoViewCountRenderer `json:"videoViewCountRenderer"`
}

type videoViewCountRenderer struct {
	OriginalViewCount string `json:"originalViewCount"`
}

type updateTitleAction struct {
	Title innertube.LangText `json:"title"`
}

type updateDateAction struct {
	DateText innertube.LangText `json:"dateText"`
}

type updateDescriptionAction struct {
	Description innertube.LangText `json:"description"`
}

// Parse projects a raw action-list document. Later actions of the same kind
// overwrite earlier ones, matching platform update semantics.
func Parse(raw []byte) (*Metadata, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	m := &Metadata{}
	for _, a := range doc.Actions {
		if a.UpdateViewershipAction != nil {
			m.ViewCount = a.UpdateViewershipAction.ViewCount.VideoViewCountRenderer.OriginalViewCount
		}
		if a.UpdateTitleAction != nil {
			if text, ok := a.UpdateTitleAction.Title.FirstText(); ok {
				m.Title = text
			}
		}
		if a.UpdateDateAction != nil {
			m.RelativeDate = a.UpdateDateAction.DateText.SimpleText
		}
		if a.UpdateDescriptionAction != nil {
			m.Description = joinRuns(a.UpdateDescriptionAction.Description)
		}
	}
	return m, nil
}

func joinRuns(t innertube.LangText) string {
	if len(t.Runs) == 0 {
		return t.SimpleText
	}
	var b strings.Builder
	for _, run := range t.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}
