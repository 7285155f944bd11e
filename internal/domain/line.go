package domain

// PauseMarker is the reserved token embedded in scripts. Each occurrence marks
// a 0.5s lip-sync pause for the viewer; adjacent markers compound.
const PauseMarker = "::"

// LineEntry is one scripted utterance in the line bank.
// File is the pre-rendered audio asset name; empty means text-only.
type LineEntry struct {
	ID     string
	File   string
	Script string
}

// LineInfo is the introspection view of a bank entry as returned by
// the list endpoint.
type LineInfo struct {
	ID          string `json:"id"`
	File        string `json:"file"`
	TextPreview string `json:"textPreview"`
	PauseCount  int    `json:"pauseCount"`
}
