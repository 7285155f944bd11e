package domain

// SpeakMode distinguishes pre-rendered audio playback from estimated
// text-only timing.
type SpeakMode string

const (
	ModeAudio SpeakMode = "audio"
	ModeText  SpeakMode = "text"
)

// SpeakCommand is the normalized result of ingress resolution. Built per
// request, broadcast once, then discarded.
type SpeakCommand struct {
	Mode       SpeakMode
	Text       string // pause markers preserved for the viewer
	AudioURL   string // set iff Mode == ModeAudio
	DurationMs int    // set iff Mode == ModeText, >= 800
	LineID     string // set iff resolved from a bank entry
}
