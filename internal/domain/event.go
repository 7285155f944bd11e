package domain

// Event types pushed to viewers.
const (
	EventSpeakingStart = "bot_speaking_start"
	EventSpeakingEnd   = "bot_speaking_end"
	EventHello         = "hello"
)

// ViewerEvent is the wire shape pushed over the viewer channel. Optional
// fields are omitted so audio and text commands serialize to the exact
// payloads the front-end expects.
type ViewerEvent struct {
	Type       string `json:"type"`
	AudioURL   string `json:"audioUrl,omitempty"`
	Text       string `json:"text,omitempty"`
	DurationMs int    `json:"durationMs,omitempty"`
	LineID     string `json:"lineId,omitempty"`
	Ts         int64  `json:"ts,omitempty"`
}

// SpeakingStartEvent builds the broadcast event for a resolved speak command.
func SpeakingStartEvent(cmd SpeakCommand) ViewerEvent {
	return ViewerEvent{
		Type:       EventSpeakingStart,
		AudioURL:   cmd.AudioURL,
		Text:       cmd.Text,
		DurationMs: cmd.DurationMs,
		LineID:     cmd.LineID,
	}
}

// SpeakingEndEvent builds the terminal event emitted by a stop command.
func SpeakingEndEvent() ViewerEvent {
	return ViewerEvent{Type: EventSpeakingEnd}
}

// HelloEvent builds the per-connection greeting carrying the server
// timestamp in milliseconds.
func HelloEvent(tsMillis int64) ViewerEvent {
	return ViewerEvent{Type: EventHello, Ts: tsMillis}
}
