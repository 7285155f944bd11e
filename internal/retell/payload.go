package retell

import (
	"encoding/json"
	"fmt"
)

// Args are the custom-function arguments of an avatar-emit call.
// Retell sends snake_case line_id; camelCase lineId is also accepted.
type Args struct {
	LineID          string `json:"line_id"`
	LineIDCamelCase string `json:"lineId"`
	Text            string `json:"text"`
}

// Payload is the webhook body shape for custom function calls.
type Payload struct {
	Args Args `json:"args"`
}

// ParsePayload decodes a webhook body and normalizes the line id.
func ParsePayload(rawBody []byte) (lineID, text string, err error) {
	var p Payload
	if len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, &p); err != nil {
			return "", "", fmt.Errorf("failed to parse webhook payload: %w", err)
		}
	}
	lineID = p.Args.LineID
	if lineID == "" {
		lineID = p.Args.LineIDCamelCase
	}
	return lineID, p.Args.Text, nil
}
