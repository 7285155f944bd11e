package retell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"args":{"line_id":"intro"}}`)
	key := "test-api-key"

	assert.True(t, VerifySignature(body, key, Sign(body, key)))
}

func TestVerifySignature_Rejects(t *testing.T) {
	body := []byte(`{"args":{"line_id":"intro"}}`)
	key := "test-api-key"

	tests := []struct {
		name      string
		body      []byte
		key       string
		signature string
	}{
		{"wrong key", body, "other-key", Sign(body, key)},
		{"tampered body", []byte(`{"args":{"line_id":"despedida"}}`), key, Sign(body, key)},
		{"garbage signature", body, key, "deadbeef"},
		{"empty signature", body, key, ""},
		{"empty key", body, "", Sign(body, key)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifySignature(tt.body, tt.key, tt.signature))
		})
	}
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantLineID string
		wantText   string
	}{
		{"snake_case line id", `{"args":{"line_id":"intro"}}`, "intro", ""},
		{"camelCase line id", `{"args":{"lineId":"intro"}}`, "intro", ""},
		{"snake_case wins over camelCase", `{"args":{"line_id":"a","lineId":"b"}}`, "a", ""},
		{"text only", `{"args":{"text":"hola a todos"}}`, "", "hola a todos"},
		{"empty body", ``, "", ""},
		{"empty args", `{"args":{}}`, "", ""},
		{"no args object", `{}`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lineID, text, err := ParsePayload([]byte(tt.body))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLineID, lineID)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestParsePayload_InvalidJSON(t *testing.T) {
	_, _, err := ParsePayload([]byte(`{"args":`))
	assert.Error(t, err)
}
