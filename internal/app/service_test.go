package app

import (
	"context"
	"testing"

	"github.com/pscheid92/avatarbridge/internal/domain"
	"github.com/pscheid92/avatarbridge/internal/linebank"
	"github.com/pscheid92/avatarbridge/internal/retell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockBroadcaster struct {
	events []domain.ViewerEvent
}

func (m *mockBroadcaster) Broadcast(event domain.ViewerEvent) {
	m.events = append(m.events, event)
}

type mockAssets struct {
	existing map[string]bool
	base     string
}

func (m *mockAssets) Exists(file string) bool {
	return m.existing[file]
}

func (m *mockAssets) PublicURL(file string) string {
	return m.base + "/audio/" + file
}

// --- Test helpers ---

const testAPIKey = "test-api-key"

func newTestService(t *testing.T, verify bool) (*Service, *mockBroadcaster) {
	t.Helper()

	bank, err := linebank.New([]domain.LineEntry{
		{ID: "intro", File: "intro.mp3", Script: "Hi.::there."},
		{ID: "ghost", File: "ghost.mp3", Script: "Not on disk."},
		{ID: "mute", File: "mute.mp3", Script: ""},
	})
	require.NoError(t, err)

	assets := &mockAssets{
		existing: map[string]bool{"intro.mp3": true, "mute.mp3": true},
		base:     "http://localhost:3005",
	}

	broadcaster := &mockBroadcaster{}
	return NewService(bank, assets, broadcaster, verify, testAPIKey), broadcaster
}

// --- Manual resolution ---

func TestEmitManual_AudioMode(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	cmd, err := svc.EmitManual(context.Background(), SpeakRequest{LineID: "intro"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeAudio, cmd.Mode)
	assert.Equal(t, "http://localhost:3005/audio/intro.mp3", cmd.AudioURL)
	assert.Equal(t, "Hi.::there.", cmd.Text)
	assert.Equal(t, "intro", cmd.LineID)
	assert.Zero(t, cmd.DurationMs)

	require.Len(t, broadcaster.events, 1)
	event := broadcaster.events[0]
	assert.Equal(t, domain.EventSpeakingStart, event.Type)
	assert.Equal(t, "http://localhost:3005/audio/intro.mp3", event.AudioURL)
	assert.Equal(t, "Hi.::there.", event.Text)
	assert.Equal(t, "intro", event.LineID)
}

func TestEmitManual_BankScriptWinsOverSuppliedText(t *testing.T) {
	svc, _ := newTestService(t, false)

	cmd, err := svc.EmitManual(context.Background(), SpeakRequest{LineID: "intro", Text: "ignored"})

	require.NoError(t, err)
	assert.Equal(t, "Hi.::there.", cmd.Text)
}

func TestEmitManual_SuppliedTextFillsEmptyScript(t *testing.T) {
	svc, _ := newTestService(t, false)

	cmd, err := svc.EmitManual(context.Background(), SpeakRequest{LineID: "mute", Text: "fallback text"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeAudio, cmd.Mode)
	assert.Equal(t, "fallback text", cmd.Text)
}

func TestEmitManual_UnknownLine(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	_, err := svc.EmitManual(context.Background(), SpeakRequest{LineID: "nope"})

	assert.ErrorIs(t, err, domain.ErrUnknownLine)
	assert.Empty(t, broadcaster.events, "rejections must not broadcast")
}

func TestEmitManual_MissingAsset(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	_, err := svc.EmitManual(context.Background(), SpeakRequest{LineID: "ghost"})

	assert.ErrorIs(t, err, domain.ErrMissingAsset)
	assert.Empty(t, broadcaster.events)
}

func TestEmitManual_TextMode(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	cmd, err := svc.EmitManual(context.Background(), SpeakRequest{Text: "one two three four five"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeText, cmd.Mode)
	assert.Equal(t, 2300, cmd.DurationMs)
	assert.Empty(t, cmd.AudioURL)
	assert.Empty(t, cmd.LineID)

	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, domain.EventSpeakingStart, broadcaster.events[0].Type)
	assert.Equal(t, 2300, broadcaster.events[0].DurationMs)
}

func TestEmitManual_MissingInput(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	_, err := svc.EmitManual(context.Background(), SpeakRequest{})

	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Empty(t, broadcaster.events)
}

// --- Webhook resolution ---

func TestEmitFromWebhook_ValidSignature(t *testing.T) {
	svc, broadcaster := newTestService(t, true)

	body := []byte(`{"args":{"line_id":"intro"}}`)
	cmd, err := svc.EmitFromWebhook(context.Background(), body, retell.Sign(body, testAPIKey))

	require.NoError(t, err)
	assert.Equal(t, domain.ModeAudio, cmd.Mode)
	assert.Equal(t, "intro", cmd.LineID)
	require.Len(t, broadcaster.events, 1)
}

func TestEmitFromWebhook_InvalidSignature(t *testing.T) {
	svc, broadcaster := newTestService(t, true)

	body := []byte(`{"args":{"line_id":"intro"}}`)
	_, err := svc.EmitFromWebhook(context.Background(), body, "bogus")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Empty(t, broadcaster.events)
}

func TestEmitFromWebhook_MissingSignatureHeader(t *testing.T) {
	svc, broadcaster := newTestService(t, true)

	body := []byte(`{"args":{"line_id":"intro"}}`)
	_, err := svc.EmitFromWebhook(context.Background(), body, "")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature, "missing signature must fail closed")
	assert.Empty(t, broadcaster.events)
}

func TestEmitFromWebhook_VerificationDisabled(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	body := []byte(`{"args":{"text":"hola a todos"}}`)
	cmd, err := svc.EmitFromWebhook(context.Background(), body, "")

	require.NoError(t, err)
	assert.Equal(t, domain.ModeText, cmd.Mode)
	require.Len(t, broadcaster.events, 1)
}

func TestEmitFromWebhook_CamelCaseLineID(t *testing.T) {
	svc, _ := newTestService(t, false)

	body := []byte(`{"args":{"lineId":"intro"}}`)
	cmd, err := svc.EmitFromWebhook(context.Background(), body, "")

	require.NoError(t, err)
	assert.Equal(t, "intro", cmd.LineID)
}

func TestEmitFromWebhook_MalformedBody(t *testing.T) {
	svc, broadcaster := newTestService(t, false)

	_, err := svc.EmitFromWebhook(context.Background(), []byte(`{"args":`), "")

	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Empty(t, broadcaster.events)
}

// --- Stop and list ---

func TestStop_AlwaysBroadcastsTerminalEvent(t *testing.T) {
	svc, broadcaster := newTestService(t, true)

	svc.Stop(context.Background())
	svc.Stop(context.Background())

	require.Len(t, broadcaster.events, 2)
	for _, event := range broadcaster.events {
		assert.Equal(t, domain.EventSpeakingEnd, event.Type)
		assert.Empty(t, event.Text)
		assert.Empty(t, event.AudioURL)
	}
}

func TestListLines(t *testing.T) {
	svc, _ := newTestService(t, false)

	infos := svc.ListLines()

	require.Len(t, infos, 3)
	assert.Equal(t, "intro", infos[0].ID)
	assert.Equal(t, "intro.mp3", infos[0].File)
	assert.Equal(t, 1, infos[0].PauseCount)
}
