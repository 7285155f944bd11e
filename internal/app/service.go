package app

import (
	"context"
	"log/slog"

	"github.com/pscheid92/avatarbridge/internal/domain"
	"github.com/pscheid92/avatarbridge/internal/linebank"
	"github.com/pscheid92/avatarbridge/internal/metrics"
	"github.com/pscheid92/avatarbridge/internal/retell"
	"github.com/pscheid92/avatarbridge/internal/speech"
)

// Source identifies which ingress path a speak request arrived on.
type Source string

const (
	SourceWebhook Source = "webhook"
	SourceManual  Source = "manual"
)

// SpeakRequest is the decoded input of a speak request after transport
// concerns (signature, raw body) have been handled.
type SpeakRequest struct {
	LineID string
	Text   string
}

// Service resolves speak requests into commands and hands each successful
// resolution to the broadcaster exactly once.
type Service struct {
	bank        *linebank.Bank
	assets      domain.AssetStore
	broadcaster domain.EventBroadcaster

	verifySignature bool
	apiKey          string
}

// NewService creates the resolver service. When verifySignature is true,
// apiKey must be non-empty (enforced at config load).
func NewService(bank *linebank.Bank, assets domain.AssetStore, broadcaster domain.EventBroadcaster, verifySignature bool, apiKey string) *Service {
	return &Service{
		bank:            bank,
		assets:          assets,
		broadcaster:     broadcaster,
		verifySignature: verifySignature,
		apiKey:          apiKey,
	}
}

// EmitFromWebhook resolves a Retell custom-function call: verifies the
// signature over the raw body, parses the argument payload, and emits the
// resolved command. Rejections never broadcast.
func (s *Service) EmitFromWebhook(ctx context.Context, rawBody []byte, signature string) (domain.SpeakCommand, error) {
	if s.verifySignature {
		if !retell.VerifySignature(rawBody, s.apiKey, signature) {
			metrics.SignatureVerificationsTotal.WithLabelValues("failed").Inc()
			return domain.SpeakCommand{}, domain.ErrInvalidSignature
		}
		metrics.SignatureVerificationsTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.SignatureVerificationsTotal.WithLabelValues("skipped").Inc()
	}

	lineID, text, err := retell.ParsePayload(rawBody)
	if err != nil {
		slog.Warn("Unparseable webhook payload", "error", err)
		return domain.SpeakCommand{}, domain.ErrMissingInput
	}

	return s.emit(ctx, SpeakRequest{LineID: lineID, Text: text}, SourceWebhook)
}

// EmitManual resolves an operator smoke-test request. Same branch logic as
// the webhook path, without signature verification.
func (s *Service) EmitManual(ctx context.Context, req SpeakRequest) (domain.SpeakCommand, error) {
	return s.emit(ctx, req, SourceManual)
}

func (s *Service) emit(ctx context.Context, req SpeakRequest, source Source) (domain.SpeakCommand, error) {
	cmd, err := s.resolve(req)
	if err != nil {
		metrics.SpeakRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return domain.SpeakCommand{}, err
	}

	s.broadcaster.Broadcast(domain.SpeakingStartEvent(cmd))
	metrics.SpeakCommandsTotal.WithLabelValues(string(cmd.Mode), string(source)).Inc()

	logger := slog.With("mode", cmd.Mode, "source", source)
	if cmd.LineID != "" {
		logger = logger.With("line_id", cmd.LineID)
	}
	logger.InfoContext(ctx, "Speak command broadcast")

	return cmd, nil
}

// resolve applies the shared branch logic: bank-sourced audio first, then
// estimated text, then rejection.
func (s *Service) resolve(req SpeakRequest) (domain.SpeakCommand, error) {
	if req.LineID != "" {
		entry, ok := s.bank.Lookup(req.LineID)
		if !ok {
			return domain.SpeakCommand{}, domain.ErrUnknownLine
		}
		if !s.assets.Exists(entry.File) {
			return domain.SpeakCommand{}, domain.ErrMissingAsset
		}

		// Bank script takes priority; the caller's text only fills a gap.
		text := entry.Script
		if text == "" {
			text = req.Text
		}

		return domain.SpeakCommand{
			Mode:     domain.ModeAudio,
			Text:     text,
			AudioURL: s.assets.PublicURL(entry.File),
			LineID:   entry.ID,
		}, nil
	}

	if req.Text != "" {
		return domain.SpeakCommand{
			Mode:       domain.ModeText,
			Text:       req.Text,
			DurationMs: speech.EstimateDurationMs(req.Text),
		}, nil
	}

	return domain.SpeakCommand{}, domain.ErrMissingInput
}

// Stop broadcasts the terminal event, interrupting in-progress avatar speech.
// Never consults the line bank and always succeeds.
func (s *Service) Stop(ctx context.Context) {
	s.broadcaster.Broadcast(domain.SpeakingEndEvent())
	metrics.StopCommandsTotal.Inc()
	slog.InfoContext(ctx, "Stop command broadcast")
}

// ListLines returns the introspection view of the line bank.
func (s *Service) ListLines() []domain.LineInfo {
	return s.bank.List()
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrUnknownLine:
		return "unknown_line"
	case domain.ErrMissingAsset:
		return "missing_asset"
	case domain.ErrMissingInput:
		return "missing_input"
	case domain.ErrInvalidSignature:
		return "invalid_signature"
	default:
		return "internal"
	}
}
