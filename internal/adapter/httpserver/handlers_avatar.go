package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/avatarbridge/internal/app"
	"github.com/pscheid92/avatarbridge/internal/domain"
	apperrors "github.com/pscheid92/avatarbridge/internal/platform/errors"
	"github.com/pscheid92/avatarbridge/internal/retell"
)

// emitResponse is the synchronous acknowledgment for a resolved speak command.
type emitResponse struct {
	OK         bool   `json:"ok"`
	Mode       string `json:"mode"`
	AudioURL   string `json:"audioUrl,omitempty"`
	DurationMs int    `json:"durationMs,omitempty"`
	LineID     string `json:"lineId,omitempty"`
}

// testRequest is the manual smoke-test body. Both snake_case and camelCase
// line ids are accepted, mirroring the webhook payload.
type testRequest struct {
	LineID          string `json:"line_id"`
	LineIDCamelCase string `json:"lineId"`
	Text            string `json:"text"`
}

func (s *Server) handleAvatarEmit(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperrors.InternalError("avatar_emit failed", err)
	}

	signature := c.Request().Header.Get(retell.SignatureHeader)

	cmd, err := s.app.EmitFromWebhook(c.Request().Context(), rawBody, signature)
	if err != nil {
		return emitError(err, "avatar_emit failed")
	}

	return writeEmitResponse(c, cmd)
}

func (s *Server) handleAvatarTest(c echo.Context) error {
	var req testRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	lineID := req.LineID
	if lineID == "" {
		lineID = req.LineIDCamelCase
	}

	cmd, err := s.app.EmitManual(c.Request().Context(), app.SpeakRequest{LineID: lineID, Text: req.Text})
	if err != nil {
		return emitError(err, "test failed")
	}

	return writeEmitResponse(c, cmd)
}

func (s *Server) handleAvatarList(c echo.Context) error {
	response := map[string]any{"audios": s.app.ListLines()}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAvatarStop(c echo.Context) error {
	s.app.Stop(c.Request().Context())

	if err := c.JSON(http.StatusOK, map[string]bool{"ok": true}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// emitError maps the resolver's rejection taxonomy onto structured errors
// with their stable messages. Unexpected failures collapse into a generic
// internal error so callers never see internals.
func emitError(err error, internalMessage string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		return apperrors.UnauthorizedError("Invalid signature")
	case errors.Is(err, domain.ErrUnknownLine),
		errors.Is(err, domain.ErrMissingAsset),
		errors.Is(err, domain.ErrMissingInput):
		return apperrors.ValidationError(err.Error())
	default:
		return apperrors.InternalError(internalMessage, err)
	}
}

func writeEmitResponse(c echo.Context, cmd domain.SpeakCommand) error {
	response := emitResponse{
		OK:         true,
		Mode:       string(cmd.Mode),
		AudioURL:   cmd.AudioURL,
		DurationMs: cmd.DurationMs,
		LineID:     cmd.LineID,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
