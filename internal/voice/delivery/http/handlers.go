package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/voice"
	"medication-reminder/pkg/response"
)

// Command godoc
// @Summary     Process a voice command transcript
// @Description Interprets a transcript and dispatches the matching tracker action.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Transcript"
// @Success     200 {object} outcomeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/voice/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	outcome := h.uc.HandleUtterance(ctx, sc, req.Transcript)
	if outcome.Kind == voice.OutcomeActionFailed {
		h.l.Errorf(ctx, "voice http: dispatch failed: %v", outcome.Err)
	}

	response.OK(c, newOutcomeResp(outcome))
}

// StartCapture godoc
// @Summary     Start a voice capture attempt
// @Tags        Voice
// @Produce     json
// @Success     200 {object} captureResp
// @Failure     400 {object} response.Resp "Capture unavailable or not reset"
// @Router      /api/v1/voice/capture/start [POST]
func (h *handler) StartCapture(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	s := h.sessionFor(sc.UserID)
	if _, err := s.Start(ctx); err != nil {
		if !errors.Is(err, voice.ErrCaptureUnavailable) && !errors.Is(err, voice.ErrNotIdle) {
			h.l.Errorf(ctx, "voice http: engine start: %v", err)
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newCaptureResp(s))
}

// CaptureResult records the final transcript of the active attempt and runs
// the command pipeline on it in one round trip, mirroring how a result
// callback immediately triggers command processing in the voice UI.
func (h *handler) CaptureResult(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req resultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.sessionFor(sc.UserID)
	s.OnResult(s.CurrentGen(), req.Transcript)

	state, transcript, _ := s.Snapshot()
	if state != voice.StateCompleted {
		// Stale or out-of-order delivery; report the session as-is.
		response.OK(c, h.newCaptureResp(s))
		return
	}

	outcome := h.uc.HandleUtterance(ctx, sc, transcript)
	resp := h.newCaptureResp(s)
	resp.Outcome = newOutcomeRespPtr(outcome)
	response.OK(c, resp)
}

// CaptureError records an engine-reported recognition failure.
func (h *handler) CaptureError(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req errorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s := h.sessionFor(sc.UserID)
	s.OnError(s.CurrentGen(), req.Reason)

	response.OK(c, h.newCaptureResp(s))
}

// CancelCapture abandons the in-flight attempt.
func (h *handler) CancelCapture(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	s := h.sessionFor(sc.UserID)
	s.Cancel()

	response.OK(c, h.newCaptureResp(s))
}

// ResetCapture returns the session to idle for a fresh attempt.
func (h *handler) ResetCapture(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	s := h.sessionFor(sc.UserID)
	s.Reset()

	response.OK(c, h.newCaptureResp(s))
}

// Capture returns the current session state for display.
func (h *handler) Capture(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	s := h.sessionFor(sc.UserID)
	response.OK(c, h.newCaptureResp(s))
}
