package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/message"
	"medication-reminder/internal/middleware"
	"medication-reminder/pkg/response"
)

// List godoc
// @Summary     List the user's messages
// @Tags        Message
// @Produce     json
// @Success     200 {array} messageResp
// @Router      /api/v1/messages [GET]
func (h *handler) List(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	msgs, err := h.uc.List(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMessageResps(msgs))
}

// Send godoc
// @Summary     Send a message to a doctor
// @Tags        Message
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200 {object} messageResp
// @Router      /api/v1/messages [POST]
func (h *handler) Send(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	msg, err := h.uc.Send(c.Request.Context(), sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMessageResp(msg))
}

// Reply godoc
// @Summary     Attach a reply to a message
// @Tags        Message
// @Accept      json
// @Produce     json
// @Param       id path string true "Message ID"
// @Param       body body replyReq true "Reply"
// @Success     200 {object} messageResp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/messages/{id}/reply [PUT]
func (h *handler) Reply(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req replyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	msg, err := h.uc.Reply(c.Request.Context(), sc, c.Param("id"), message.ReplyInput{Reply: req.Reply})
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMessageResp(msg))
}
