package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
	"medication-reminder/pkg/response"
)

// TrackMedication godoc
// @Summary     Record a taken/missed medication event
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body trackMedicationReq true "Event"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Medication not found"
// @Router      /api/v1/tracker/medication [POST]
func (h *handler) TrackMedication(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req trackMedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.TrackMedication(c.Request.Context(), sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newEventResp(ev))
}

// TrackWater godoc
// @Summary     Set today's water count
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body trackWaterReq true "Glasses"
// @Success     200 {object} waterResp
// @Router      /api/v1/tracker/water [POST]
func (h *handler) TrackWater(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req trackWaterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	w, err := h.uc.TrackWater(c.Request.Context(), sc, *req.Glasses)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, waterResp{Date: w.Date, Glasses: w.Glasses})
}

// TrackLunch godoc
// @Summary     Set today's lunch flag
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body trackLunchReq true "Lunch"
// @Success     200 {object} lunchResp
// @Router      /api/v1/tracker/lunch [POST]
func (h *handler) TrackLunch(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req trackLunchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	e, err := h.uc.TrackLunch(c.Request.Context(), sc, req.Eaten)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, lunchResp{Date: e.Date, Eaten: e.Eaten, Time: e.Time})
}

// Today godoc
// @Summary     Today's tracking summary
// @Tags        Tracker
// @Produce     json
// @Success     200 {object} todayResp
// @Router      /api/v1/tracker/today [GET]
func (h *handler) Today(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Today(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newTodayResp(out))
}

// Reminders godoc
// @Summary     Per-slot dose statuses for today
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} reminderResp
// @Router      /api/v1/tracker/reminders [GET]
func (h *handler) Reminders(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	rs, err := h.uc.Reminders(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newReminderResps(rs))
}
