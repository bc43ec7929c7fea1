package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/appointment"
	"medication-reminder/internal/middleware"
	"medication-reminder/pkg/response"
)

// List godoc
// @Summary     List the user's appointments
// @Tags        Appointment
// @Produce     json
// @Success     200 {array} appointmentResp
// @Router      /api/v1/appointments [GET]
func (h *handler) List(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	appts, err := h.uc.List(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAppointmentResps(appts))
}

// Create godoc
// @Summary     Book an appointment
// @Description Books a doctor appointment and syncs it to Google Calendar when configured.
// @Tags        Appointment
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Appointment"
// @Success     200 {object} appointmentResp
// @Router      /api/v1/appointments [POST]
func (h *handler) Create(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	appt, err := h.uc.Create(c.Request.Context(), sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAppointmentResp(appt))
}

// UpdateStatus godoc
// @Summary     Confirm or cancel an appointment
// @Tags        Appointment
// @Accept      json
// @Produce     json
// @Param       id path string true "Appointment ID"
// @Param       body body updateStatusReq true "Status"
// @Success     200 {object} appointmentResp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/appointments/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	appt, err := h.uc.UpdateStatus(c.Request.Context(), sc, c.Param("id"), appointment.UpdateStatusInput{
		Status: req.Status,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAppointmentResp(appt))
}

// Delete godoc
// @Summary     Delete an appointment
// @Tags        Appointment
// @Produce     json
// @Param       id path string true "Appointment ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/appointments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), sc, c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, nil)
}
