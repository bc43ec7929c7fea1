package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
	"medication-reminder/pkg/response"
)

// List godoc
// @Summary     List the user's medications
// @Tags        Medication
// @Produce     json
// @Success     200 {array} medicationResp
// @Router      /api/v1/medications [GET]
func (h *handler) List(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	meds, err := h.uc.List(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMedicationResps(meds))
}

// Detail godoc
// @Summary     Get one medication
// @Tags        Medication
// @Produce     json
// @Param       id path string true "Medication ID"
// @Success     200 {object} medicationResp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/medications/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	med, err := h.uc.Detail(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMedicationResp(med))
}

// Create godoc
// @Summary     Add a medication
// @Tags        Medication
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Medication"
// @Success     200 {object} medicationResp
// @Router      /api/v1/medications [POST]
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

	med, err := h.uc.Create(c.Request.Context(), sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMedicationResp(med))
}

// Update godoc
// @Summary     Replace a medication's fields
// @Tags        Medication
// @Accept      json
// @Produce     json
// @Param       id path string true "Medication ID"
// @Param       body body updateReq true "Medication"
// @Success     200 {object} medicationResp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/medications/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	med, err := h.uc.Update(c.Request.Context(), sc, c.Param("id"), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newMedicationResp(med))
}

// Delete godoc
// @Summary     Delete a medication
// @Tags        Medication
// @Produce     json
// @Param       id path string true "Medication ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not found"
// @Router      /api/v1/medications/{id} [DELETE]
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
