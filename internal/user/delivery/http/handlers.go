package http

import (
	"github.com/gin-gonic/gin"

	"medication-reminder/internal/middleware"
	"medication-reminder/internal/user"
	"medication-reminder/pkg/response"
)

// Register godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account"
// @Success     200 {object} authResp
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Register(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAuthResp(out))
}

// Login godoc
// @Summary     Authenticate and get an access token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(c.Request.Context(), user.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAuthResp(out))
}

// Profile godoc
// @Summary     Get the authenticated user's profile
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Router      /api/v1/auth/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Profile(c.Request.Context(), sc)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newUserResp(out))
}

// UpdateProfile godoc
// @Summary     Update the authenticated user's profile
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body updateProfileReq true "Profile"
// @Success     200 {object} userResp
// @Router      /api/v1/auth/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateProfile(c.Request.Context(), sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newUserResp(out))
}
