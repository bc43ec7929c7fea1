package http

import (
	"medication-reminder/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string   `json:"name"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Age      int      `json:"age"`
	Phone    string   `json:"phone"`
	Diseases []string `json:"diseases"`
}

func (req registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Phone:    req.Phone,
		Diseases: req.Diseases,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileReq struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Phone    string   `json:"phone"`
	Diseases []string `json:"diseases"`
}

func (req updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		Name:     req.Name,
		Age:      req.Age,
		Phone:    req.Phone,
		Diseases: req.Diseases,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Age      int      `json:"age,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Diseases []string `json:"diseases,omitempty"`
}

func newUserResp(u user.UserOutput) userResp {
	return userResp{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Age:      u.Age,
		Phone:    u.Phone,
		Diseases: u.Diseases,
	}
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{Token: out.Token, User: newUserResp(out.User)}
}
