package handler

import (
	"EcomCredits/pkg/context"
	"EcomCredits/pkg/response"
	"EcomCredits/service"
	"EcomCredits/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(a.Register))
	auth.POST("/login", context.Wrap(a.Login))
	auth.POST("/refresh", context.Wrap(a.Refresh))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	response.Success(c, resp)
	return nil
}
