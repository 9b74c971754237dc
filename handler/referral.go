package handler

import (
	"EcomCredits/config"
	"EcomCredits/middleware"
	"EcomCredits/pkg/context"
	"EcomCredits/pkg/response"
	"EcomCredits/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Referral struct {
	Config          *config.Config
	ReferralService service.IReferralService
}

func (h *Referral) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	referral := r.Group("/v1/referral")
	referral.Use(authorize)
	referral.GET("/stats", context.Wrap(h.Stats))
}

func (h *Referral) Stats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	resp, err := h.ReferralService.GetStats(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
