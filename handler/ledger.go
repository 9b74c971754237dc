package handler

import (
	"EcomCredits/config"
	"EcomCredits/middleware"
	"EcomCredits/pkg/context"
	"EcomCredits/pkg/response"
	"EcomCredits/service"
	"EcomCredits/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Ledger struct {
	Config        *config.Config
	LedgerService service.ILedgerService
}

func (l *Ledger) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	credits := r.Group("/v1/credits")
	credits.Use(authorize)
	credits.GET("/balance", context.Wrap(l.Balance))
	credits.GET("/transactions", context.Wrap(l.ListTransactions))
}

func (l *Ledger) Balance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	resp, err := l.LedgerService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (l *Ledger) ListTransactions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.ListTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := l.LedgerService.ListTransactions(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
