package handler

import (
	"EcomCredits/config"
	"EcomCredits/middleware"
	"EcomCredits/pkg/context"
	"EcomCredits/pkg/response"
	"EcomCredits/service"
	"EcomCredits/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config          *config.Config
	CheckoutService service.ICheckoutService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	orders := r.Group("/v1/orders")
	orders.Use(authorize)
	orders.POST("", context.Wrap(h.Place))
	orders.GET("", context.Wrap(h.List))
	orders.POST("/:sn/refund", context.Wrap(h.Refund))
}

func (h *Order) Place(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.CheckoutService.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Order) Refund(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := h.CheckoutService.Refund(c.Request.Context(), userID, c.Param("sn")); err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, nil)
	return nil
}

func (h *Order) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.CheckoutService.ListOrders(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
