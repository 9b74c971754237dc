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

type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	products := r.Group("/v1/products")
	products.GET("", context.Wrap(h.List))
	products.GET("/:id", context.Wrap(h.Detail))
	products.POST("", authorize, context.Wrap(h.Create))
}

func (h *Catalog) List(c *gin.Context) error {
	var req types.ListProductsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.CatalogService.List(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Catalog) Detail(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID格式错误")
	}

	resp, err := h.CatalogService.GetDetail(c.Request.Context(), productID)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Catalog) Create(c *gin.Context) error {
	var req types.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.CatalogService.CreateProduct(c.Request.Context(), &req); err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, req)
	return nil
}
