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

type Video struct {
	Config       *config.Config
	VideoService service.IVideoService
}

func (h *Video) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	videos := r.Group("/v1/videos")
	videos.GET("", context.Wrap(h.Feed))
	videos.POST("", authorize, context.Wrap(h.Upload))
	videos.POST("/:id/like", authorize, context.Wrap(h.Like))
	videos.POST("/:id/share", authorize, context.Wrap(h.Share))
	videos.POST("/:id/review", authorize, context.Wrap(h.Review))
}

func (h *Video) Upload(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.UploadVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	videoID, err := h.VideoService.Upload(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"video_id": strconv.FormatUint(videoID, 10)})
	return nil
}

func (h *Video) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "视频ID格式错误")
	}

	resp, err := h.VideoService.Like(c.Request.Context(), userID, videoID)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Video) Share(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "视频ID格式错误")
	}

	resp, err := h.VideoService.Share(c.Request.Context(), userID, videoID)
	if err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Video) Review(c *gin.Context) error {
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "视频ID格式错误")
	}

	var req types.ReviewVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.VideoService.Review(c.Request.Context(), videoID, &req); err != nil {
		if service.IsValidation(err) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, nil)
	return nil
}

func (h *Video) Feed(c *gin.Context) error {
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.VideoService.Feed(c.Request.Context(), cursor, limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
