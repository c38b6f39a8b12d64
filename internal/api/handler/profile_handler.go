package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/sundaynet/internal/api/middleware"
    "github.com/d60-Lab/sundaynet/internal/service"
    "github.com/d60-Lab/sundaynet/pkg/response"
)

type updateProfileRequest struct {
    Bio     string `json:"bio" binding:"max=100"`
    Private bool   `json:"private"`
}

// GetProfile 查看资料（本人或其关注者）
// @Summary 查看用户资料
// @Tags 资料
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
    profile, err := h.profileSvc.Get(c.Request.Context(), middleware.CurrentProfile(c), c.Param("id"))
    if err != nil {
        // 原版对未关注者回的是 "Private account."
        if errors.Is(err, service.ErrForbidden) {
            response.Forbidden(c, "Private account.")
            return
        }
        respondErr(c, err)
        return
    }
    response.Success(c, profile)
}

// UpdateProfile 改资料（仅本人）
// @Summary 更新自己的资料
// @Tags 资料
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param request body updateProfileRequest true "资料"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
    var req updateProfileRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    profile, err := h.profileSvc.Update(c.Request.Context(), middleware.CurrentProfile(c), c.Param("id"), req.Bio, req.Private)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, profile)
}

// DeleteProfile 删号（仅本人），级联清理边/请求/帖子
// @Summary 注销账号
// @Tags 资料
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
    if err := h.profileSvc.Delete(c.Request.Context(), middleware.CurrentProfile(c), c.Param("id")); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, nil)
}
