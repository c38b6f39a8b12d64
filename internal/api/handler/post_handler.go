package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/sundaynet/internal/api/middleware"
    "github.com/d60-Lab/sundaynet/pkg/response"
)

type createPostRequest struct {
    Content string `json:"content" binding:"required,max=280"`
}

// CreatePost 发帖（仅开放窗口内；作者强制为当前用户）
// @Summary 发帖
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req createPostRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    post, err := h.postSvc.Create(c.Request.Context(), middleware.CurrentProfile(c), req.Content)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Created(c, post)
}

// GetPost 看单帖
// @Summary 查看单条帖子
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
    post, err := h.postSvc.Get(c.Request.Context(), middleware.CurrentProfile(c), c.Param("id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, post)
}

// DeletePost 删帖（仅作者）
// @Summary 删除自己的帖子
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
    if err := h.postSvc.Delete(c.Request.Context(), middleware.CurrentProfile(c), c.Param("id")); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, nil)
}

// Feed 本周可见流
// @Summary 查看本周 feed
// @Tags 帖子
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/feed [get]
func (h *Handler) Feed(c *gin.Context) {
    actor := middleware.CurrentProfile(c)
    if actor == nil {
        response.Unauthorized(c, "not authenticated")
        return
    }
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    posts, err := h.feedSvc.FeedFor(c.Request.Context(), actor.ID, page, pageSize)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": posts})
}
