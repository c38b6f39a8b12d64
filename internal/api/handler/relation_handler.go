package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/sundaynet/internal/api/middleware"
    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/service"
    "github.com/d60-Lab/sundaynet/pkg/response"
)

type followTarget struct {
    ToUserID string `json:"to_user_id" binding:"required"`
}

type createRequestBody struct {
    FolloweeID string `json:"followee_id" binding:"required"`
    // 可选，缺省为当前用户；填别人会被策略拒绝
    FollowerID string `json:"follower_id"`
}

// Follow 关注（公开账号直接生效，私密账号降级为请求）
// @Summary 关注用户
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followTarget true "关注对象"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
    var req followTarget
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    actor := middleware.CurrentProfile(c)
    status, err := h.relSvc.Follow(c.Request.Context(), actor.ID, req.ToUserID)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"status": status})
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Accept json
// @Produce json
// @Param request body followTarget true "取消对象"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/relations/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
    var req followTarget
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    actor := middleware.CurrentProfile(c)
    if err := h.relSvc.Unfollow(c.Request.Context(), actor.ID, req.ToUserID); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"status": service.StatusNotFollowing})
}

// GetFollowEdge 查看一条关注边（仅两端）
// @Summary 查看关注边
// @Tags 关系链
// @Produce json
// @Param follower_id path string true "关注者ID"
// @Param followee_id path string true "被关注者ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/follows/{follower_id}/{followee_id} [get]
func (h *Handler) GetFollowEdge(c *gin.Context) {
    edge, err := h.relSvc.GetFollow(c.Request.Context(), c.Param("follower_id"), c.Param("followee_id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    if err := h.policy.Authorize(c.Request.Context(), middleware.CurrentProfile(c), service.ResourceFollow, service.ActionRead, edge); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, edge)
}

// DeleteFollowEdge 删除一条关注边（两端任一方：取关或移除粉丝）
// @Summary 删除关注边
// @Tags 关系链
// @Produce json
// @Param follower_id path string true "关注者ID"
// @Param followee_id path string true "被关注者ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/follows/{follower_id}/{followee_id} [delete]
func (h *Handler) DeleteFollowEdge(c *gin.Context) {
    ctx := c.Request.Context()
    edge, err := h.relSvc.GetFollow(ctx, c.Param("follower_id"), c.Param("followee_id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    if err := h.policy.Authorize(ctx, middleware.CurrentProfile(c), service.ResourceFollow, service.ActionDelete, edge); err != nil {
        respondErr(c, err)
        return
    }
    if err := h.relSvc.Unfollow(ctx, edge.FollowerID, edge.FolloweeID); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, nil)
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/relations/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
    userID := c.Param("user_id")
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    list, err := h.relSvc.ListFollowing(c.Request.Context(), userID, page, pageSize)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// ListFollowers 查询某用户的粉丝
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param user_id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/relations/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
    userID := c.Param("user_id")
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    list, err := h.relSvc.ListFollowers(c.Request.Context(), userID, page, pageSize)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// CreateFollowRequest 发起关注请求
// @Summary 发起关注请求
// @Tags 关注请求
// @Accept json
// @Produce json
// @Param request body createRequestBody true "请求信息"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/requests [post]
func (h *Handler) CreateFollowRequest(c *gin.Context) {
    var body createRequestBody
    if err := c.ShouldBindJSON(&body); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    ctx := c.Request.Context()
    actor := middleware.CurrentProfile(c)
    if body.FollowerID == "" {
        body.FollowerID = actor.ID
    }
    proposal := &model.FollowRequest{FollowerID: body.FollowerID, FolloweeID: body.FolloweeID}
    if err := h.policy.Authorize(ctx, actor, service.ResourceFollowRequest, service.ActionCreate, proposal); err != nil {
        respondErr(c, err)
        return
    }
    if err := h.relSvc.CreateRequest(ctx, proposal.FollowerID, proposal.FolloweeID); err != nil {
        respondErr(c, err)
        return
    }
    response.Created(c, gin.H{"status": service.StatusPendingApproval})
}

// ListIncomingRequests 列出发给自己的待处理请求
// @Summary 查看待处理的关注请求
// @Tags 关注请求
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Security BearerAuth
// @Router /api/v1/requests/incoming [get]
func (h *Handler) ListIncomingRequests(c *gin.Context) {
    ctx := c.Request.Context()
    actor := middleware.CurrentProfile(c)
    if err := h.policy.Authorize(ctx, actor, service.ResourceFollowRequest, service.ActionList, actor); err != nil {
        respondErr(c, err)
        return
    }
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
    list, err := h.relSvc.ListIncoming(ctx, actor.ID, page, pageSize)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// GetFollowRequest 查看一条请求（仅两端）
// @Summary 查看关注请求
// @Tags 关注请求
// @Produce json
// @Param follower_id path string true "发起者ID"
// @Param followee_id path string true "接收者ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/requests/{follower_id}/{followee_id} [get]
func (h *Handler) GetFollowRequest(c *gin.Context) {
    ctx := c.Request.Context()
    req, err := h.relSvc.GetRequest(ctx, c.Param("follower_id"), c.Param("followee_id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    if err := h.policy.Authorize(ctx, middleware.CurrentProfile(c), service.ResourceFollowRequest, service.ActionRead, req); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, req)
}

// AcceptFollowRequest 接受请求（仅接收者），事务内建边删请求
// @Summary 接受关注请求
// @Tags 关注请求
// @Produce json
// @Param follower_id path string true "发起者ID"
// @Param followee_id path string true "接收者ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/requests/{follower_id}/{followee_id}/accept [post]
func (h *Handler) AcceptFollowRequest(c *gin.Context) {
    ctx := c.Request.Context()
    req, err := h.relSvc.GetRequest(ctx, c.Param("follower_id"), c.Param("followee_id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    if err := h.policy.Authorize(ctx, middleware.CurrentProfile(c), service.ResourceFollowRequest, service.ActionAccept, req); err != nil {
        respondErr(c, err)
        return
    }
    if err := h.relSvc.Accept(ctx, req.FollowerID, req.FolloweeID); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"status": service.StatusFollowing})
}

// RejectFollowRequest 拒绝/撤回请求（两端任一方）
// @Summary 拒绝或撤回关注请求
// @Tags 关注请求
// @Produce json
// @Param follower_id path string true "发起者ID"
// @Param followee_id path string true "接收者ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/requests/{follower_id}/{followee_id} [delete]
func (h *Handler) RejectFollowRequest(c *gin.Context) {
    ctx := c.Request.Context()
    req, err := h.relSvc.GetRequest(ctx, c.Param("follower_id"), c.Param("followee_id"))
    if err != nil {
        respondErr(c, err)
        return
    }
    if err := h.policy.Authorize(ctx, middleware.CurrentProfile(c), service.ResourceFollowRequest, service.ActionDelete, req); err != nil {
        respondErr(c, err)
        return
    }
    if err := h.relSvc.Reject(ctx, req.FollowerID, req.FolloweeID); err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, nil)
}
