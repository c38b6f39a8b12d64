package handler

import (
    "errors"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/sundaynet/internal/service"
    "github.com/d60-Lab/sundaynet/pkg/logger"
    "github.com/d60-Lab/sundaynet/pkg/response"
)

// Handler 聚合全部 HTTP 入口依赖
type Handler struct {
    accountSvc service.AccountService
    profileSvc service.ProfileService
    postSvc    service.PostService
    feedSvc    service.FeedService
    relSvc     service.RelationshipService
    policy     *service.AccessPolicy
    gate       *service.SundayGate
}

func New(
    accountSvc service.AccountService,
    profileSvc service.ProfileService,
    postSvc service.PostService,
    feedSvc service.FeedService,
    relSvc service.RelationshipService,
    policy *service.AccessPolicy,
    gate *service.SundayGate,
) *Handler {
    return &Handler{
        accountSvc: accountSvc,
        profileSvc: profileSvc,
        postSvc:    postSvc,
        feedSvc:    feedSvc,
        relSvc:     relSvc,
        policy:     policy,
        gate:       gate,
    }
}

// respondErr 把业务错误映射到 HTTP：冲突类是提示不是故障，
// 只有未识别的错误才算服务端问题。
func respondErr(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrNotAuthenticated),
        errors.Is(err, service.ErrInvalidCredentials):
        response.Unauthorized(c, err.Error())
    case errors.Is(err, service.ErrNotSunday):
        response.Forbidden(c, "Shoo! It's not Sunday yet. Go outside.")
    case errors.Is(err, service.ErrForbidden):
        response.Forbidden(c, err.Error())
    case errors.Is(err, service.ErrNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrAlreadyFollowing),
        errors.Is(err, service.ErrAlreadyRequested),
        errors.Is(err, service.ErrUsernameTaken):
        response.Conflict(c, err.Error())
    case errors.Is(err, service.ErrFollowSelf):
        response.BadRequest(c, err.Error())
    default:
        sentry.CaptureException(err)
        logger.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
        response.InternalError(c, err)
    }
}
