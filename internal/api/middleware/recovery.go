package middleware

import (
    "net/http"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/sundaynet/pkg/logger"
)

// Recovery panic 恢复，上报 Sentry 后返回 500
func Recovery() gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if r := recover(); r != nil {
                hub := sentry.CurrentHub().Clone()
                hub.Recover(r)
                logger.Error("panic recovered",
                    zap.Any("panic", r),
                    zap.String("path", c.Request.URL.Path),
                )
                c.AbortWithStatus(http.StatusInternalServerError)
            }
        }()
        c.Next()
    }
}
