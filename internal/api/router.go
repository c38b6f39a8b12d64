package api

import (
    "regexp"

    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/sundaynet/config"
    _ "github.com/d60-Lab/sundaynet/docs"
    "github.com/d60-Lab/sundaynet/internal/api/handler"
    "github.com/d60-Lab/sundaynet/internal/api/middleware"
    "github.com/d60-Lab/sundaynet/internal/repository"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// NewRouter 装配路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, profiles repository.ProfileRepository) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
            return usernameRe.MatchString(fl.Field().String())
        })
    }
    r := gin.New()
    r.Use(
        middleware.Recovery(),
        gzip.Gzip(gzip.DefaultCompression),
        otelgin.Middleware("sundaynet"),
        middleware.RateLimit(rate.Limit(50), 100),
    )

    r.GET("/healthz", h.Health)
    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    v1 := r.Group("/api/v1")
    v1.GET("/countdown", h.Countdown)
    v1.POST("/auth/register", h.Register)
    v1.POST("/auth/login", h.Login)

    auth := v1.Group("", middleware.Auth(cfg.JWT.Secret, profiles))
    {
        auth.POST("/posts", h.CreatePost)
        auth.GET("/posts/:id", h.GetPost)
        auth.DELETE("/posts/:id", h.DeletePost)
        auth.GET("/feed", h.Feed)

        auth.GET("/profiles/:id", h.GetProfile)
        auth.PUT("/profiles/:id", h.UpdateProfile)
        auth.DELETE("/profiles/:id", h.DeleteProfile)

        auth.POST("/relations/follow", h.Follow)
        auth.POST("/relations/unfollow", h.Unfollow)
        auth.GET("/relations/:user_id/following", h.ListFollowing)
        auth.GET("/relations/:user_id/followers", h.ListFollowers)
        auth.GET("/follows/:follower_id/:followee_id", h.GetFollowEdge)
        auth.DELETE("/follows/:follower_id/:followee_id", h.DeleteFollowEdge)

        auth.POST("/requests", h.CreateFollowRequest)
        auth.GET("/requests/incoming", h.ListIncomingRequests)
        auth.GET("/requests/:follower_id/:followee_id", h.GetFollowRequest)
        auth.DELETE("/requests/:follower_id/:followee_id", h.RejectFollowRequest)
        auth.POST("/requests/:follower_id/:followee_id/accept", h.AcceptFollowRequest)
    }

    return r
}
