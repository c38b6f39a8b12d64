package main

import (
    "context"
    "errors"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/sundaynet/config"
    "github.com/d60-Lab/sundaynet/internal/api"
    "github.com/d60-Lab/sundaynet/internal/api/handler"
    "github.com/d60-Lab/sundaynet/internal/cache"
    "github.com/d60-Lab/sundaynet/internal/repository"
    "github.com/d60-Lab/sundaynet/internal/service"
    "github.com/d60-Lab/sundaynet/pkg/database"
    "github.com/d60-Lab/sundaynet/pkg/logger"
    "github.com/d60-Lab/sundaynet/pkg/tracing"
)

// @title sundaynet API
// @version 1.0
// @description 周日开放的社交网络后端
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Log.Level); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    shutdownTracing, err := tracing.Init(ctx, "sundaynet", cfg.Trace.Endpoint)
    if err != nil {
        logger.Fatal("tracing init failed", zap.Error(err))
    }
    defer func() { _ = shutdownTracing(context.Background()) }()

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Fatal("database init failed", zap.Error(err))
    }

    rdb := redis.NewClient(&redis.Options{
        Addr:     cfg.Redis.Addr,
        Password: cfg.Redis.Password,
        DB:       cfg.Redis.DB,
    })
    var followerCache *cache.FollowerCache
    if err := rdb.Ping(ctx).Err(); err != nil {
        // 缓存不可用时直连数据库
        logger.Warn("redis unavailable, follower cache disabled", zap.Error(err))
    } else {
        followerCache = cache.NewFollowerCache(rdb, 5*time.Minute)
    }

    // repositories
    followRepo := repository.NewFollowRepository(db)
    requestRepo := repository.NewFollowRequestRepository(db)
    postRepo := repository.NewPostRepository(db)
    profileRepo := repository.NewProfileRepository(db)
    userRepo := repository.NewUserRepository(db)

    // services
    gate := service.NewSundayGate(nil)
    policy := service.NewAccessPolicy(followRepo, gate)
    accountSvc := service.NewAccountService(db, userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHour)*time.Hour)
    profileSvc := service.NewProfileService(db, profileRepo, policy)
    postSvc := service.NewPostService(postRepo, policy, gate)
    feedSvc := service.NewFeedService(postRepo, gate)
    relSvc := service.NewRelationshipService(db, followRepo, requestRepo, profileRepo, followerCache)

    h := handler.New(accountSvc, profileSvc, postSvc, feedSvc, relSvc, policy, gate)
    router := api.NewRouter(cfg, h, profileRepo)

    srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
    go func() {
        logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Fatal("server failed", zap.Error(err))
        }
    }()

    <-ctx.Done()
    logger.Info("shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("graceful shutdown failed", zap.Error(err))
    }
}
