package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/d60-Lab/sundaynet/internal/model"
    "github.com/d60-Lab/sundaynet/internal/repository"
    "github.com/d60-Lab/sundaynet/pkg/response"
)

const profileKey = "current_profile"

// Auth 解析 Bearer token 并把当前 Profile 放进请求上下文。
// 解析失败直接 401，后续策略判定一律以这里还原的身份为准。
func Auth(secret string, profiles repository.ProfileRepository) gin.HandlerFunc {
    key := []byte(secret)
    return func(c *gin.Context) {
        header := c.GetHeader("Authorization")
        raw, ok := strings.CutPrefix(header, "Bearer ")
        if !ok || raw == "" {
            response.Unauthorized(c, "missing bearer token")
            c.Abort()
            return
        }

        token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
            return key, nil
        }, jwt.WithValidMethods([]string{"HS256"}))
        if err != nil || !token.Valid {
            response.Unauthorized(c, "invalid token")
            c.Abort()
            return
        }
        claims := token.Claims.(*jwt.RegisteredClaims)

        profile, err := profiles.FindByID(c.Request.Context(), claims.Subject)
        if err != nil {
            response.Unauthorized(c, "unknown account")
            c.Abort()
            return
        }
        c.Set(profileKey, profile)
        c.Next()
    }
}

// CurrentProfile 取当前登录用户，未认证返回 nil
func CurrentProfile(c *gin.Context) *model.Profile {
    v, ok := c.Get(profileKey)
    if !ok {
        return nil
    }
    p, _ := v.(*model.Profile)
    return p
}
