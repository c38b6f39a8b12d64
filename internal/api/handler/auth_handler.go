package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/sundaynet/pkg/response"
)

type registerRequest struct {
    Username string `json:"username" binding:"required,min=2,max=64,username"`
    Email    string `json:"email" binding:"omitempty,email"`
    Password string `json:"password" binding:"required,min=8"`
    Bio      string `json:"bio" binding:"max=100"`
    Private  bool   `json:"private"`
}

type loginRequest struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

// Register 注册
// @Summary 注册账号
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    profile, err := h.accountSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Bio, req.Private)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Created(c, profile)
}

// Login 登录
// @Summary 登录，换取 Bearer token
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    token, err := h.accountSvc.Login(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        respondErr(c, err)
        return
    }
    response.Success(c, gin.H{"token": token})
}
