package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/sundaynet/pkg/response"
)

// Health 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
    response.Success(c, gin.H{"status": "ok"})
}

// Countdown 距下次开放的倒计时（开放中为全零）
// @Summary 开放倒计时
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/countdown [get]
func (h *Handler) Countdown(c *gin.Context) {
    response.Success(c, gin.H{
        "open":      h.gate.IsOpen(),
        "countdown": h.gate.UntilNextOpen(),
    })
}
