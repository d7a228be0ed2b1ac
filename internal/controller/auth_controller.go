package controller

import (
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LinkRequest 接入请求
// swagger:model LinkRequest
type LinkRequest struct {
	AccessKey string `json:"accessKey" binding:"required"`
}

// Link godoc
// @Summary 建立访问链路
// @Description 用访问密钥换取令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LinkRequest true "接入请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "密钥错误"
// @Router /api/auth/link [post]
func (c *AuthController) Link(ctx *gin.Context) {
	var request LinkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Link(request.AccessKey)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
	})
}
