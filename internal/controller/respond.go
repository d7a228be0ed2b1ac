package controller

import (
	"errors"

	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 统一错误映射：校验400、寻址404、重复提交409、生成失败502
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrValidation), errors.Is(err, util.ErrNoProjectIdea):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyCompleted):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrUnauthorized):
		util.Unauthorized(ctx)
	case util.IsGenerationError(err):
		util.BadGateway(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
