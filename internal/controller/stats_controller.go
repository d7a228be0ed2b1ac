package controller

import (
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsController 指挥舱统计面板
type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// GetStats godoc
// @Summary 获取统计快照
// @Description 经验、段位、整体进度、项目同步率与各模块推导进度
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.StatsSnapshot} "成功"
// @Router /api/stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	snap, err := c.StatsService.Snapshot(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}
