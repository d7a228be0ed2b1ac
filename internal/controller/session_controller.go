package controller

import (
	"odyssey_backend/internal/model"
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionController 会话状态的读取与通用变更意图
type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// GetSession godoc
// @Summary 获取会话快照
// @Description 返回当前完整会话状态
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Session} "成功"
// @Router /api/session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	util.Success(ctx, c.SessionService.Snapshot())
}

// SelectViewRequest 面板切换请求
// swagger:model SelectViewRequest
type SelectViewRequest struct {
	View model.ViewTab `json:"view" binding:"required"`
}

// SelectView godoc
// @Summary 切换顶层面板
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SelectViewRequest true "面板切换请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "未知面板"
// @Router /api/session/view [put]
func (c *SessionController) SelectView(ctx *gin.Context) {
	var request SelectViewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pulseMs, err := c.SessionService.SelectView(request.View)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"activeView": request.View,
		"pulseMs":    pulseMs,
	})
}

// AwardXPRequest 经验发放请求
// swagger:model AwardXPRequest
type AwardXPRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// AwardExperience godoc
// @Summary 发放经验值
// @Description 正数经验入账，返回提示自动消失时长
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AwardXPRequest true "经验发放请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "数额非法"
// @Router /api/session/xp [post]
func (c *SessionController) AwardExperience(ctx *gin.Context) {
	var request AwardXPRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	total, autoDismissMs, err := c.SessionService.AwardExperience(request.Amount)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"experiencePoints": total,
		"autoDismissMs":    autoDismissMs,
	})
}

// RecordLogRequest 日志追加请求
// swagger:model RecordLogRequest
type RecordLogRequest struct {
	Text string        `json:"text" binding:"required"`
	Kind model.LogKind `json:"kind" binding:"required"`
}

// RecordLog godoc
// @Summary 追加活动日志
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordLogRequest true "日志追加请求"
// @Success 200 {object} util.Response{data=model.SystemLog} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/session/logs [post]
func (c *SessionController) RecordLog(ctx *gin.Context) {
	var request RecordLogRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.SessionService.RecordLog(request.Text, request.Kind)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// GetLogs godoc
// @Summary 获取活动日志
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SystemLog} "成功"
// @Router /api/session/logs [get]
func (c *SessionController) GetLogs(ctx *gin.Context) {
	util.Success(ctx, c.SessionService.Snapshot().ActivityLog)
}

// UpdateNotesRequest 笔记更新请求
// swagger:model UpdateNotesRequest
type UpdateNotesRequest struct {
	Text string `json:"text"`
}

// UpdateNotes godoc
// @Summary 更新项目笔记
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateNotesRequest true "笔记更新请求"
// @Success 200 {object} util.Response "成功"
// @Router /api/session/notes [put]
func (c *SessionController) UpdateNotes(ctx *gin.Context) {
	var request UpdateNotesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SessionService.UpdateNotes(request.Text); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SetCursorRequest 路线图浏览位置
// swagger:model SetCursorRequest
type SetCursorRequest struct {
	ModuleID string `json:"moduleId"`
	Day      int    `json:"day" binding:"required,min=1"`
}

// SetCursor godoc
// @Summary 记录路线图浏览位置
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetCursorRequest true "浏览位置"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "模块不存在"
// @Router /api/session/cursor [put]
func (c *SessionController) SetCursor(ctx *gin.Context) {
	var request SetCursorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SessionService.SetCursor(request.ModuleID, request.Day); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SetPreferencesRequest 界面偏好
// swagger:model SetPreferencesRequest
type SetPreferencesRequest struct {
	SidebarCollapsed bool `json:"sidebarCollapsed"`
	DeepWorkMode     bool `json:"deepWorkMode"`
	NeuralIntensity  int  `json:"neuralIntensity"`
}

// SetPreferences godoc
// @Summary 更新界面偏好
// @Tags 会话
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetPreferencesRequest true "界面偏好"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "强度越界"
// @Router /api/session/preferences [put]
func (c *SessionController) SetPreferences(ctx *gin.Context) {
	var request SetPreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.SessionService.SetPreferences(model.Preferences{
		SidebarCollapsed: request.SidebarCollapsed,
		DeepWorkMode:     request.DeepWorkMode,
		NeuralIntensity:  request.NeuralIntensity,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MarkInitialized godoc
// @Summary 完成首次引导
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/session/initialized [post]
func (c *SessionController) MarkInitialized(ctx *gin.Context) {
	if err := c.SessionService.MarkInitialized(); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Export godoc
// @Summary 导出项目档案
// @Description 导出项目构想、任务、笔记与活动日志
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ExportDocument} "成功"
// @Router /api/session/export [get]
func (c *SessionController) Export(ctx *gin.Context) {
	doc, err := c.SessionService.Export()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, doc)
}
