package controller

import (
	"odyssey_backend/internal/model"
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProjectController 项目控制台：生成、任务管理、重置
type ProjectController struct {
	SessionService *service.SessionService
}

func NewProjectController(sessionService *service.SessionService) *ProjectController {
	return &ProjectController{SessionService: sessionService}
}

// GenerateRequest 项目生成请求
// swagger:model GenerateRequest
type GenerateRequest struct {
	Idea  string               `json:"idea" binding:"required"`
	Style model.BlueprintStyle `json:"style"`
}

// Generate godoc
// @Summary 生成项目任务矩阵与蓝图
// @Description 任务与蓝图并发生成，任一失败则整体失败且任务列表不变
// @Tags 项目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRequest true "项目生成请求"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "构想为空"
// @Failure 502 {object} util.Response "上游生成失败"
// @Router /api/project/generate [post]
func (c *ProjectController) Generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.GenerateProject(ctx.Request.Context(), request.Idea, request.Style)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"projectIdea":    session.ProjectIdea,
		"projectTasks":   session.ProjectTasks,
		"blueprint":      session.Blueprint,
		"blueprintStyle": session.BlueprintStyle,
	})
}

// BlueprintRequest 蓝图重绘请求
// swagger:model BlueprintRequest
type BlueprintRequest struct {
	Style model.BlueprintStyle `json:"style"`
}

// RegenerateBlueprint godoc
// @Summary 重绘项目蓝图
// @Description 仅重绘蓝图，任务矩阵不变；需要已有项目构想
// @Tags 项目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BlueprintRequest true "蓝图重绘请求"
// @Success 200 {object} util.Response{data=model.BlueprintRef} "成功"
// @Failure 400 {object} util.Response "尚无项目构想"
// @Failure 502 {object} util.Response "上游生成失败"
// @Router /api/project/blueprint [post]
func (c *ProjectController) RegenerateBlueprint(ctx *gin.Context) {
	var request BlueprintRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ref, err := c.SessionService.RegenerateBlueprint(ctx.Request.Context(), request.Style)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ref)
}

// ManualTaskRequest 手工任务注入请求
// swagger:model ManualTaskRequest
type ManualTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// InjectTask godoc
// @Summary 手工注入项目任务
// @Tags 项目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ManualTaskRequest true "任务注入请求"
// @Success 201 {object} util.Response{data=model.ProjectTask} "成功"
// @Failure 400 {object} util.Response "标题为空"
// @Router /api/project/tasks [post]
func (c *ProjectController) InjectTask(ctx *gin.Context) {
	var request ManualTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.SessionService.InjectManualTask(request.Title)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// ToggleTask godoc
// @Summary 翻转任务完成位
// @Tags 项目
// @Produce json
// @Security BearerAuth
// @Param id path string true "任务ID"
// @Success 200 {object} util.Response{data=model.ProjectTask} "成功"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /api/project/tasks/{id}/toggle [put]
func (c *ProjectController) ToggleTask(ctx *gin.Context) {
	task, err := c.SessionService.ToggleTaskCompletion(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// Reset godoc
// @Summary 终止当前项目
// @Description 清空构想与任务并移除蓝图引用，笔记保留
// @Tags 项目
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/project [delete]
func (c *ProjectController) Reset(ctx *gin.Context) {
	if err := c.SessionService.ResetProject(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
