package controller

import (
	"strconv"

	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoadmapController 课程路线图：日程、完成标记、每日验证、语音简报
type RoadmapController struct {
	SessionService  *service.SessionService
	BriefingService *service.BriefingService
}

func NewRoadmapController(sessionService *service.SessionService, briefingService *service.BriefingService) *RoadmapController {
	return &RoadmapController{SessionService: sessionService, BriefingService: briefingService}
}

// GetRoadmap godoc
// @Summary 获取课程路线图
// @Description 返回全部模块与已验证天数
// @Tags 路线图
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	session := c.SessionService.Snapshot()
	util.Success(ctx, gin.H{
		"modules":           session.Roadmap,
		"completedDays":     session.CompletedDays,
		"selectedModuleId":  session.SelectedModuleID,
		"selectedDayNumber": session.SelectedDay,
	})
}

func dayParam(ctx *gin.Context) (string, int, bool) {
	moduleID := ctx.Param("id")
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		util.BadRequest(ctx, "day must be an integer")
		return "", 0, false
	}
	return moduleID, day, true
}

// ToggleDay godoc
// @Summary 翻转某天完成标记
// @Description 再次调用恢复原状
// @Tags 路线图
// @Produce json
// @Security BearerAuth
// @Param id path string true "模块ID"
// @Param day path int true "天号"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 400 {object} util.Response "天号不在日程内"
// @Failure 404 {object} util.Response "模块不存在"
// @Router /api/roadmap/modules/{id}/days/{day}/toggle [post]
func (c *RoadmapController) ToggleDay(ctx *gin.Context) {
	moduleID, day, ok := dayParam(ctx)
	if !ok {
		return
	}

	completed, err := c.SessionService.ToggleDayCompletion(moduleID, day)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"moduleId":  moduleID,
		"day":       day,
		"completed": completed,
	})
}

// QuizRequest 每日验证提交
// swagger:model QuizRequest
type QuizRequest struct {
	AnswerIndex *int `json:"answerIndex" binding:"required"`
}

// SubmitQuiz godoc
// @Summary 提交每日验证
// @Description 答对获得经验并记录该天完成；已完成的天返回409
// @Tags 路线图
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "模块ID"
// @Param day path int true "天号"
// @Param request body QuizRequest true "验证提交"
// @Success 200 {object} util.Response{data=service.QuizResult} "成功"
// @Failure 400 {object} util.Response "答案下标越界"
// @Failure 404 {object} util.Response "模块/天/题目不存在"
// @Failure 409 {object} util.Response "该天已完成"
// @Router /api/roadmap/modules/{id}/days/{day}/quiz [post]
func (c *RoadmapController) SubmitQuiz(ctx *gin.Context) {
	moduleID, day, ok := dayParam(ctx)
	if !ok {
		return
	}

	var request QuizRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SessionService.SubmitQuizAnswer(moduleID, day, *request.AnswerIndex)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Briefing godoc
// @Summary 生成每日语音简报
// @Description 合成当天课程的语音讲解并存储
// @Tags 路线图
// @Produce json
// @Security BearerAuth
// @Param id path string true "模块ID"
// @Param day path int true "天号"
// @Success 200 {object} util.Response{data=service.BriefingResult} "成功"
// @Failure 404 {object} util.Response "模块/天不存在"
// @Failure 502 {object} util.Response "上游合成失败"
// @Router /api/roadmap/modules/{id}/days/{day}/briefing [post]
func (c *RoadmapController) Briefing(ctx *gin.Context) {
	moduleID, day, ok := dayParam(ctx)
	if !ok {
		return
	}

	result, err := c.BriefingService.BriefDay(ctx.Request.Context(), moduleID, day)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
