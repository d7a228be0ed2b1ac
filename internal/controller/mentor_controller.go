package controller

import (
	"odyssey_backend/internal/service"
	"odyssey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// MentorController 导师对话：流式问答、历史、人格切换
type MentorController struct {
	MentorService *service.MentorService
}

func NewMentorController(mentorService *service.MentorService) *MentorController {
	return &MentorController{MentorService: mentorService}
}

// AskRequest 导师提问
// swagger:model AskRequest
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask godoc
// @Summary 向导师提问（SSE流式）
// @Description 每个 message 事件携带截至当时的完整回复前缀
// @Tags 导师
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param request body AskRequest true "提问"
// @Success 200 {string} string "SSE事件流"
// @Failure 400 {object} util.Response "问题为空"
// @Router /api/mentor/ask [post]
func (c *MentorController) Ask(ctx *gin.Context) {
	var request AskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chunks, messageID, err := c.MentorService.Ask(ctx.Request.Context(), request.Prompt)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	ctx.SSEvent("message_id", messageID)
	ctx.Writer.Flush()

	for content := range chunks {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if msg, ok := c.MentorService.Message(messageID); ok && msg.Failed {
		ctx.SSEvent("error", msg.Text)
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}

// History godoc
// @Summary 获取对话历史
// @Tags 导师
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Router /api/mentor/history [get]
func (c *MentorController) History(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"messages": c.MentorService.History(),
		"persona":  c.MentorService.Persona(),
	})
}

// PersonaRequest 人格切换请求
// swagger:model PersonaRequest
type PersonaRequest struct {
	Persona string `json:"persona" binding:"required"`
}

// SetPersona godoc
// @Summary 切换导师人格
// @Tags 导师
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PersonaRequest true "人格切换请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "未知人格"
// @Router /api/mentor/persona [put]
func (c *MentorController) SetPersona(ctx *gin.Context) {
	var request PersonaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MentorService.SetPersona(request.Persona); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"persona": request.Persona})
}

// ResetHistory godoc
// @Summary 清空对话历史
// @Tags 导师
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response "成功"
// @Router /api/mentor/history [delete]
func (c *MentorController) ResetHistory(ctx *gin.Context) {
	c.MentorService.Reset()
	util.Success(ctx, nil)
}
