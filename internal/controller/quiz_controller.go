package controller

import (
	"errors"
	"strconv"

	"kanasense_backend/internal/service"
	"kanasense_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func levelParam(ctx *gin.Context) (int, bool) {
	level, err := strconv.Atoi(ctx.Param("level"))
	if err != nil {
		util.BadRequest(ctx, "level must be an integer")
		return 0, false
	}
	return level, true
}

// GetQuestions godoc
// @Summary 获取某一关的题目
// @Description 为已解锁的层级生成10道四选一的题，答案不随题面下发
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   level path int true "层级 1-200"
// @Success 200 {object} util.Response{data=service.GeneratedQuiz} "成功"
// @Failure 400 {object} util.Response "层级越界"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "层级未解锁"
// @Router /api/quiz/questions/{level} [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	level, ok := levelParam(ctx)
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	generated, err := c.QuizService.GenerateQuiz(ctx.Request.Context(), claims.UserID, level)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLevelOutOfRange):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrLevelLocked):
			util.Error(ctx, 403, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, generated)
}

// GetLevelInfo godoc
// @Summary 层级信息
// @Description 返回层级所在段的字符类型、难度和字符池规模
// @Tags 测验
// @Produce  json
// @Param   level path int true "层级 1-200"
// @Success 200 {object} util.Response{data=service.LevelInfo} "成功"
// @Failure 400 {object} util.Response "层级越界"
// @Router /api/quiz/level/{level} [get]
func (c *QuizController) GetLevelInfo(ctx *gin.Context) {
	level, ok := levelParam(ctx)
	if !ok {
		return
	}

	info, err := c.QuizService.LevelInfo(level)
	if err != nil {
		if errors.Is(err, util.ErrLevelOutOfRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, info)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	QuizID string `json:"quizId" binding:"required"`
	// Answers 题目ID到所选答案的映射
	Answers map[string]string `json:"answers"`
	// CorrectCount 客户端自报的答对数，仅在服务端缓存过期时采用
	CorrectCount int `json:"correctCount" binding:"omitempty,min=0"`
	TotalCount   int `json:"totalCount" binding:"omitempty,min=1"`
}

// Submit godoc
// @Summary 提交答卷
// @Description 按服务端缓存的标准答案判分并换算星级
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitRequest true "答卷"
// @Success 200 {object} util.Response{data=service.GradeResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.GradeQuiz(ctx.Request.Context(), claims.UserID, req.QuizID, req.Answers, req.CorrectCount, req.TotalCount)
	if err != nil {
		if errors.Is(err, util.ErrInvalidScore) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
