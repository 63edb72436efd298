package controller

import (
	"errors"
	"strconv"

	"kanasense_backend/internal/quiz"
	"kanasense_backend/internal/service"
	"kanasense_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary 获取进度
// @Description 返回当前用户的完整进度，没有记录时自动创建初始进度
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=quiz.ProgressState} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress.State())
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Level        int `json:"level" binding:"required,min=1,max=200"`
	CorrectCount int `json:"correctCount" binding:"min=0"`
	TotalCount   int `json:"totalCount" binding:"omitempty,min=1"`
}

// UpdateProgress godoc
// @Summary 上报测验成绩
// @Description 把一次测验成绩并入进度，星级由服务端换算，过星解锁下一关
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProgressRequest true "成绩"
// @Success 200 {object} util.Response{data=service.UpdateResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress/update [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ProgressService.Update(ctx.Request.Context(), claims.UserID, req.Level, req.CorrectCount, req.TotalCount)
	if err != nil {
		if errors.Is(err, util.ErrLevelOutOfRange) || errors.Is(err, util.ErrInvalidScore) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// SyncProgress godoc
// @Summary 同步进度快照
// @Description 合并客户端的进度快照（离线或多设备），返回合并结果
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body quiz.ProgressState true "客户端进度快照"
// @Success 200 {object} util.Response{data=quiz.ProgressState} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress/sync [post]
func (c *ProgressController) SyncProgress(ctx *gin.Context) {
	var snapshot quiz.ProgressState
	if err := ctx.ShouldBindJSON(&snapshot); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	merged, err := c.ProgressService.Sync(ctx.Request.Context(), claims.UserID, snapshot)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, merged)
}

// GetLevelProgress godoc
// @Summary 单关成绩
// @Description 返回指定层级的星级、最好成绩、尝试次数和解锁状态
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Param   level path int true "层级 1-200"
// @Success 200 {object} util.Response{data=service.LevelDetail} "成功"
// @Failure 400 {object} util.Response "层级越界"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress/level/{level} [get]
func (c *ProgressController) GetLevelProgress(ctx *gin.Context) {
	level, err := strconv.Atoi(ctx.Param("level"))
	if err != nil {
		util.BadRequest(ctx, "level must be an integer")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.ProgressService.LevelDetail(claims.UserID, level)
	if err != nil {
		if errors.Is(err, util.ErrLevelOutOfRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// ResetProgress godoc
// @Summary 重置进度
// @Description 进度归零回到只解锁第1关的初始状态
// @Tags 进度
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=quiz.ProgressState} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/progress/reset [post]
func (c *ProgressController) ResetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fresh, err := c.ProgressService.Reset(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, fresh)
}
