package controller

import (
	"errors"
	"strconv"

	"kanasense_backend/internal/config"
	"kanasense_backend/internal/service"
	"kanasense_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
	Cfg         *config.Config
}

func NewUserController(userService *service.UserService, cfg *config.Config) *UserController {
	return &UserController{UserService: userService, Cfg: cfg}
}

// GetProfile godoc
// @Summary 获取个人资料
// @Description 返回当前用户的档案和进度汇总
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Profile} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	UserName string `json:"userName" binding:"required,min=1,max=50"`
}

// UpdateProfile godoc
// @Summary 修改个人资料
// @Description 目前只支持修改昵称
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "新昵称"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/profile [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.UpdateUserName(claims.UserID, req.UserName)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"userId":   user.UserID,
		"userName": user.UserName,
	})
}

// GetStats godoc
// @Summary 累计统计
// @Description 返回答题量、正确率、连胜和排行榜名次
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserStatsView} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.GetStats(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, stats)
}

// GetLeaderboard godoc
// @Summary 排行榜
// @Description 按总星数排序的前N名
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "榜单长度，默认取配置值"
// @Success 200 {object} util.Response{data=[]repository.LeaderboardEntry} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/user/leaderboard [get]
func (c *UserController) GetLeaderboard(ctx *gin.Context) {
	limit := c.Cfg.Quiz.LeaderboardSize
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := c.UserService.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
