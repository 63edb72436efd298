package controller

import (
	"kanasense_backend/internal/service"
	"kanasense_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model GuestRequest
type GuestRequest struct {
	UserName string `json:"userName" binding:"omitempty,max=50"`
}

// CreateGuest godoc
// @Summary 创建游客身份
// @Description 生成新的游客用户和初始进度，返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body GuestRequest false "可选的昵称"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/auth/guest [post]
func (c *AuthController) CreateGuest(ctx *gin.Context) {
	var req GuestRequest
	// body 可以为空
	_ = ctx.ShouldBindJSON(&req)

	user, token, err := c.AuthService.CreateGuest(req.UserName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"userId":   user.UserID,
		"userName": user.UserName,
		"isGuest":  user.IsGuest,
		"token":    token,
	})
}

// swagger:model ResumeRequest
type ResumeRequest struct {
	UserID   string `json:"userId" binding:"required,max=42"`
	UserName string `json:"userName" binding:"omitempty,max=50"`
}

// ResumeUser godoc
// @Summary 找回已有用户
// @Description 按客户端持有的userId换发新令牌，用户不存在时重建
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body ResumeRequest true "用户标识"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/auth/user [post]
func (c *AuthController) ResumeUser(ctx *gin.Context) {
	var req ResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, created, err := c.AuthService.ResumeUser(req.UserID, req.UserName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"userId":   user.UserID,
		"userName": user.UserName,
		"isGuest":  user.IsGuest,
		"created":  created,
		"token":    token,
	})
}
