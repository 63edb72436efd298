package service

import (
	"errors"

	"kanasense_backend/internal/config"
	"kanasense_backend/internal/model"
	"kanasense_backend/internal/repository"
	"kanasense_backend/internal/util"

	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	Cfg          *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		Cfg:          cfg,
	}
}

// CreateGuest 生成游客身份：新 userId、初始进度（只解锁第 1 关）和 JWT
func (s *AuthService) CreateGuest(userName string) (*model.User, string, error) {
	user := &model.User{
		UserID:  model.GenerateUserID(),
		IsGuest: true,
	}
	if userName != "" {
		user.UserName = userName
	}

	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}
	if err := s.ProgressRepo.Create(model.NewProgress(user.UserID)); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user.UserID, user.IsGuest, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResumeUser 按客户端持有的 userId 找回用户，换新设备后重新拿到令牌。
// 找不到就按该 userId 重建（服务端数据丢失时客户端仍可用 sync 恢复进度）。
func (s *AuthService) ResumeUser(userID, userName string) (*model.User, string, bool, error) {
	created := false

	user, err := s.UserRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{
			UserID:  userID,
			IsGuest: true,
		}
		if userName != "" {
			user.UserName = userName
		}
		if err := s.UserRepo.Create(user); err != nil {
			return nil, "", false, err
		}
		created = true
	} else if err != nil {
		return nil, "", false, err
	}

	// 进度记录缺失时补建，保证后续接口总能拿到进度
	if _, err := s.ProgressRepo.FindByUserID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.ProgressRepo.Create(model.NewProgress(userID)); err != nil {
			return nil, "", false, err
		}
	} else if err != nil {
		return nil, "", false, err
	}

	token, err := util.GenerateJWT(user.UserID, user.IsGuest, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", false, err
	}
	return user, token, created, nil
}
