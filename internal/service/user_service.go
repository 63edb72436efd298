package service

import (
	"context"
	"errors"

	"kanasense_backend/internal/model"
	"kanasense_backend/internal/repository"
	"kanasense_backend/internal/util"
	"kanasense_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo        *repository.UserRepository
	ProgressRepo    *repository.ProgressRepository
	LeaderboardRepo *repository.LeaderboardRepository
}

func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, leaderboardRepo *repository.LeaderboardRepository) *UserService {
	return &UserService{
		UserRepo:        userRepo,
		ProgressRepo:    progressRepo,
		LeaderboardRepo: leaderboardRepo,
	}
}

// Profile 用户档案，带进度侧汇总
type Profile struct {
	UserID   string              `json:"userId"`
	UserName string              `json:"userName"`
	IsGuest  bool                `json:"isGuest"`
	Stats    model.UserStats     `json:"stats"`
	Progress model.ProgressStats `json:"progress"`
}

func (s *UserService) GetProfile(userID string) (*Profile, error) {
	user, err := s.UserRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:   user.UserID,
		UserName: user.UserName,
		IsGuest:  user.IsGuest,
		Stats:    user.Stats,
	}

	if progress, err := s.ProgressRepo.FindByUserID(userID); err == nil {
		profile.Progress = progress.Stats()
	}
	return profile, nil
}

func (s *UserService) UpdateUserName(userID, userName string) (*model.User, error) {
	user, err := s.UserRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.UserName = userName
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserStatsView 统计接口返回体：累计统计 + 名次
type UserStatsView struct {
	model.UserStats
	Progress model.ProgressStats `json:"progress"`
	Rank     int                 `json:"rank,omitempty"`
}

func (s *UserService) GetStats(ctx context.Context, userID string) (*UserStatsView, error) {
	user, err := s.UserRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	view := &UserStatsView{UserStats: user.Stats}

	if progress, err := s.ProgressRepo.FindByUserID(userID); err == nil {
		view.Progress = progress.Stats()
	}
	if rank, err := s.LeaderboardRepo.Rank(ctx, userID); err == nil {
		view.Rank = rank
	}
	return view, nil
}

// Leaderboard 取总星数前 limit 名。Redis 不可用时退回数据库排序
func (s *UserService) Leaderboard(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error) {
	entries, err := s.LeaderboardRepo.Top(ctx, limit)
	if err != nil {
		logger.Log.Warn("Leaderboard unavailable in redis, falling back to db", zap.Error(err))
		entries, err = s.leaderboardFromDB(limit)
		if err != nil {
			return nil, err
		}
	}
	return s.fillUserNames(entries)
}

func (s *UserService) leaderboardFromDB(limit int) ([]repository.LeaderboardEntry, error) {
	progresses, err := s.ProgressRepo.TopByStars(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]repository.LeaderboardEntry, 0, len(progresses))
	for i, p := range progresses {
		entries = append(entries, repository.LeaderboardEntry{
			UserID:     p.UserID,
			TotalStars: p.TotalStars,
			Rank:       i + 1,
		})
	}
	return entries, nil
}

func (s *UserService) fillUserNames(entries []repository.LeaderboardEntry) ([]repository.LeaderboardEntry, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}

	users, err := s.UserRepo.FindByUserIDs(ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.UserName
	}
	for i := range entries {
		entries[i].UserName = names[entries[i].UserID]
	}
	return entries, nil
}
