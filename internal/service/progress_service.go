package service

import (
	"context"
	"errors"

	"kanasense_backend/internal/model"
	"kanasense_backend/internal/quiz"
	"kanasense_backend/internal/repository"
	"kanasense_backend/internal/util"
	"kanasense_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo    *repository.ProgressRepository
	UserRepo        *repository.UserRepository
	LeaderboardRepo *repository.LeaderboardRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, userRepo *repository.UserRepository, leaderboardRepo *repository.LeaderboardRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo:    progressRepo,
		UserRepo:        userRepo,
		LeaderboardRepo: leaderboardRepo,
	}
}

// Get 取用户进度，没有就建一份初始进度
func (s *ProgressService) Get(userID string) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.NewProgress(userID)
		if err := s.ProgressRepo.Create(progress); err != nil {
			return nil, err
		}
		return progress, nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// UpdateResult 一次测验成绩并入进度后的回执
type UpdateResult struct {
	Stars       int                `json:"stars"`
	Passed      bool               `json:"passed"`
	NewUnlocked []int              `json:"newUnlocked"`
	State       quiz.ProgressState `json:"progress"`
}

// Update 把一次测验结果（做对 correctCount/totalCount 题）并入进度，
// 同时更新用户累计统计和排行榜。星级在服务端按成绩换算，不信任客户端。
func (s *ProgressService) Update(ctx context.Context, userID string, level, correctCount, totalCount int) (*UpdateResult, error) {
	if level < quiz.MinLevel || level > quiz.MaxLevel {
		return nil, util.ErrLevelOutOfRange
	}
	if totalCount <= 0 {
		totalCount = quiz.QuestionsPerLevel
	}
	if correctCount < 0 || correctCount > totalCount {
		return nil, util.ErrInvalidScore
	}

	progress, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	graded := quiz.ScoreQuiz(correctCount, totalCount)
	before := progress.State()
	after := quiz.ApplyResult(before, level, graded.Stars, correctCount)
	progress.SetState(after)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	s.recordUserOutcome(userID, correctCount, totalCount, graded.Stars)
	s.publishScore(ctx, userID, after.TotalStars)

	return &UpdateResult{
		Stars:       graded.Stars,
		Passed:      graded.Passed,
		NewUnlocked: diffLevels(before.UnlockedLevels, after.UnlockedLevels),
		State:       after,
	}, nil
}

// Sync 合并客户端快照（离线或多设备进度），返回合并后的状态
func (s *ProgressService) Sync(ctx context.Context, userID string, client quiz.ProgressState) (quiz.ProgressState, error) {
	progress, err := s.Get(userID)
	if err != nil {
		return quiz.ProgressState{}, err
	}

	merged := quiz.Merge(progress.State(), client)
	progress.SetState(merged)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return quiz.ProgressState{}, err
	}

	s.publishScore(ctx, userID, merged.TotalStars)
	return merged, nil
}

// LevelDetail 单关成绩及解锁状态
type LevelDetail struct {
	Level    int  `json:"level"`
	Unlocked bool `json:"unlocked"`
	quiz.LevelStat
}

func (s *ProgressService) LevelDetail(userID string, level int) (*LevelDetail, error) {
	if level < quiz.MinLevel || level > quiz.MaxLevel {
		return nil, util.ErrLevelOutOfRange
	}

	progress, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	state := progress.State()
	detail := &LevelDetail{Level: level}
	for _, l := range state.UnlockedLevels {
		if l == level {
			detail.Unlocked = true
			break
		}
	}
	detail.LevelStat = state.LevelProgress[level]
	return detail, nil
}

// Reset 进度归零回到初始状态，排行榜分数同步清掉
func (s *ProgressService) Reset(ctx context.Context, userID string) (quiz.ProgressState, error) {
	progress, err := s.Get(userID)
	if err != nil {
		return quiz.ProgressState{}, err
	}

	fresh := quiz.NewProgressState()
	progress.LevelProgress = nil
	progress.SetState(fresh)

	if err := s.ProgressRepo.Reset(progress); err != nil {
		return quiz.ProgressState{}, err
	}

	if err := s.LeaderboardRepo.Remove(ctx, userID); err != nil {
		logger.Log.Warn("Failed to remove leaderboard entry", zap.Error(err), zap.String("userId", userID))
	}
	return fresh, nil
}

func (s *ProgressService) recordUserOutcome(userID string, correctCount, totalCount, stars int) {
	user, err := s.UserRepo.FindByUserID(userID)
	if err != nil {
		logger.Log.Warn("Failed to load user for stats update", zap.Error(err), zap.String("userId", userID))
		return
	}
	user.RecordQuizOutcome(correctCount, totalCount, stars)
	if err := s.UserRepo.Update(user); err != nil {
		logger.Log.Warn("Failed to save user stats", zap.Error(err), zap.String("userId", userID))
	}
}

func (s *ProgressService) publishScore(ctx context.Context, userID string, totalStars int) {
	if err := s.LeaderboardRepo.SetScore(ctx, userID, totalStars); err != nil {
		logger.Log.Warn("Failed to publish leaderboard score", zap.Error(err), zap.String("userId", userID))
	}
}

// diffLevels 返回 after 中新增的层级
func diffLevels(before, after []int) []int {
	seen := make(map[int]bool, len(before))
	for _, l := range before {
		seen[l] = true
	}
	added := []int{}
	for _, l := range after {
		if !seen[l] {
			added = append(added, l)
		}
	}
	return added
}
