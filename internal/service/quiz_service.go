package service

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"kanasense_backend/internal/quiz"
	"kanasense_backend/internal/repository"
	"kanasense_backend/internal/util"
	"kanasense_backend/pkg/logger"
	"kanasense_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	ProgressRepo *repository.ProgressRepository
	QuizCache    *repository.QuizCacheRepository
}

func NewQuizService(progressRepo *repository.ProgressRepository, quizCache *repository.QuizCacheRepository) *QuizService {
	return &QuizService{
		ProgressRepo: progressRepo,
		QuizCache:    quizCache,
	}
}

// ClientQuestion 下发给客户端的题面，不带答案字段，判分在服务端完成
type ClientQuestion struct {
	ID      string    `json:"id"`
	Mode    quiz.Mode `json:"mode"`
	Prompt  string    `json:"prompt"`
	Meaning string    `json:"meaning,omitempty"`
	Options []string  `json:"options"`
}

// GeneratedQuiz 一次出题的结果
type GeneratedQuiz struct {
	QuizID    string           `json:"quizId"`
	Level     int              `json:"level"`
	Questions []ClientQuestion `json:"questions"`
}

// GenerateQuiz 为已解锁的层级出一套题，答案留在 Redis 里等提交时核对
func (s *QuizService) GenerateQuiz(ctx context.Context, userID string, level int) (*GeneratedQuiz, error) {
	pool, err := quiz.SelectPool(level)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnlocked(userID, level); err != nil {
		return nil, err
	}

	gen := quiz.NewGenerator(rand.NewSource(cryptoSeed()))
	questions, err := gen.Generate(level, pool, quiz.QuestionsPerLevel)
	if err != nil {
		return nil, err
	}

	quizID := uuid.New().String()
	answers := make(map[string]string, len(questions))
	client := make([]ClientQuestion, 0, len(questions))
	for _, q := range questions {
		answers[q.ID] = q.CorrectAnswer
		client = append(client, ClientQuestion{
			ID:      q.ID,
			Mode:    q.Mode,
			Prompt:  q.Prompt,
			Meaning: q.Meaning,
			Options: q.Options,
		})
	}

	// 缓存失败只降级成客户端判分，不拦截出题
	if err := s.QuizCache.StoreAnswers(ctx, userID, quizID, answers); err != nil {
		logger.Log.Warn("Failed to cache quiz answers", zap.Error(err), zap.String("quizId", quizID))
	}

	if band, err := quiz.DescribeLevel(level); err == nil {
		monitoring.QuizGenerated.WithLabelValues(band.CharacterType).Inc()
	}

	return &GeneratedQuiz{QuizID: quizID, Level: level, Questions: client}, nil
}

// cryptoSeed 用系统熵给 math/rand 播种，保证题序不可预测。
// 熵源不可用时退回时钟种子
func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (s *QuizService) checkUnlocked(userID string, level int) error {
	progress, err := s.ProgressRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 没有进度记录时按初始状态算，只有第 1 关开放
		if level == quiz.MinLevel {
			return nil
		}
		return util.ErrLevelLocked
	}
	if err != nil {
		return err
	}

	state := progress.State()
	for _, l := range state.UnlockedLevels {
		if l == level {
			return nil
		}
	}
	return util.ErrLevelLocked
}

// GradeResult 判分结果
type GradeResult struct {
	CorrectCount int  `json:"correctCount"`
	TotalCount   int  `json:"totalCount"`
	Accuracy     int  `json:"accuracy"` // 百分比取整
	Stars        int  `json:"stars"`
	Passed       bool `json:"passed"`
	// Verified 标记本次是否走了服务端核对（缓存过期则信任客户端计数）
	Verified bool `json:"verified"`
}

// GradeQuiz 核对答卷。优先用缓存的标准答案逐题比对；
// 缓存过期或丢失时退回客户端自报的 correctCount。
func (s *QuizService) GradeQuiz(ctx context.Context, userID, quizID string, answers map[string]string, claimedCorrect, totalCount int) (*GradeResult, error) {
	if totalCount <= 0 {
		totalCount = quiz.QuestionsPerLevel
	}

	result := &GradeResult{TotalCount: totalCount}

	cached, err := s.QuizCache.TakeAnswers(ctx, userID, quizID)
	if err != nil {
		logger.Log.Warn("Failed to read cached quiz answers", zap.Error(err), zap.String("quizId", quizID))
	}

	if cached != nil {
		result.Verified = true
		result.TotalCount = len(cached)
		for id, correct := range cached {
			if answers[id] == correct {
				result.CorrectCount++
			}
		}
	} else {
		if claimedCorrect < 0 || claimedCorrect > totalCount {
			return nil, util.ErrInvalidScore
		}
		result.CorrectCount = claimedCorrect
	}

	graded := quiz.ScoreQuiz(result.CorrectCount, result.TotalCount)
	result.Stars = graded.Stars
	result.Passed = graded.Passed
	if result.TotalCount > 0 {
		result.Accuracy = int(float64(result.CorrectCount)/float64(result.TotalCount)*100 + 0.5)
	}

	monitoring.QuizSubmitted.WithLabelValues(strconv.FormatBool(result.Passed)).Inc()
	return result, nil
}

// LevelInfo 层级描述：所在段、难度、字符池规模和星级门槛
type LevelInfo struct {
	Level          int            `json:"level"`
	CharacterType  string         `json:"characterType"`
	Description    string         `json:"description"`
	Difficulty     string         `json:"difficulty"`
	PoolSize       int            `json:"poolSize"`
	QuestionCount  int            `json:"questionCount"`
	MinToPass      int            `json:"minToPass"`
	StarThresholds map[string]int `json:"starThresholds"`
}

func (s *QuizService) LevelInfo(level int) (*LevelInfo, error) {
	band, err := quiz.DescribeLevel(level)
	if err != nil {
		return nil, err
	}
	pool, err := quiz.SelectPool(level)
	if err != nil {
		return nil, err
	}

	return &LevelInfo{
		Level:         level,
		CharacterType: band.CharacterType,
		Description:   band.Description,
		Difficulty:    band.Difficulty,
		PoolSize:      len(pool),
		QuestionCount: quiz.QuestionsPerLevel,
		MinToPass:     quiz.MinCorrectToPass,
		StarThresholds: map[string]int{
			"one":   quiz.MinCorrectToPass,
			"two":   quiz.MinCorrectToPass + 1,
			"three": quiz.QuestionsPerLevel,
		},
	}, nil
}
