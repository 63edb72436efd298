package model

import (
	"encoding/json"
	"time"

	"kanasense_backend/internal/quiz"
)

// swagger:model Progress
type Progress struct {
	BaseModel
	UserID       string `gorm:"size:42;uniqueIndex;not null" json:"userId"`
	CurrentLevel int    `gorm:"default:1" json:"currentLevel"`
	// 解锁/完成集合按 JSON 数组落库，和层级进度一起在 Snapshot 里展开
	UnlockedLevels  string          `gorm:"type:json" json:"-"`
	CompletedLevels string          `gorm:"type:json" json:"-"`
	TotalStars      int             `gorm:"default:0" json:"totalStars"`
	LastSyncedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSyncedAt"`
	LevelProgress   []LevelProgress `gorm:"foreignKey:ProgressID" json:"levelProgress"`
}

func (Progress) TableName() string {
	return "progresses"
}

// LevelProgress 单关成绩行
type LevelProgress struct {
	BaseModel
	ProgressID    uint       `gorm:"index;type:bigint unsigned" json:"-"`
	Level         int        `gorm:"index;not null" json:"level"`
	Stars         int        `gorm:"default:0" json:"stars"`
	BestScore     int        `gorm:"default:0" json:"bestScore"`
	Attempts      int        `gorm:"default:0" json:"attempts"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	LastAttemptAt time.Time  `json:"lastAttemptAt"`
}

func (LevelProgress) TableName() string {
	return "level_progresses"
}

func decodeLevels(raw string) []int {
	if raw == "" {
		return nil
	}
	var levels []int
	if err := json.Unmarshal([]byte(raw), &levels); err != nil {
		return nil
	}
	return levels
}

func encodeLevels(levels []int) string {
	if levels == nil {
		levels = []int{}
	}
	b, _ := json.Marshal(levels)
	return string(b)
}

// State 把持久化形态展开成引擎的纯值状态
func (p *Progress) State() quiz.ProgressState {
	state := quiz.ProgressState{
		CurrentLevel:    p.CurrentLevel,
		UnlockedLevels:  decodeLevels(p.UnlockedLevels),
		CompletedLevels: decodeLevels(p.CompletedLevels),
		LevelProgress:   make(map[int]quiz.LevelStat, len(p.LevelProgress)),
		TotalStars:      p.TotalStars,
	}
	for _, lp := range p.LevelProgress {
		state.LevelProgress[lp.Level] = quiz.LevelStat{
			Stars:     lp.Stars,
			BestScore: lp.BestScore,
			Attempts:  lp.Attempts,
		}
	}
	return state
}

// SetState 把引擎算出的新状态写回持久化形态。
// 层级进度行按 level 对齐更新，新出现的层级追加新行。
func (p *Progress) SetState(state quiz.ProgressState) {
	now := time.Now()
	p.CurrentLevel = state.CurrentLevel
	p.UnlockedLevels = encodeLevels(state.UnlockedLevels)
	p.CompletedLevels = encodeLevels(state.CompletedLevels)
	p.TotalStars = state.TotalStars
	p.LastSyncedAt = now

	existing := make(map[int]int, len(p.LevelProgress)) // level -> index
	for i := range p.LevelProgress {
		existing[p.LevelProgress[i].Level] = i
	}
	for level, st := range state.LevelProgress {
		if i, ok := existing[level]; ok {
			row := &p.LevelProgress[i]
			changed := row.Stars != st.Stars || row.BestScore != st.BestScore || row.Attempts != st.Attempts
			row.Stars = st.Stars
			row.BestScore = st.BestScore
			row.Attempts = st.Attempts
			if changed {
				row.LastAttemptAt = now
			}
			if st.Stars > 0 && row.CompletedAt == nil {
				t := now
				row.CompletedAt = &t
			}
			continue
		}
		row := LevelProgress{
			ProgressID:    p.ID,
			Level:         level,
			Stars:         st.Stars,
			BestScore:     st.BestScore,
			Attempts:      st.Attempts,
			LastAttemptAt: now,
		}
		if st.Stars > 0 {
			t := now
			row.CompletedAt = &t
		}
		p.LevelProgress = append(p.LevelProgress, row)
	}
}

// NewProgress 初始进度：只解锁第 1 关
func NewProgress(userID string) *Progress {
	p := &Progress{UserID: userID}
	p.SetState(quiz.NewProgressState())
	return p
}

// Stats 进度侧的汇总统计，profile 和 stats 接口用
type ProgressStats struct {
	CurrentLevel         int     `json:"currentLevel"`
	TotalLevelsCompleted int     `json:"totalLevelsCompleted"`
	TotalStars           int     `json:"totalStars"`
	UnlockedLevels       int     `json:"unlockedLevels"`
	AverageStars         float64 `json:"averageStars"`
	PerfectLevels        int     `json:"perfectLevels"`
}

func (p *Progress) Stats() ProgressStats {
	stats := ProgressStats{
		CurrentLevel:         p.CurrentLevel,
		TotalLevelsCompleted: len(decodeLevels(p.CompletedLevels)),
		TotalStars:           p.TotalStars,
		UnlockedLevels:       len(decodeLevels(p.UnlockedLevels)),
	}
	for _, lp := range p.LevelProgress {
		if lp.Stars == 3 {
			stats.PerfectLevels++
		}
	}
	if stats.TotalLevelsCompleted > 0 {
		stats.AverageStars = float64(stats.TotalStars) / float64(stats.TotalLevelsCompleted)
	}
	return stats
}
