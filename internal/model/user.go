package model

import (
	"time"
)

// UserStats 用户累计统计，嵌入在 users 表里
type UserStats struct {
	TotalLevelsCompleted   int `gorm:"default:0" json:"totalLevelsCompleted"`
	TotalStars             int `gorm:"default:0" json:"totalStars"`
	TotalQuestionsAnswered int `gorm:"default:0" json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int `gorm:"default:0" json:"totalCorrectAnswers"`
	Accuracy               int `gorm:"default:0" json:"accuracy"` // 百分比取整
	CurrentStreak          int `gorm:"default:0" json:"currentStreak"`
	LongestStreak          int `gorm:"default:0" json:"longestStreak"`
}

// swagger:model User
type User struct {
	BaseModel
	UserID     string    `gorm:"size:42;uniqueIndex;not null" json:"userId"`
	UserName   string    `gorm:"size:50;default:'Guest'" json:"userName"`
	IsGuest    bool      `gorm:"default:true" json:"isGuest"`
	Stats      UserStats `gorm:"embedded;embeddedPrefix:stat_" json:"stats"`
	LastActive time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastActive"`
}

func (User) TableName() string {
	return "users"
}

// RecordQuizOutcome 把一次测验并入累计统计。过星的测验延长连胜，
// 不及格清零连胜。
func (u *User) RecordQuizOutcome(correctAnswers, totalQuestions, stars int) {
	u.Stats.TotalQuestionsAnswered += totalQuestions
	u.Stats.TotalCorrectAnswers += correctAnswers

	if stars > 0 {
		u.Stats.TotalLevelsCompleted++
		u.Stats.TotalStars += stars
		u.Stats.CurrentStreak++
		if u.Stats.CurrentStreak > u.Stats.LongestStreak {
			u.Stats.LongestStreak = u.Stats.CurrentStreak
		}
	} else {
		u.Stats.CurrentStreak = 0
	}

	if u.Stats.TotalQuestionsAnswered > 0 {
		u.Stats.Accuracy = int(float64(u.Stats.TotalCorrectAnswers)/float64(u.Stats.TotalQuestionsAnswered)*100 + 0.5)
	}
	u.LastActive = time.Now()
}
