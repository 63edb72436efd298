package model_test

import (
	"testing"

	"kanasense_backend/internal/model"
)

func TestRecordQuizOutcome_PassExtendsStreak(t *testing.T) {
	u := &model.User{}

	u.RecordQuizOutcome(10, 10, 3)
	u.RecordQuizOutcome(9, 10, 2)

	if u.Stats.CurrentStreak != 2 || u.Stats.LongestStreak != 2 {
		t.Errorf("streaks = %d/%d, want 2/2", u.Stats.CurrentStreak, u.Stats.LongestStreak)
	}
	if u.Stats.TotalLevelsCompleted != 2 {
		t.Errorf("TotalLevelsCompleted = %d, want 2", u.Stats.TotalLevelsCompleted)
	}
	if u.Stats.TotalStars != 5 {
		t.Errorf("TotalStars = %d, want 5", u.Stats.TotalStars)
	}
}

func TestRecordQuizOutcome_FailResetsStreakKeepsLongest(t *testing.T) {
	u := &model.User{}

	u.RecordQuizOutcome(10, 10, 3)
	u.RecordQuizOutcome(8, 10, 1)
	u.RecordQuizOutcome(4, 10, 0)

	if u.Stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", u.Stats.CurrentStreak)
	}
	if u.Stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", u.Stats.LongestStreak)
	}
	// 不及格不计入完成数，但答题量照计
	if u.Stats.TotalLevelsCompleted != 2 {
		t.Errorf("TotalLevelsCompleted = %d, want 2", u.Stats.TotalLevelsCompleted)
	}
	if u.Stats.TotalQuestionsAnswered != 30 {
		t.Errorf("TotalQuestionsAnswered = %d, want 30", u.Stats.TotalQuestionsAnswered)
	}
}

func TestRecordQuizOutcome_AccuracyRounded(t *testing.T) {
	u := &model.User{}

	u.RecordQuizOutcome(8, 10, 1)
	u.RecordQuizOutcome(9, 10, 2)

	// 17/20 = 85%
	if u.Stats.Accuracy != 85 {
		t.Errorf("Accuracy = %d, want 85", u.Stats.Accuracy)
	}
}
