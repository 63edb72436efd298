package model_test

import (
	"testing"

	"kanasense_backend/internal/model"
	"kanasense_backend/internal/quiz"
)

func TestNewProgress_InitialState(t *testing.T) {
	p := model.NewProgress("user_abc")

	state := p.State()
	if state.CurrentLevel != 1 {
		t.Errorf("CurrentLevel = %d, want 1", state.CurrentLevel)
	}
	if len(state.UnlockedLevels) != 1 || state.UnlockedLevels[0] != 1 {
		t.Errorf("UnlockedLevels = %v, want [1]", state.UnlockedLevels)
	}
	if len(state.CompletedLevels) != 0 {
		t.Errorf("CompletedLevels = %v, want empty", state.CompletedLevels)
	}
	if state.TotalStars != 0 {
		t.Errorf("TotalStars = %d, want 0", state.TotalStars)
	}
}

func TestProgress_StateRoundTrip(t *testing.T) {
	p := model.NewProgress("user_abc")

	after := quiz.ApplyResult(p.State(), 1, 3, 10)
	after = quiz.ApplyResult(after, 2, 1, 8)
	p.SetState(after)

	got := p.State()
	if got.CurrentLevel != after.CurrentLevel {
		t.Errorf("CurrentLevel = %d, want %d", got.CurrentLevel, after.CurrentLevel)
	}
	if got.TotalStars != 4 {
		t.Errorf("TotalStars = %d, want 4", got.TotalStars)
	}
	if len(got.UnlockedLevels) != 3 {
		t.Errorf("UnlockedLevels = %v, want [1 2 3]", got.UnlockedLevels)
	}
	if st := got.LevelProgress[1]; st.Stars != 3 || st.BestScore != 10 || st.Attempts != 1 {
		t.Errorf("level 1 stat = %+v", st)
	}
	if st := got.LevelProgress[2]; st.Stars != 1 || st.BestScore != 8 {
		t.Errorf("level 2 stat = %+v", st)
	}
}

func TestProgress_SetStateAlignsExistingRows(t *testing.T) {
	p := model.NewProgress("user_abc")
	p.SetState(quiz.ApplyResult(p.State(), 1, 1, 8))

	if len(p.LevelProgress) != 1 {
		t.Fatalf("rows = %d, want 1", len(p.LevelProgress))
	}
	firstCompleted := p.LevelProgress[0].CompletedAt
	if firstCompleted == nil {
		t.Fatal("CompletedAt not set on first pass")
	}

	// 同一关再刷出更好成绩：行复用，不追加
	p.SetState(quiz.ApplyResult(p.State(), 1, 3, 10))
	if len(p.LevelProgress) != 1 {
		t.Fatalf("rows after re-play = %d, want 1", len(p.LevelProgress))
	}
	if p.LevelProgress[0].Stars != 3 || p.LevelProgress[0].Attempts != 2 {
		t.Errorf("row = %+v, want stars 3 attempts 2", p.LevelProgress[0])
	}
}

func TestProgressStats(t *testing.T) {
	p := model.NewProgress("user_abc")
	state := quiz.ApplyResult(p.State(), 1, 3, 10)
	state = quiz.ApplyResult(state, 2, 2, 9)
	p.SetState(state)

	stats := p.Stats()
	if stats.TotalLevelsCompleted != 2 {
		t.Errorf("TotalLevelsCompleted = %d, want 2", stats.TotalLevelsCompleted)
	}
	if stats.TotalStars != 5 {
		t.Errorf("TotalStars = %d, want 5", stats.TotalStars)
	}
	if stats.PerfectLevels != 1 {
		t.Errorf("PerfectLevels = %d, want 1", stats.PerfectLevels)
	}
	if stats.AverageStars != 2.5 {
		t.Errorf("AverageStars = %v, want 2.5", stats.AverageStars)
	}
}
