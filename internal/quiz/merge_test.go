package quiz_test

import (
	"reflect"
	"testing"

	"kanasense_backend/internal/quiz"
)

func sampleState(levels map[int]quiz.LevelStat, unlocked, completed []int, current int) quiz.ProgressState {
	s := quiz.NewProgressState()
	s.CurrentLevel = current
	s.UnlockedLevels = unlocked
	s.CompletedLevels = completed
	s.LevelProgress = levels
	s.TotalStars = 0 // 故意不一致，合并必须重算
	return s
}

func TestMerge_Commutative(t *testing.T) {
	a := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 2, BestScore: 9, Attempts: 1},
		3: {Stars: 1, BestScore: 8, Attempts: 2},
	}, []int{1, 2, 3, 4}, []int{1, 3}, 4)
	b := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 3, BestScore: 10, Attempts: 2},
		2: {Stars: 1, BestScore: 8, Attempts: 1},
	}, []int{1, 2}, []int{1, 2}, 2)

	ab := quiz.Merge(a, b)
	ba := quiz.Merge(b, a)
	if !reflect.DeepEqual(ab, ba) {
		t.Fatalf("merge not commutative:\nA∪B=%+v\nB∪A=%+v", ab, ba)
	}
}

func TestMerge_SetUnionIdempotent(t *testing.T) {
	p := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 2, BestScore: 9, Attempts: 3},
	}, []int{1, 2}, []int{1}, 2)

	merged := quiz.Merge(p, p)
	if !reflect.DeepEqual(merged.UnlockedLevels, p.UnlockedLevels) {
		t.Errorf("unlockedLevels = %v, expected %v", merged.UnlockedLevels, p.UnlockedLevels)
	}
	if !reflect.DeepEqual(merged.CompletedLevels, p.CompletedLevels) {
		t.Errorf("completedLevels = %v, expected %v", merged.CompletedLevels, p.CompletedLevels)
	}
	if merged.CurrentLevel != 2 {
		t.Errorf("currentLevel = %d, expected 2", merged.CurrentLevel)
	}
}

// attempts 在重复合并时翻倍：沿袭上游同步行为的已知缺陷，这里显式固定，
// 改掉它需要改同步协议（按设备维护单调计数）
func TestMerge_AttemptsAdditive(t *testing.T) {
	p := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 2, BestScore: 9, Attempts: 3},
	}, []int{1, 2}, []int{1}, 2)

	merged := quiz.Merge(p, p)
	if merged.LevelProgress[1].Attempts != 6 {
		t.Fatalf("attempts = %d, expected 6 (additive merge)", merged.LevelProgress[1].Attempts)
	}
}

func TestMerge_PerFieldRules(t *testing.T) {
	local := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 2, BestScore: 9, Attempts: 1},
	}, []int{1, 2, 3}, nil, 3)
	remote := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 3, BestScore: 10, Attempts: 2},
	}, []int{1, 2}, nil, 1)

	merged := quiz.Merge(local, remote)

	if !reflect.DeepEqual(merged.UnlockedLevels, []int{1, 2, 3}) {
		t.Errorf("unlockedLevels = %v, expected [1 2 3]", merged.UnlockedLevels)
	}
	st := merged.LevelProgress[1]
	if st.Stars != 3 || st.BestScore != 10 || st.Attempts != 3 {
		t.Errorf("levelProgress[1] = %+v, expected stars=3 bestScore=10 attempts=3", st)
	}
	if merged.CurrentLevel != 3 {
		t.Errorf("currentLevel = %d, expected 3", merged.CurrentLevel)
	}
	if merged.TotalStars != 3 {
		t.Errorf("totalStars = %d, expected recomputed 3", merged.TotalStars)
	}
}

func TestMerge_DisjointLevelsBothKept(t *testing.T) {
	local := sampleState(map[int]quiz.LevelStat{
		1: {Stars: 1, BestScore: 8, Attempts: 1},
	}, []int{1, 2}, []int{1}, 1)
	remote := sampleState(map[int]quiz.LevelStat{
		2: {Stars: 3, BestScore: 10, Attempts: 1},
	}, []int{1, 2, 3}, []int{2}, 2)

	merged := quiz.Merge(local, remote)
	if len(merged.LevelProgress) != 2 {
		t.Fatalf("expected both levels in merged progress, got %v", merged.LevelProgress)
	}
	if merged.TotalStars != 4 {
		t.Errorf("totalStars = %d, expected 4", merged.TotalStars)
	}
	if !reflect.DeepEqual(merged.CompletedLevels, []int{1, 2}) {
		t.Errorf("completedLevels = %v", merged.CompletedLevels)
	}
}

func TestMerge_AlwaysKeepsLevelOneUnlocked(t *testing.T) {
	empty := quiz.ProgressState{LevelProgress: map[int]quiz.LevelStat{}}
	merged := quiz.Merge(empty, empty)
	if !reflect.DeepEqual(merged.UnlockedLevels, []int{1}) {
		t.Fatalf("unlockedLevels = %v, expected [1]", merged.UnlockedLevels)
	}
	if merged.CurrentLevel != 1 {
		t.Fatalf("currentLevel = %d, expected floor of 1", merged.CurrentLevel)
	}
}
