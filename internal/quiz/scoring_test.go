package quiz_test

import (
	"math/rand"
	"reflect"
	"testing"

	"kanasense_backend/internal/quiz"
)

func TestScore_ExactTable(t *testing.T) {
	cases := []struct {
		correct int
		stars   int
		passed  bool
	}{
		{10, 3, true},
		{9, 2, true},
		{8, 1, true},
		{7, 0, false},
		{4, 0, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		got := quiz.Score(tc.correct)
		if got.Stars != tc.stars || got.Passed != tc.passed {
			t.Errorf("Score(%d) = %+v, expected stars=%d passed=%v", tc.correct, got, tc.stars, tc.passed)
		}
	}
}

func TestScoreQuiz_MatchesTableForTenQuestions(t *testing.T) {
	for correct := 0; correct <= 10; correct++ {
		if got, want := quiz.ScoreQuiz(correct, 10), quiz.Score(correct); got != want {
			t.Errorf("ScoreQuiz(%d, 10) = %+v, Score(%d) = %+v", correct, got, correct, want)
		}
	}
}

func TestScoreQuiz_ScalesForShortQuizzes(t *testing.T) {
	cases := []struct {
		correct, total int
		stars          int
		passed         bool
	}{
		{5, 5, 3, true},  // 全对永远三星
		{4, 5, 1, true},  // ceil(0.8*5)=4 及格
		{3, 5, 0, false},
		{7, 7, 3, true},
		{6, 7, 1, true},  // ceil(0.9*7)=7，两星只能全对，但全对已是三星
		{5, 7, 0, false}, // ceil(0.8*7)=6
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		got := quiz.ScoreQuiz(tc.correct, tc.total)
		if got.Stars != tc.stars || got.Passed != tc.passed {
			t.Errorf("ScoreQuiz(%d, %d) = %+v, expected stars=%d passed=%v",
				tc.correct, tc.total, got, tc.stars, tc.passed)
		}
	}
}

func TestApplyResult_FreshProgress(t *testing.T) {
	state := quiz.NewProgressState()
	next := quiz.ApplyResult(state, 5, 1, 8)

	if !reflect.DeepEqual(next.UnlockedLevels, []int{1, 6}) {
		t.Errorf("unlockedLevels = %v, expected [1 6]", next.UnlockedLevels)
	}
	if !reflect.DeepEqual(next.CompletedLevels, []int{5}) {
		t.Errorf("completedLevels = %v, expected [5]", next.CompletedLevels)
	}
	if next.CurrentLevel != 5 {
		t.Errorf("currentLevel = %d, expected 5", next.CurrentLevel)
	}
	if next.TotalStars != 1 {
		t.Errorf("totalStars = %d, expected 1", next.TotalStars)
	}
	if st := next.LevelProgress[5]; st.Stars != 1 || st.BestScore != 8 || st.Attempts != 1 {
		t.Errorf("levelProgress[5] = %+v", st)
	}
}

func TestApplyResult_DoesNotMutateInput(t *testing.T) {
	state := quiz.NewProgressState()
	state.LevelProgress[3] = quiz.LevelStat{Stars: 2, BestScore: 9, Attempts: 4}

	_ = quiz.ApplyResult(state, 3, 3, 10)

	if st := state.LevelProgress[3]; st.Stars != 2 || st.Attempts != 4 {
		t.Errorf("input state was mutated: %+v", st)
	}
	if !reflect.DeepEqual(state.UnlockedLevels, []int{1}) {
		t.Errorf("input unlockedLevels mutated: %v", state.UnlockedLevels)
	}
}

func TestApplyResult_IdempotentExceptAttempts(t *testing.T) {
	state := quiz.NewProgressState()
	once := quiz.ApplyResult(state, 5, 2, 9)
	twice := quiz.ApplyResult(once, 5, 2, 9)

	if !reflect.DeepEqual(once.UnlockedLevels, twice.UnlockedLevels) {
		t.Errorf("unlockedLevels changed on replay: %v vs %v", once.UnlockedLevels, twice.UnlockedLevels)
	}
	if !reflect.DeepEqual(once.CompletedLevels, twice.CompletedLevels) {
		t.Errorf("completedLevels changed on replay: %v vs %v", once.CompletedLevels, twice.CompletedLevels)
	}
	if once.CurrentLevel != twice.CurrentLevel || once.TotalStars != twice.TotalStars {
		t.Errorf("replay changed currentLevel/totalStars: %+v vs %+v", once, twice)
	}
	// attempts 是文档化的例外
	if twice.LevelProgress[5].Attempts != 2 {
		t.Errorf("attempts = %d, expected 2 after replay", twice.LevelProgress[5].Attempts)
	}
}

func TestApplyResult_FailedAttemptUnlocksNothing(t *testing.T) {
	state := quiz.NewProgressState()
	next := quiz.ApplyResult(state, 1, 0, 5)

	if !reflect.DeepEqual(next.UnlockedLevels, []int{1}) {
		t.Errorf("failed attempt unlocked levels: %v", next.UnlockedLevels)
	}
	if len(next.CompletedLevels) != 0 {
		t.Errorf("failed attempt completed levels: %v", next.CompletedLevels)
	}
	if st := next.LevelProgress[1]; st.Attempts != 1 || st.BestScore != 5 {
		t.Errorf("failed attempt not recorded: %+v", st)
	}
}

func TestApplyResult_MaxLevelHasNoSuccessor(t *testing.T) {
	state := quiz.NewProgressState()
	next := quiz.ApplyResult(state, 200, 3, 10)

	for _, l := range next.UnlockedLevels {
		if l > 200 {
			t.Fatalf("unlocked level beyond the cap: %d", l)
		}
	}
	if !reflect.DeepEqual(next.CompletedLevels, []int{200}) {
		t.Errorf("completedLevels = %v", next.CompletedLevels)
	}
}

func TestApplyResult_KeepsBestResults(t *testing.T) {
	state := quiz.NewProgressState()
	state = quiz.ApplyResult(state, 2, 3, 10)
	state = quiz.ApplyResult(state, 2, 1, 8) // 更差的一次不会倒退

	if st := state.LevelProgress[2]; st.Stars != 3 || st.BestScore != 10 || st.Attempts != 2 {
		t.Errorf("levelProgress[2] = %+v, expected stars=3 bestScore=10 attempts=2", st)
	}
	if state.TotalStars != 3 {
		t.Errorf("totalStars = %d, expected 3", state.TotalStars)
	}
}

// 端到端：关卡 5 的池出满 10 题，答对 8 题后解锁第 6 关
func TestLevelFiveRoundTrip(t *testing.T) {
	pool := mustPool(t, 5)
	if len(pool) != 10 {
		t.Fatalf("level 5 pool size = %d, expected 10", len(pool))
	}

	gen := quiz.NewGenerator(rand.NewSource(12))
	questions, err := gen.Generate(5, pool, quiz.QuestionsPerLevel)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 10 {
		t.Fatalf("generated %d questions, expected 10", len(questions))
	}

	// 模拟 8 对 2 错
	correct := 0
	for i, q := range questions {
		selected := q.Options[0]
		if i < 8 {
			selected = q.CorrectAnswer
		} else if selected == q.CorrectAnswer {
			selected = q.Options[1]
		}
		if selected == q.CorrectAnswer {
			correct++
		}
	}
	result := quiz.Score(correct)
	if result.Stars != 1 || !result.Passed {
		t.Fatalf("Score(8) = %+v", result)
	}

	state := quiz.ApplyResult(quiz.NewProgressState(), 5, result.Stars, correct)
	if !reflect.DeepEqual(state.UnlockedLevels, []int{1, 6}) ||
		!reflect.DeepEqual(state.CompletedLevels, []int{5}) ||
		state.CurrentLevel != 5 || state.TotalStars != 1 {
		t.Fatalf("unexpected progress after level 5 pass: %+v", state)
	}
}
