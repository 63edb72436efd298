package quiz

import "sort"

const (
	// MinCorrectToPass 标准 10 题测验的及格线
	MinCorrectToPass = 8

	oneStar    = 8
	twoStars   = 9
	threeStars = 10
)

// Result 一次测验的评定
type Result struct {
	Stars  int  `json:"stars"`
	Passed bool `json:"passed"`
}

// Score 标准 10 题测验的星级表：10→3星 9→2星 8→1星 其余不及格
func Score(correctCount int) Result {
	switch {
	case correctCount >= threeStars:
		return Result{Stars: 3, Passed: true}
	case correctCount == twoStars:
		return Result{Stars: 2, Passed: true}
	case correctCount == oneStar:
		return Result{Stars: 1, Passed: true}
	default:
		return Result{Stars: 0, Passed: false}
	}
}

// ScoreQuiz 对任意题量的测验按比例换算星级：及格线 ceil(0.8n)，
// 两星 ceil(0.9n)，三星必须全对。n=10 时与 Score 的表完全一致。
func ScoreQuiz(correctCount, totalCount int) Result {
	if totalCount <= 0 {
		return Result{}
	}
	passLine := (totalCount*8 + 9) / 10
	twoLine := (totalCount*9 + 9) / 10
	switch {
	case correctCount >= totalCount:
		return Result{Stars: 3, Passed: true}
	case correctCount >= twoLine:
		return Result{Stars: 2, Passed: true}
	case correctCount >= passLine:
		return Result{Stars: 1, Passed: true}
	default:
		return Result{Stars: 0, Passed: false}
	}
}

// LevelStat 单关的累计成绩
type LevelStat struct {
	Stars     int `json:"stars"`
	BestScore int `json:"bestScore"`
	Attempts  int `json:"attempts"`
}

// ProgressState 进度的纯值表示，引擎在其上做无副作用的状态变换，
// 持久化表示由调用方负责转换
type ProgressState struct {
	CurrentLevel    int               `json:"currentLevel"`
	UnlockedLevels  []int             `json:"unlockedLevels"`
	CompletedLevels []int             `json:"completedLevels"`
	LevelProgress   map[int]LevelStat `json:"levelProgress"`
	TotalStars      int               `json:"totalStars"`
}

// NewProgressState 初始进度：只解锁第 1 关
func NewProgressState() ProgressState {
	return ProgressState{
		CurrentLevel:   1,
		UnlockedLevels: []int{1},
		LevelProgress:  map[int]LevelStat{},
	}
}

// clone 深拷贝，保证变换函数不碰输入
func (s ProgressState) clone() ProgressState {
	out := s
	out.UnlockedLevels = append([]int(nil), s.UnlockedLevels...)
	out.CompletedLevels = append([]int(nil), s.CompletedLevels...)
	out.LevelProgress = make(map[int]LevelStat, len(s.LevelProgress))
	for k, v := range s.LevelProgress {
		out.LevelProgress[k] = v
	}
	return out
}

func containsLevel(levels []int, level int) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

func addLevel(levels []int, level int) []int {
	if containsLevel(levels, level) {
		return levels
	}
	levels = append(levels, level)
	sort.Ints(levels)
	return levels
}

func sumStars(progress map[int]LevelStat) int {
	total := 0
	for _, st := range progress {
		total += st.Stars
	}
	return total
}

// ApplyResult 把一次测验结果并入进度，返回新状态。
// 星级和最好成绩取 max，重复提交同一结果除 attempts 外幂等。
func ApplyResult(state ProgressState, level, stars, score int) ProgressState {
	out := state.clone()

	st := out.LevelProgress[level]
	if stars > st.Stars {
		st.Stars = stars
	}
	if score > st.BestScore {
		st.BestScore = score
	}
	st.Attempts++
	out.LevelProgress[level] = st

	if stars > 0 {
		out.CompletedLevels = addLevel(out.CompletedLevels, level)
		if level < MaxLevel {
			out.UnlockedLevels = addLevel(out.UnlockedLevels, level+1)
		}
	}

	if level > out.CurrentLevel {
		out.CurrentLevel = level
	}
	// 全量重算而非增量累加，保证与合并路径一致
	out.TotalStars = sumStars(out.LevelProgress)
	out.UnlockedLevels = addLevel(out.UnlockedLevels, 1)
	return out
}
