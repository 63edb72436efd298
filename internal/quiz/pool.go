package quiz

import (
	"kanasense_backend/internal/catalog"
	"kanasense_backend/internal/util"
)

const (
	MinLevel = 1
	MaxLevel = 200
)

// 假名行按 5 级子段逐步累积的顺序。元音始终在池内；
// 首段就带上 K 行，保证最小的池也够 10 道不重复的题。
var lineSteps = [][]string{
	{"k"},                     // 1-5
	{"s"},                     // 6-10
	{"t"},                     // 11-15
	{"n"},                     // 16-20
	{"h"},                     // 21-25
	{"m"},                     // 26-30
	{"y", "r"},                // 31-35
	{"w"},                     // 36-40
	{"g", "z", "d", "b", "p"}, // 41-50 全分区（含浊音/半浊音）
}

// linesUpTo 返回到第 step 个子段为止累积的全部假名行
func linesUpTo(step int) []string {
	var lines []string
	for i := 0; i < step && i < len(lineSteps); i++ {
		lines = append(lines, lineSteps[i]...)
	}
	return lines
}

// kanaStep 把段内偏移映射到子段序号（每 5 级一段，最后一段吃满剩余层级）
func kanaStep(offset int) int {
	step := offset/5 + 1
	if step > len(lineSteps) {
		step = len(lineSteps)
	}
	return step
}

type bandRule struct {
	min, max int
	pool     func(level int) []catalog.Character
}

// 段边界固定不可配置；新段只需在表中追加一行
var bands = []bandRule{
	{min: 1, max: 50, pool: func(level int) []catalog.Character {
		return catalog.FilterLines(catalog.Hiragana(), linesUpTo(kanaStep(level-1))...)
	}},
	{min: 51, max: 100, pool: func(level int) []catalog.Character {
		// 第二套假名在已完成的平假名之上叠加，按同样的节奏累积
		return catalog.Union(
			catalog.Hiragana(),
			catalog.FilterLines(catalog.Katakana(), linesUpTo(kanaStep(level-51))...),
		)
	}},
	{min: 101, max: 150, pool: func(level int) []catalog.Character {
		all := catalog.Union(catalog.Hiragana(), catalog.Katakana())
		if level <= 125 {
			// 前半段只出基础行
			return catalog.FilterLines(all, "k", "s", "t", "n", "h")
		}
		return all
	}},
	{min: 151, max: 200, pool: func(level int) []catalog.Character {
		kana := catalog.Union(catalog.Hiragana(), catalog.Katakana())
		if level <= 175 {
			return catalog.Union(kana, catalog.KanjiByTier(catalog.TierBasic))
		}
		return catalog.Union(kana, catalog.KanjiByTier(catalog.TierBasic, catalog.TierIntermediate))
	}},
}

// SelectPool 计算某一层级可抽题的字符池。对 [1,200] 内的任意层级
// 结果完全确定，随机性只存在于抽样阶段，不存在于池的成员关系。
func SelectPool(level int) ([]catalog.Character, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, util.ErrLevelOutOfRange
	}
	for _, b := range bands {
		if level >= b.min && level <= b.max {
			return b.pool(level), nil
		}
	}
	return nil, util.ErrLevelOutOfRange
}

// BandInfo 层级所在段的描述信息，供 level info 接口使用
type BandInfo struct {
	CharacterType string `json:"characterType"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
}

// DescribeLevel 返回层级描述。层级越界时返回零值和错误。
func DescribeLevel(level int) (BandInfo, error) {
	if level < MinLevel || level > MaxLevel {
		return BandInfo{}, util.ErrLevelOutOfRange
	}
	switch {
	case level <= 50:
		return BandInfo{CharacterType: "hiragana", Description: "Hiragana Practice", Difficulty: "beginner"}, nil
	case level <= 100:
		return BandInfo{CharacterType: "katakana", Description: "Katakana Practice", Difficulty: "beginner"}, nil
	case level <= 150:
		return BandInfo{CharacterType: "mixed_kana", Description: "Mixed Kana Practice", Difficulty: "intermediate"}, nil
	default:
		return BandInfo{CharacterType: "kanji", Description: "Complete Character Practice", Difficulty: "advanced"}, nil
	}
}
