package quiz

import (
	"fmt"
	"math/rand"

	"kanasense_backend/internal/catalog"
	"kanasense_backend/internal/util"
)

const (
	// QuestionsPerLevel 每关的标准题量
	QuestionsPerLevel = 10
	// OptionsPerQuestion 每题选项数：1 个正确答案 + 3 个干扰项
	OptionsPerQuestion = 4

	maxPromptRetries     = 100
	maxDistractorRetries = 100
)

// Mode 出题方向
type Mode string

const (
	SymbolToReading Mode = "symbolToReading"
	ReadingToSymbol Mode = "readingToSymbol"
)

// Question 一道四选一的题目
type Question struct {
	ID            string `json:"id"`
	Mode          Mode   `json:"mode"`
	Prompt        string `json:"prompt"`
	Symbol        string `json:"symbol"`
	Reading       string `json:"reading"`
	Meaning       string `json:"meaning,omitempty"`
	CorrectAnswer string `json:"correctAnswer"`
	Options       []string `json:"options"`
}

// Generator 从字符池采样生成题目。随机源由调用方注入，
// 测试里用固定种子，生产环境用时间种子。
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// answerValue 按出题方向取字符的应答值
func answerValue(c catalog.Character, mode Mode) string {
	if mode == SymbolToReading {
		return c.Reading
	}
	return c.Symbol
}

func promptValue(c catalog.Character, mode Mode) string {
	if mode == SymbolToReading {
		return c.Symbol
	}
	return c.Reading
}

// Generate 生成 count 道题。池太小凑不齐干扰项的槽位会被丢弃，
// 因此返回的题数可能少于 count；一道都生成不出来按硬错误处理。
func (g *Generator) Generate(level int, pool []catalog.Character, count int) ([]Question, error) {
	if len(pool) < OptionsPerQuestion {
		return nil, util.ErrPoolTooSmall
	}

	questions := make([]Question, 0, count)
	used := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		mode := SymbolToReading
		if g.rng.Intn(2) == 1 {
			mode = ReadingToSymbol
		}

		// 有限次重抽避免重复出题；池比题量还小时接受重复，不死循环
		var char catalog.Character
		for attempt := 0; ; attempt++ {
			char = pool[g.rng.Intn(len(pool))]
			if !used[char.Symbol] || attempt >= maxPromptRetries {
				break
			}
		}
		used[char.Symbol] = true

		correct := answerValue(char, mode)
		distractors := g.sampleDistractors(pool, mode, correct)
		if len(distractors) < OptionsPerQuestion-1 {
			// 干扰项凑不齐就丢弃槽位，绝不吐出残缺的题
			continue
		}

		options := append([]string{correct}, distractors...)
		g.shuffle(options)

		questions = append(questions, Question{
			ID:            fmt.Sprintf("L%d-Q%d", level, len(questions)+1),
			Mode:          mode,
			Prompt:        promptValue(char, mode),
			Symbol:        char.Symbol,
			Reading:       char.Reading,
			Meaning:       char.Meaning,
			CorrectAnswer: correct,
			Options:       options,
		})
	}

	if len(questions) == 0 {
		return nil, util.ErrDegeneratePool
	}
	return questions, nil
}

// sampleDistractors 拒绝采样出至多 3 个与正确答案、彼此都不同的干扰项
func (g *Generator) sampleDistractors(pool []catalog.Character, mode Mode, correct string) []string {
	distractors := make([]string, 0, OptionsPerQuestion-1)
	seen := map[string]bool{correct: true}

	for attempt := 0; len(distractors) < OptionsPerQuestion-1 && attempt < maxDistractorRetries; attempt++ {
		v := answerValue(pool[g.rng.Intn(len(pool))], mode)
		if seen[v] {
			continue
		}
		seen[v] = true
		distractors = append(distractors, v)
	}
	return distractors
}

// shuffle Fisher-Yates 洗牌
func (g *Generator) shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
