package quiz_test

import (
	"math/rand"
	"testing"

	"kanasense_backend/internal/catalog"
	"kanasense_backend/internal/quiz"
	"kanasense_backend/internal/util"
)

func TestGenerate_QuestionValidity(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(42))
	for _, level := range []int{1, 25, 60, 120, 160, 200} {
		pool := mustPool(t, level)
		questions, err := gen.Generate(level, pool, quiz.QuestionsPerLevel)
		if err != nil {
			t.Fatalf("Generate(level %d): %v", level, err)
		}
		for _, q := range questions {
			if len(q.Options) != quiz.OptionsPerQuestion {
				t.Fatalf("question %s: expected %d options, got %d", q.ID, quiz.OptionsPerQuestion, len(q.Options))
			}
			seen := map[string]bool{}
			found := false
			for _, opt := range q.Options {
				if seen[opt] {
					t.Fatalf("question %s: duplicate option %q", q.ID, opt)
				}
				seen[opt] = true
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Fatalf("question %s: correct answer %q not among options", q.ID, q.CorrectAnswer)
			}
		}
	}
}

func TestGenerate_NoDuplicatePrompts(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(7))
	pool := mustPool(t, 50) // 71 symbols, comfortably above the question count

	for trial := 0; trial < 50; trial++ {
		questions, err := gen.Generate(50, pool, quiz.QuestionsPerLevel)
		if err != nil {
			t.Fatal(err)
		}
		if len(questions) != quiz.QuestionsPerLevel {
			t.Fatalf("expected %d questions, got %d", quiz.QuestionsPerLevel, len(questions))
		}
		seen := map[string]bool{}
		for _, q := range questions {
			if seen[q.Symbol] {
				t.Fatalf("trial %d: symbol %q used by two questions", trial, q.Symbol)
			}
			seen[q.Symbol] = true
		}
	}
}

func TestGenerate_AcceptsDuplicatesOnSmallPool(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(3))
	pool := mustPool(t, 1)[:5] // 只留 5 个元音，少于题量

	questions, err := gen.Generate(1, pool, quiz.QuestionsPerLevel)
	if err != nil {
		t.Fatal(err)
	}
	// 5 个字符出 10 道题必然复用提示符，但每道题本身仍然要完整
	if len(questions) == 0 {
		t.Fatal("expected questions from a 5-entry pool")
	}
	for _, q := range questions {
		if len(q.Options) != quiz.OptionsPerQuestion {
			t.Fatalf("question %s malformed on small pool", q.ID)
		}
	}
}

func TestGenerate_PoolTooSmall(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(1))
	pool := mustPool(t, 1)[:3]
	if _, err := gen.Generate(1, pool, quiz.QuestionsPerLevel); err != util.ErrPoolTooSmall {
		t.Fatalf("expected ErrPoolTooSmall, got %v", err)
	}
}

func TestGenerate_DegeneratePool(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(1))
	// 四个条目符号和读音全部相同：任何方向都凑不出干扰项
	pool := []catalog.Character{
		{Symbol: "あ", Reading: "a", Type: catalog.TypeVowel},
		{Symbol: "あ", Reading: "a", Type: catalog.TypeVowel},
		{Symbol: "あ", Reading: "a", Type: catalog.TypeVowel},
		{Symbol: "あ", Reading: "a", Type: catalog.TypeVowel},
	}
	if _, err := gen.Generate(1, pool, quiz.QuestionsPerLevel); err != util.ErrDegeneratePool {
		t.Fatalf("expected ErrDegeneratePool, got %v", err)
	}
}

func TestGenerate_SeededReproducibility(t *testing.T) {
	pool := mustPool(t, 30)
	a, err := quiz.NewGenerator(rand.NewSource(99)).Generate(30, pool, quiz.QuestionsPerLevel)
	if err != nil {
		t.Fatal(err)
	}
	b, err := quiz.NewGenerator(rand.NewSource(99)).Generate(30, pool, quiz.QuestionsPerLevel)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("same seed produced different question counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Prompt != b[i].Prompt || a[i].CorrectAnswer != b[i].CorrectAnswer {
			t.Fatalf("same seed diverged at question %d", i)
		}
		for j := range a[i].Options {
			if a[i].Options[j] != b[i].Options[j] {
				t.Fatalf("same seed produced different option order at question %d", i)
			}
		}
	}
}

func TestGenerate_BothModesAppear(t *testing.T) {
	gen := quiz.NewGenerator(rand.NewSource(5))
	pool := mustPool(t, 50)

	modes := map[quiz.Mode]int{}
	for trial := 0; trial < 20; trial++ {
		questions, err := gen.Generate(50, pool, quiz.QuestionsPerLevel)
		if err != nil {
			t.Fatal(err)
		}
		for _, q := range questions {
			modes[q.Mode]++
		}
	}
	// 200 道题里两个方向都该出现（统计性断言，固定种子下稳定）
	if modes[quiz.SymbolToReading] == 0 || modes[quiz.ReadingToSymbol] == 0 {
		t.Fatalf("expected both prompt modes across 200 questions, got %v", modes)
	}
}
