package quiz_test

import (
	"testing"

	"kanasense_backend/internal/catalog"
	"kanasense_backend/internal/quiz"
	"kanasense_backend/internal/util"
)

func symbolSet(pool []catalog.Character) map[string]bool {
	set := make(map[string]bool, len(pool))
	for _, c := range pool {
		set[c.Symbol] = true
	}
	return set
}

func mustPool(t *testing.T, level int) []catalog.Character {
	t.Helper()
	pool, err := quiz.SelectPool(level)
	if err != nil {
		t.Fatalf("SelectPool(%d): %v", level, err)
	}
	return pool
}

func TestSelectPool_RejectsOutOfRangeLevels(t *testing.T) {
	for _, level := range []int{-1, 0, 201, 1000} {
		if _, err := quiz.SelectPool(level); err != util.ErrLevelOutOfRange {
			t.Errorf("SelectPool(%d): expected ErrLevelOutOfRange, got %v", level, err)
		}
	}
}

func TestSelectPool_Deterministic(t *testing.T) {
	for _, level := range []int{1, 37, 50, 88, 125, 126, 175, 200} {
		a := mustPool(t, level)
		b := mustPool(t, level)
		if len(a) != len(b) {
			t.Fatalf("level %d: pool size changed between calls: %d vs %d", level, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("level %d: pool entry %d changed between calls", level, i)
			}
		}
	}
}

func TestSelectPool_FirstSubBandHasVowelsAndKLine(t *testing.T) {
	pool := mustPool(t, 5)
	if len(pool) != 10 {
		t.Fatalf("level 5 pool: expected 10 symbols (vowels + K-line), got %d", len(pool))
	}
	set := symbolSet(pool)
	for _, s := range []string{"あ", "い", "う", "え", "お", "か", "き", "く", "け", "こ"} {
		if !set[s] {
			t.Errorf("level 5 pool missing %q", s)
		}
	}
}

func TestSelectPool_MonotoneWithinHiraganaBand(t *testing.T) {
	for level := 1; level < 50; level++ {
		smaller := symbolSet(mustPool(t, level))
		bigger := symbolSet(mustPool(t, level+1))
		for sym := range smaller {
			if !bigger[sym] {
				t.Fatalf("level %d pool contains %q but level %d pool does not", level, sym, level+1)
			}
		}
	}
}

func TestSelectPool_BandCoverage(t *testing.T) {
	hira := len(catalog.Hiragana())
	kata := len(catalog.Katakana())
	kanji := len(catalog.Kanji())
	basic := len(catalog.KanjiByTier(catalog.TierBasic))

	cases := []struct {
		level int
		want  int
	}{
		{50, hira},
		{51, hira + 10},
		{100, hira + kata},
		{126, hira + kata},
		{150, hira + kata},
		{151, hira + kata + basic},
		{175, hira + kata + basic},
		{176, hira + kata + kanji},
		{200, hira + kata + kanji},
	}
	for _, tc := range cases {
		pool := mustPool(t, tc.level)
		if len(pool) != tc.want {
			t.Errorf("SelectPool(%d): expected %d entries, got %d", tc.level, tc.want, len(pool))
		}
	}
}

func TestSelectPool_MixedBandRampExcludesVoiced(t *testing.T) {
	for _, c := range mustPool(t, 110) {
		if c.Type == catalog.TypeDakuten || c.Type == catalog.TypeHandakuten {
			t.Fatalf("level 110 pool should not contain voiced variants, found %q", c.Symbol)
		}
	}
	set := symbolSet(mustPool(t, 126))
	if !set["が"] || !set["パ"] {
		t.Error("level 126 pool should contain the full kana union including voiced variants")
	}
}

func TestDescribeLevel(t *testing.T) {
	cases := []struct {
		level    int
		charType string
	}{
		{1, "hiragana"},
		{50, "hiragana"},
		{51, "katakana"},
		{101, "mixed_kana"},
		{151, "kanji"},
		{200, "kanji"},
	}
	for _, tc := range cases {
		info, err := quiz.DescribeLevel(tc.level)
		if err != nil {
			t.Fatalf("DescribeLevel(%d): %v", tc.level, err)
		}
		if info.CharacterType != tc.charType {
			t.Errorf("DescribeLevel(%d): expected %q, got %q", tc.level, tc.charType, info.CharacterType)
		}
	}
	if _, err := quiz.DescribeLevel(0); err != util.ErrLevelOutOfRange {
		t.Errorf("DescribeLevel(0): expected ErrLevelOutOfRange, got %v", err)
	}
}
