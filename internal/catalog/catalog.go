package catalog

// CharType 字符类别
type CharType string

const (
	TypeVowel      CharType = "vowel"
	TypeConsonant  CharType = "consonant"
	TypeDakuten    CharType = "dakuten"
	TypeHandakuten CharType = "handakuten"
	TypeKanji      CharType = "kanji"
)

// Tier 汉字难度层级（JLPT）
type Tier string

const (
	TierBasic        Tier = "N5"
	TierIntermediate Tier = "N4"
)

// Character 目录中的一个字符条目，进程启动时装载，之后只读
type Character struct {
	Symbol  string   `json:"symbol"`
	Reading string   `json:"reading"`
	Type    CharType `json:"type"`
	Line    string   `json:"line,omitempty"`    // 假名行（k/s/t/n/h/m/y/r/w，浊音 g/z/d/b，半浊音 p），元音为空
	Meaning string   `json:"meaning,omitempty"` // 仅汉字
	Tier    Tier     `json:"tier,omitempty"`    // 仅汉字
}

// Hiragana 返回完整平假名分区的只读视图
func Hiragana() []Character { return hiraganaData }

// Katakana 返回完整片假名分区的只读视图
func Katakana() []Character { return katakanaData }

// Kanji 返回完整汉字分区的只读视图
func Kanji() []Character { return kanjiData }

// KanjiByTier 按难度层级过滤汉字
func KanjiByTier(tiers ...Tier) []Character {
	want := make(map[Tier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	out := make([]Character, 0, len(kanjiData))
	for _, c := range kanjiData {
		if want[c.Tier] {
			out = append(out, c)
		}
	}
	return out
}

// FilterLines 从分区中选出元音加指定假名行的字符，返回新切片，不改动源数据
func FilterLines(partition []Character, lines ...string) []Character {
	want := make(map[string]bool, len(lines))
	for _, l := range lines {
		want[l] = true
	}
	out := make([]Character, 0, len(partition))
	for _, c := range partition {
		if c.Type == TypeVowel || want[c.Line] {
			out = append(out, c)
		}
	}
	return out
}

// Union 按序拼接多个分区为一个新切片
func Union(partitions ...[]Character) []Character {
	n := 0
	for _, p := range partitions {
		n += len(p)
	}
	out := make([]Character, 0, n)
	for _, p := range partitions {
		out = append(out, p...)
	}
	return out
}
