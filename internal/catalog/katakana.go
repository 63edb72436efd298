package catalog

// 片假名分区，与平假名同音序
var katakanaData = []Character{
	{Symbol: "ア", Reading: "a", Type: TypeVowel},
	{Symbol: "イ", Reading: "i", Type: TypeVowel},
	{Symbol: "ウ", Reading: "u", Type: TypeVowel},
	{Symbol: "エ", Reading: "e", Type: TypeVowel},
	{Symbol: "オ", Reading: "o", Type: TypeVowel},
	{Symbol: "カ", Reading: "ka", Type: TypeConsonant, Line: "k"},
	{Symbol: "キ", Reading: "ki", Type: TypeConsonant, Line: "k"},
	{Symbol: "ク", Reading: "ku", Type: TypeConsonant, Line: "k"},
	{Symbol: "ケ", Reading: "ke", Type: TypeConsonant, Line: "k"},
	{Symbol: "コ", Reading: "ko", Type: TypeConsonant, Line: "k"},
	{Symbol: "サ", Reading: "sa", Type: TypeConsonant, Line: "s"},
	{Symbol: "シ", Reading: "shi", Type: TypeConsonant, Line: "s"},
	{Symbol: "ス", Reading: "su", Type: TypeConsonant, Line: "s"},
	{Symbol: "セ", Reading: "se", Type: TypeConsonant, Line: "s"},
	{Symbol: "ソ", Reading: "so", Type: TypeConsonant, Line: "s"},
	{Symbol: "タ", Reading: "ta", Type: TypeConsonant, Line: "t"},
	{Symbol: "チ", Reading: "chi", Type: TypeConsonant, Line: "t"},
	{Symbol: "ツ", Reading: "tsu", Type: TypeConsonant, Line: "t"},
	{Symbol: "テ", Reading: "te", Type: TypeConsonant, Line: "t"},
	{Symbol: "ト", Reading: "to", Type: TypeConsonant, Line: "t"},
	{Symbol: "ナ", Reading: "na", Type: TypeConsonant, Line: "n"},
	{Symbol: "ニ", Reading: "ni", Type: TypeConsonant, Line: "n"},
	{Symbol: "ヌ", Reading: "nu", Type: TypeConsonant, Line: "n"},
	{Symbol: "ネ", Reading: "ne", Type: TypeConsonant, Line: "n"},
	{Symbol: "ノ", Reading: "no", Type: TypeConsonant, Line: "n"},
	{Symbol: "ハ", Reading: "ha", Type: TypeConsonant, Line: "h"},
	{Symbol: "ヒ", Reading: "hi", Type: TypeConsonant, Line: "h"},
	{Symbol: "フ", Reading: "fu", Type: TypeConsonant, Line: "h"},
	{Symbol: "ヘ", Reading: "he", Type: TypeConsonant, Line: "h"},
	{Symbol: "ホ", Reading: "ho", Type: TypeConsonant, Line: "h"},
	{Symbol: "マ", Reading: "ma", Type: TypeConsonant, Line: "m"},
	{Symbol: "ミ", Reading: "mi", Type: TypeConsonant, Line: "m"},
	{Symbol: "ム", Reading: "mu", Type: TypeConsonant, Line: "m"},
	{Symbol: "メ", Reading: "me", Type: TypeConsonant, Line: "m"},
	{Symbol: "モ", Reading: "mo", Type: TypeConsonant, Line: "m"},
	{Symbol: "ヤ", Reading: "ya", Type: TypeConsonant, Line: "y"},
	{Symbol: "ユ", Reading: "yu", Type: TypeConsonant, Line: "y"},
	{Symbol: "ヨ", Reading: "yo", Type: TypeConsonant, Line: "y"},
	{Symbol: "ラ", Reading: "ra", Type: TypeConsonant, Line: "r"},
	{Symbol: "リ", Reading: "ri", Type: TypeConsonant, Line: "r"},
	{Symbol: "ル", Reading: "ru", Type: TypeConsonant, Line: "r"},
	{Symbol: "レ", Reading: "re", Type: TypeConsonant, Line: "r"},
	{Symbol: "ロ", Reading: "ro", Type: TypeConsonant, Line: "r"},
	{Symbol: "ワ", Reading: "wa", Type: TypeConsonant, Line: "w"},
	{Symbol: "ヲ", Reading: "wo", Type: TypeConsonant, Line: "w"},
	{Symbol: "ン", Reading: "n", Type: TypeConsonant, Line: "n"},
	{Symbol: "ガ", Reading: "ga", Type: TypeDakuten, Line: "g"},
	{Symbol: "ギ", Reading: "gi", Type: TypeDakuten, Line: "g"},
	{Symbol: "グ", Reading: "gu", Type: TypeDakuten, Line: "g"},
	{Symbol: "ゲ", Reading: "ge", Type: TypeDakuten, Line: "g"},
	{Symbol: "ゴ", Reading: "go", Type: TypeDakuten, Line: "g"},
	{Symbol: "ザ", Reading: "za", Type: TypeDakuten, Line: "z"},
	{Symbol: "ジ", Reading: "ji", Type: TypeDakuten, Line: "z"},
	{Symbol: "ズ", Reading: "zu", Type: TypeDakuten, Line: "z"},
	{Symbol: "ゼ", Reading: "ze", Type: TypeDakuten, Line: "z"},
	{Symbol: "ゾ", Reading: "zo", Type: TypeDakuten, Line: "z"},
	{Symbol: "ダ", Reading: "da", Type: TypeDakuten, Line: "d"},
	{Symbol: "ヂ", Reading: "di", Type: TypeDakuten, Line: "d"},
	{Symbol: "ヅ", Reading: "du", Type: TypeDakuten, Line: "d"},
	{Symbol: "デ", Reading: "de", Type: TypeDakuten, Line: "d"},
	{Symbol: "ド", Reading: "do", Type: TypeDakuten, Line: "d"},
	{Symbol: "バ", Reading: "ba", Type: TypeDakuten, Line: "b"},
	{Symbol: "ビ", Reading: "bi", Type: TypeDakuten, Line: "b"},
	{Symbol: "ブ", Reading: "bu", Type: TypeDakuten, Line: "b"},
	{Symbol: "ベ", Reading: "be", Type: TypeDakuten, Line: "b"},
	{Symbol: "ボ", Reading: "bo", Type: TypeDakuten, Line: "b"},
	{Symbol: "パ", Reading: "pa", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ピ", Reading: "pi", Type: TypeHandakuten, Line: "p"},
	{Symbol: "プ", Reading: "pu", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ペ", Reading: "pe", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ポ", Reading: "po", Type: TypeHandakuten, Line: "p"},
}
