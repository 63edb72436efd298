package catalog

// 平假名分区：46个基础假名 + 浊音/半浊音变体
var hiraganaData = []Character{
	{Symbol: "あ", Reading: "a", Type: TypeVowel},
	{Symbol: "い", Reading: "i", Type: TypeVowel},
	{Symbol: "う", Reading: "u", Type: TypeVowel},
	{Symbol: "え", Reading: "e", Type: TypeVowel},
	{Symbol: "お", Reading: "o", Type: TypeVowel},
	{Symbol: "か", Reading: "ka", Type: TypeConsonant, Line: "k"},
	{Symbol: "き", Reading: "ki", Type: TypeConsonant, Line: "k"},
	{Symbol: "く", Reading: "ku", Type: TypeConsonant, Line: "k"},
	{Symbol: "け", Reading: "ke", Type: TypeConsonant, Line: "k"},
	{Symbol: "こ", Reading: "ko", Type: TypeConsonant, Line: "k"},
	{Symbol: "さ", Reading: "sa", Type: TypeConsonant, Line: "s"},
	{Symbol: "し", Reading: "shi", Type: TypeConsonant, Line: "s"},
	{Symbol: "す", Reading: "su", Type: TypeConsonant, Line: "s"},
	{Symbol: "せ", Reading: "se", Type: TypeConsonant, Line: "s"},
	{Symbol: "そ", Reading: "so", Type: TypeConsonant, Line: "s"},
	{Symbol: "た", Reading: "ta", Type: TypeConsonant, Line: "t"},
	{Symbol: "ち", Reading: "chi", Type: TypeConsonant, Line: "t"},
	{Symbol: "つ", Reading: "tsu", Type: TypeConsonant, Line: "t"},
	{Symbol: "て", Reading: "te", Type: TypeConsonant, Line: "t"},
	{Symbol: "と", Reading: "to", Type: TypeConsonant, Line: "t"},
	{Symbol: "な", Reading: "na", Type: TypeConsonant, Line: "n"},
	{Symbol: "に", Reading: "ni", Type: TypeConsonant, Line: "n"},
	{Symbol: "ぬ", Reading: "nu", Type: TypeConsonant, Line: "n"},
	{Symbol: "ね", Reading: "ne", Type: TypeConsonant, Line: "n"},
	{Symbol: "の", Reading: "no", Type: TypeConsonant, Line: "n"},
	{Symbol: "は", Reading: "ha", Type: TypeConsonant, Line: "h"},
	{Symbol: "ひ", Reading: "hi", Type: TypeConsonant, Line: "h"},
	{Symbol: "ふ", Reading: "fu", Type: TypeConsonant, Line: "h"},
	{Symbol: "へ", Reading: "he", Type: TypeConsonant, Line: "h"},
	{Symbol: "ほ", Reading: "ho", Type: TypeConsonant, Line: "h"},
	{Symbol: "ま", Reading: "ma", Type: TypeConsonant, Line: "m"},
	{Symbol: "み", Reading: "mi", Type: TypeConsonant, Line: "m"},
	{Symbol: "む", Reading: "mu", Type: TypeConsonant, Line: "m"},
	{Symbol: "め", Reading: "me", Type: TypeConsonant, Line: "m"},
	{Symbol: "も", Reading: "mo", Type: TypeConsonant, Line: "m"},
	{Symbol: "や", Reading: "ya", Type: TypeConsonant, Line: "y"},
	{Symbol: "ゆ", Reading: "yu", Type: TypeConsonant, Line: "y"},
	{Symbol: "よ", Reading: "yo", Type: TypeConsonant, Line: "y"},
	{Symbol: "ら", Reading: "ra", Type: TypeConsonant, Line: "r"},
	{Symbol: "り", Reading: "ri", Type: TypeConsonant, Line: "r"},
	{Symbol: "る", Reading: "ru", Type: TypeConsonant, Line: "r"},
	{Symbol: "れ", Reading: "re", Type: TypeConsonant, Line: "r"},
	{Symbol: "ろ", Reading: "ro", Type: TypeConsonant, Line: "r"},
	{Symbol: "わ", Reading: "wa", Type: TypeConsonant, Line: "w"},
	{Symbol: "を", Reading: "wo", Type: TypeConsonant, Line: "w"},
	{Symbol: "ん", Reading: "n", Type: TypeConsonant, Line: "n"},
	{Symbol: "が", Reading: "ga", Type: TypeDakuten, Line: "g"},
	{Symbol: "ぎ", Reading: "gi", Type: TypeDakuten, Line: "g"},
	{Symbol: "ぐ", Reading: "gu", Type: TypeDakuten, Line: "g"},
	{Symbol: "げ", Reading: "ge", Type: TypeDakuten, Line: "g"},
	{Symbol: "ご", Reading: "go", Type: TypeDakuten, Line: "g"},
	{Symbol: "ざ", Reading: "za", Type: TypeDakuten, Line: "z"},
	{Symbol: "じ", Reading: "ji", Type: TypeDakuten, Line: "z"},
	{Symbol: "ず", Reading: "zu", Type: TypeDakuten, Line: "z"},
	{Symbol: "ぜ", Reading: "ze", Type: TypeDakuten, Line: "z"},
	{Symbol: "ぞ", Reading: "zo", Type: TypeDakuten, Line: "z"},
	{Symbol: "だ", Reading: "da", Type: TypeDakuten, Line: "d"},
	{Symbol: "ぢ", Reading: "di", Type: TypeDakuten, Line: "d"},
	{Symbol: "づ", Reading: "du", Type: TypeDakuten, Line: "d"},
	{Symbol: "で", Reading: "de", Type: TypeDakuten, Line: "d"},
	{Symbol: "ど", Reading: "do", Type: TypeDakuten, Line: "d"},
	{Symbol: "ば", Reading: "ba", Type: TypeDakuten, Line: "b"},
	{Symbol: "び", Reading: "bi", Type: TypeDakuten, Line: "b"},
	{Symbol: "ぶ", Reading: "bu", Type: TypeDakuten, Line: "b"},
	{Symbol: "べ", Reading: "be", Type: TypeDakuten, Line: "b"},
	{Symbol: "ぼ", Reading: "bo", Type: TypeDakuten, Line: "b"},
	{Symbol: "ぱ", Reading: "pa", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ぴ", Reading: "pi", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ぷ", Reading: "pu", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ぺ", Reading: "pe", Type: TypeHandakuten, Line: "p"},
	{Symbol: "ぽ", Reading: "po", Type: TypeHandakuten, Line: "p"},
}
