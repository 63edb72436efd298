package catalog

// 汉字分区：N5 基础层 + N4 中级层
var kanjiData = []Character{
	{Symbol: "一", Reading: "ichi", Type: TypeKanji, Meaning: "one", Tier: TierBasic},
	{Symbol: "二", Reading: "ni", Type: TypeKanji, Meaning: "two", Tier: TierBasic},
	{Symbol: "三", Reading: "san", Type: TypeKanji, Meaning: "three", Tier: TierBasic},
	{Symbol: "四", Reading: "shi/yon", Type: TypeKanji, Meaning: "four", Tier: TierBasic},
	{Symbol: "五", Reading: "go", Type: TypeKanji, Meaning: "five", Tier: TierBasic},
	{Symbol: "六", Reading: "roku", Type: TypeKanji, Meaning: "six", Tier: TierBasic},
	{Symbol: "七", Reading: "shichi/nana", Type: TypeKanji, Meaning: "seven", Tier: TierBasic},
	{Symbol: "八", Reading: "hachi", Type: TypeKanji, Meaning: "eight", Tier: TierBasic},
	{Symbol: "九", Reading: "kyuu/ku", Type: TypeKanji, Meaning: "nine", Tier: TierBasic},
	{Symbol: "十", Reading: "juu", Type: TypeKanji, Meaning: "ten", Tier: TierBasic},
	{Symbol: "百", Reading: "hyaku", Type: TypeKanji, Meaning: "hundred", Tier: TierBasic},
	{Symbol: "千", Reading: "sen", Type: TypeKanji, Meaning: "thousand", Tier: TierBasic},
	{Symbol: "万", Reading: "man", Type: TypeKanji, Meaning: "ten thousand", Tier: TierBasic},
	{Symbol: "日", Reading: "nichi/hi", Type: TypeKanji, Meaning: "day/sun", Tier: TierBasic},
	{Symbol: "月", Reading: "getsu/tsuki", Type: TypeKanji, Meaning: "month/moon", Tier: TierBasic},
	{Symbol: "火", Reading: "ka/hi", Type: TypeKanji, Meaning: "fire", Tier: TierBasic},
	{Symbol: "水", Reading: "sui/mizu", Type: TypeKanji, Meaning: "water", Tier: TierBasic},
	{Symbol: "木", Reading: "moku/ki", Type: TypeKanji, Meaning: "tree/wood", Tier: TierBasic},
	{Symbol: "金", Reading: "kin/kane", Type: TypeKanji, Meaning: "gold/money", Tier: TierBasic},
	{Symbol: "土", Reading: "do/tsuchi", Type: TypeKanji, Meaning: "soil/earth", Tier: TierBasic},
	{Symbol: "人", Reading: "jin/hito", Type: TypeKanji, Meaning: "person", Tier: TierBasic},
	{Symbol: "子", Reading: "shi/ko", Type: TypeKanji, Meaning: "child", Tier: TierBasic},
	{Symbol: "女", Reading: "jo/onna", Type: TypeKanji, Meaning: "woman", Tier: TierBasic},
	{Symbol: "男", Reading: "dan/otoko", Type: TypeKanji, Meaning: "man", Tier: TierBasic},
	{Symbol: "母", Reading: "bo/haha", Type: TypeKanji, Meaning: "mother", Tier: TierBasic},
	{Symbol: "父", Reading: "fu/chichi", Type: TypeKanji, Meaning: "father", Tier: TierBasic},
	{Symbol: "友", Reading: "yuu/tomo", Type: TypeKanji, Meaning: "friend", Tier: TierBasic},
	{Symbol: "山", Reading: "san/yama", Type: TypeKanji, Meaning: "mountain", Tier: TierBasic},
	{Symbol: "川", Reading: "sen/kawa", Type: TypeKanji, Meaning: "river", Tier: TierBasic},
	{Symbol: "田", Reading: "den/ta", Type: TypeKanji, Meaning: "rice field", Tier: TierBasic},
	{Symbol: "林", Reading: "rin/hayashi", Type: TypeKanji, Meaning: "forest", Tier: TierBasic},
	{Symbol: "森", Reading: "shin/mori", Type: TypeKanji, Meaning: "woods", Tier: TierBasic},
	{Symbol: "大", Reading: "dai/oo", Type: TypeKanji, Meaning: "big", Tier: TierBasic},
	{Symbol: "小", Reading: "shou/chii", Type: TypeKanji, Meaning: "small", Tier: TierBasic},
	{Symbol: "中", Reading: "chuu/naka", Type: TypeKanji, Meaning: "middle/inside", Tier: TierBasic},
	{Symbol: "上", Reading: "jou/ue", Type: TypeKanji, Meaning: "up/above", Tier: TierBasic},
	{Symbol: "下", Reading: "ka/shita", Type: TypeKanji, Meaning: "down/below", Tier: TierBasic},
	{Symbol: "左", Reading: "sa/hidari", Type: TypeKanji, Meaning: "left", Tier: TierBasic},
	{Symbol: "右", Reading: "u/migi", Type: TypeKanji, Meaning: "right", Tier: TierBasic},
	{Symbol: "前", Reading: "zen/mae", Type: TypeKanji, Meaning: "front/before", Tier: TierBasic},
	{Symbol: "後", Reading: "go/ato", Type: TypeKanji, Meaning: "behind/after", Tier: TierBasic},
	{Symbol: "内", Reading: "nai/uchi", Type: TypeKanji, Meaning: "inside", Tier: TierBasic},
	{Symbol: "外", Reading: "gai/soto", Type: TypeKanji, Meaning: "outside", Tier: TierBasic},
	{Symbol: "本", Reading: "hon", Type: TypeKanji, Meaning: "book/origin", Tier: TierBasic},
	{Symbol: "学", Reading: "gaku/mana", Type: TypeKanji, Meaning: "study/learn", Tier: TierBasic},
	{Symbol: "校", Reading: "kou", Type: TypeKanji, Meaning: "school", Tier: TierBasic},
	{Symbol: "先", Reading: "sen/saki", Type: TypeKanji, Meaning: "previous/ahead", Tier: TierBasic},
	{Symbol: "生", Reading: "sei/i", Type: TypeKanji, Meaning: "life/birth", Tier: TierBasic},
	{Symbol: "見", Reading: "ken/mi", Type: TypeKanji, Meaning: "see", Tier: TierBasic},
	{Symbol: "聞", Reading: "bun/ki", Type: TypeKanji, Meaning: "hear", Tier: TierBasic},
	{Symbol: "食", Reading: "shoku/ta", Type: TypeKanji, Meaning: "eat", Tier: TierBasic},
	{Symbol: "飲", Reading: "in/no", Type: TypeKanji, Meaning: "drink", Tier: TierBasic},
	{Symbol: "読", Reading: "doku/yo", Type: TypeKanji, Meaning: "read", Tier: TierBasic},
	{Symbol: "書", Reading: "sho/ka", Type: TypeKanji, Meaning: "write", Tier: TierBasic},
	{Symbol: "話", Reading: "wa/hana", Type: TypeKanji, Meaning: "talk", Tier: TierBasic},
	{Symbol: "言", Reading: "gen/i", Type: TypeKanji, Meaning: "say", Tier: TierBasic},
	{Symbol: "行", Reading: "kou/i", Type: TypeKanji, Meaning: "go", Tier: TierBasic},
	{Symbol: "来", Reading: "rai/ku", Type: TypeKanji, Meaning: "come", Tier: TierBasic},
	{Symbol: "帰", Reading: "ki/kae", Type: TypeKanji, Meaning: "return", Tier: TierBasic},
	{Symbol: "入", Reading: "nyuu/hai", Type: TypeKanji, Meaning: "enter", Tier: TierBasic},
	{Symbol: "出", Reading: "shutsu/de", Type: TypeKanji, Meaning: "exit/go out", Tier: TierBasic},
	{Symbol: "立", Reading: "ritsu/ta", Type: TypeKanji, Meaning: "stand", Tier: TierBasic},
	{Symbol: "休", Reading: "kyuu/yasu", Type: TypeKanji, Meaning: "rest", Tier: TierBasic},
	{Symbol: "年", Reading: "nen/toshi", Type: TypeKanji, Meaning: "year", Tier: TierBasic},
	{Symbol: "今", Reading: "kon/ima", Type: TypeKanji, Meaning: "now", Tier: TierBasic},
	{Symbol: "時", Reading: "ji/toki", Type: TypeKanji, Meaning: "time", Tier: TierBasic},
	{Symbol: "分", Reading: "fun/wa", Type: TypeKanji, Meaning: "minute/divide", Tier: TierBasic},
	{Symbol: "半", Reading: "han/naka", Type: TypeKanji, Meaning: "half", Tier: TierBasic},
	{Symbol: "毎", Reading: "mai", Type: TypeKanji, Meaning: "every", Tier: TierBasic},
	{Symbol: "白", Reading: "haku/shiro", Type: TypeKanji, Meaning: "white", Tier: TierBasic},
	{Symbol: "青", Reading: "sei/ao", Type: TypeKanji, Meaning: "blue", Tier: TierBasic},
	{Symbol: "赤", Reading: "seki/aka", Type: TypeKanji, Meaning: "red", Tier: TierBasic},
	{Symbol: "黒", Reading: "koku/kuro", Type: TypeKanji, Meaning: "black", Tier: TierBasic},
	{Symbol: "車", Reading: "sha/kuruma", Type: TypeKanji, Meaning: "car", Tier: TierBasic},
	{Symbol: "駅", Reading: "eki", Type: TypeKanji, Meaning: "station", Tier: TierBasic},
	{Symbol: "店", Reading: "ten/mise", Type: TypeKanji, Meaning: "shop", Tier: TierBasic},
	{Symbol: "国", Reading: "koku/kuni", Type: TypeKanji, Meaning: "country", Tier: TierBasic},
	{Symbol: "名", Reading: "mei/na", Type: TypeKanji, Meaning: "name", Tier: TierBasic},
	{Symbol: "円", Reading: "en", Type: TypeKanji, Meaning: "yen/circle", Tier: TierBasic},
	{Symbol: "会", Reading: "kai/a", Type: TypeKanji, Meaning: "meet", Tier: TierIntermediate},
	{Symbol: "社", Reading: "sha/yashiro", Type: TypeKanji, Meaning: "company/shrine", Tier: TierIntermediate},
	{Symbol: "者", Reading: "sha/mono", Type: TypeKanji, Meaning: "person", Tier: TierIntermediate},
	{Symbol: "場", Reading: "jou/ba", Type: TypeKanji, Meaning: "place", Tier: TierIntermediate},
	{Symbol: "所", Reading: "sho/tokoro", Type: TypeKanji, Meaning: "place", Tier: TierIntermediate},
	{Symbol: "事", Reading: "ji/koto", Type: TypeKanji, Meaning: "thing/matter", Tier: TierIntermediate},
	{Symbol: "物", Reading: "butsu/mono", Type: TypeKanji, Meaning: "thing", Tier: TierIntermediate},
	{Symbol: "品", Reading: "hin/shina", Type: TypeKanji, Meaning: "goods", Tier: TierIntermediate},
	{Symbol: "家", Reading: "ka/ie", Type: TypeKanji, Meaning: "house/family", Tier: TierIntermediate},
	{Symbol: "部", Reading: "bu", Type: TypeKanji, Meaning: "section/part", Tier: TierIntermediate},
	{Symbol: "屋", Reading: "oku/ya", Type: TypeKanji, Meaning: "shop/roof", Tier: TierIntermediate},
	{Symbol: "室", Reading: "shitsu/muro", Type: TypeKanji, Meaning: "room", Tier: TierIntermediate},
	{Symbol: "門", Reading: "mon/kado", Type: TypeKanji, Meaning: "gate", Tier: TierIntermediate},
	{Symbol: "手", Reading: "shu/te", Type: TypeKanji, Meaning: "hand", Tier: TierIntermediate},
	{Symbol: "足", Reading: "soku/ashi", Type: TypeKanji, Meaning: "foot/leg", Tier: TierIntermediate},
	{Symbol: "目", Reading: "moku/me", Type: TypeKanji, Meaning: "eye", Tier: TierIntermediate},
	{Symbol: "口", Reading: "kou/kuchi", Type: TypeKanji, Meaning: "mouth", Tier: TierIntermediate},
	{Symbol: "耳", Reading: "ji/mimi", Type: TypeKanji, Meaning: "ear", Tier: TierIntermediate},
	{Symbol: "心", Reading: "shin/kokoro", Type: TypeKanji, Meaning: "heart/mind", Tier: TierIntermediate},
	{Symbol: "体", Reading: "tai/karada", Type: TypeKanji, Meaning: "body", Tier: TierIntermediate},
	{Symbol: "天", Reading: "ten/ama", Type: TypeKanji, Meaning: "heaven/sky", Tier: TierIntermediate},
	{Symbol: "気", Reading: "ki/ke", Type: TypeKanji, Meaning: "spirit/mood", Tier: TierIntermediate},
	{Symbol: "雨", Reading: "u/ame", Type: TypeKanji, Meaning: "rain", Tier: TierIntermediate},
	{Symbol: "雪", Reading: "setsu/yuki", Type: TypeKanji, Meaning: "snow", Tier: TierIntermediate},
	{Symbol: "風", Reading: "fuu/kaze", Type: TypeKanji, Meaning: "wind", Tier: TierIntermediate},
	{Symbol: "花", Reading: "ka/hana", Type: TypeKanji, Meaning: "flower", Tier: TierIntermediate},
	{Symbol: "草", Reading: "sou/kusa", Type: TypeKanji, Meaning: "grass", Tier: TierIntermediate},
	{Symbol: "色", Reading: "shoku/iro", Type: TypeKanji, Meaning: "color", Tier: TierIntermediate},
	{Symbol: "音", Reading: "on/oto", Type: TypeKanji, Meaning: "sound", Tier: TierIntermediate},
	{Symbol: "声", Reading: "sei/koe", Type: TypeKanji, Meaning: "voice", Tier: TierIntermediate},
	{Symbol: "力", Reading: "ryoku/chikara", Type: TypeKanji, Meaning: "power/strength", Tier: TierIntermediate},
	{Symbol: "多", Reading: "ta/oo", Type: TypeKanji, Meaning: "many", Tier: TierIntermediate},
	{Symbol: "少", Reading: "shou/suku", Type: TypeKanji, Meaning: "few/little", Tier: TierIntermediate},
	{Symbol: "長", Reading: "chou/naga", Type: TypeKanji, Meaning: "long", Tier: TierIntermediate},
	{Symbol: "短", Reading: "tan/mijika", Type: TypeKanji, Meaning: "short", Tier: TierIntermediate},
	{Symbol: "高", Reading: "kou/taka", Type: TypeKanji, Meaning: "high/expensive", Tier: TierIntermediate},
	{Symbol: "安", Reading: "an/yasu", Type: TypeKanji, Meaning: "cheap/peaceful", Tier: TierIntermediate},
	{Symbol: "新", Reading: "shin/atara", Type: TypeKanji, Meaning: "new", Tier: TierIntermediate},
	{Symbol: "古", Reading: "ko/furu", Type: TypeKanji, Meaning: "old", Tier: TierIntermediate},
	{Symbol: "早", Reading: "sou/haya", Type: TypeKanji, Meaning: "early/fast", Tier: TierIntermediate},
	{Symbol: "遅", Reading: "chi/oso", Type: TypeKanji, Meaning: "late/slow", Tier: TierIntermediate},
	{Symbol: "強", Reading: "kyou/tsuyo", Type: TypeKanji, Meaning: "strong", Tier: TierIntermediate},
	{Symbol: "弱", Reading: "jaku/yowa", Type: TypeKanji, Meaning: "weak", Tier: TierIntermediate},
	{Symbol: "正", Reading: "sei/tada", Type: TypeKanji, Meaning: "correct", Tier: TierIntermediate},
	{Symbol: "悪", Reading: "aku/waru", Type: TypeKanji, Meaning: "bad", Tier: TierIntermediate},
	{Symbol: "明", Reading: "mei/aka", Type: TypeKanji, Meaning: "bright", Tier: TierIntermediate},
	{Symbol: "暗", Reading: "an/kura", Type: TypeKanji, Meaning: "dark", Tier: TierIntermediate},
	{Symbol: "買", Reading: "bai/ka", Type: TypeKanji, Meaning: "buy", Tier: TierIntermediate},
	{Symbol: "売", Reading: "bai/u", Type: TypeKanji, Meaning: "sell", Tier: TierIntermediate},
	{Symbol: "待", Reading: "tai/ma", Type: TypeKanji, Meaning: "wait", Tier: TierIntermediate},
	{Symbol: "持", Reading: "ji/mo", Type: TypeKanji, Meaning: "hold", Tier: TierIntermediate},
	{Symbol: "使", Reading: "shi/tsuka", Type: TypeKanji, Meaning: "use", Tier: TierIntermediate},
	{Symbol: "作", Reading: "saku/tsuku", Type: TypeKanji, Meaning: "make", Tier: TierIntermediate},
	{Symbol: "思", Reading: "shi/omo", Type: TypeKanji, Meaning: "think", Tier: TierIntermediate},
	{Symbol: "知", Reading: "chi/shi", Type: TypeKanji, Meaning: "know", Tier: TierIntermediate},
	{Symbol: "切", Reading: "setsu/ki", Type: TypeKanji, Meaning: "cut", Tier: TierIntermediate},
	{Symbol: "送", Reading: "sou/oku", Type: TypeKanji, Meaning: "send", Tier: TierIntermediate},
	{Symbol: "取", Reading: "shu/to", Type: TypeKanji, Meaning: "take", Tier: TierIntermediate},
	{Symbol: "借", Reading: "shaku/ka", Type: TypeKanji, Meaning: "borrow", Tier: TierIntermediate},
	{Symbol: "貸", Reading: "tai/ka", Type: TypeKanji, Meaning: "lend", Tier: TierIntermediate},
	{Symbol: "朝", Reading: "chou/asa", Type: TypeKanji, Meaning: "morning", Tier: TierIntermediate},
	{Symbol: "昼", Reading: "chuu/hiru", Type: TypeKanji, Meaning: "noon/daytime", Tier: TierIntermediate},
	{Symbol: "夜", Reading: "ya/yoru", Type: TypeKanji, Meaning: "night", Tier: TierIntermediate},
	{Symbol: "夕", Reading: "seki/yuu", Type: TypeKanji, Meaning: "evening", Tier: TierIntermediate},
	{Symbol: "週", Reading: "shuu", Type: TypeKanji, Meaning: "week", Tier: TierIntermediate},
	{Symbol: "春", Reading: "shun/haru", Type: TypeKanji, Meaning: "spring", Tier: TierIntermediate},
	{Symbol: "夏", Reading: "ka/natsu", Type: TypeKanji, Meaning: "summer", Tier: TierIntermediate},
	{Symbol: "秋", Reading: "shuu/aki", Type: TypeKanji, Meaning: "autumn", Tier: TierIntermediate},
	{Symbol: "冬", Reading: "tou/fuyu", Type: TypeKanji, Meaning: "winter", Tier: TierIntermediate},
}
