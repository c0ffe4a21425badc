package slug

// builtin is the process-wide transliteration table. It is built once and
// never mutated; every Slugifier consults it after its own custom rules.
var builtin = NewTable(builtinReplacements...)

// BuiltinReplacements returns a copy of the built-in transliteration rules.
func BuiltinReplacements() []Replacement {
	return builtin.Entries()
}

// Letters with a canonical decomposition (é, ñ, ż ...) are not listed here:
// they fold through NFKD. The table holds the letters that need more than
// stripping a mark, or that have no decomposition at all.
var builtinReplacements = []Replacement{
	// German and Scandinavian
	{"Ä", "AE"}, {"ä", "ae"},
	{"Å", "AA"}, {"å", "aa"},
	{"Æ", "AE"}, {"æ", "ae"},
	{"Ö", "OE"}, {"ö", "oe"},
	{"Ø", "OE"}, {"ø", "oe"},
	{"Ü", "UE"}, {"ü", "ue"},
	{"ß", "ss"}, {"ẞ", "SS"},

	// Latin letters without a decomposition
	{"Œ", "OE"}, {"œ", "oe"},
	{"Ð", "D"}, {"ð", "d"},
	{"Đ", "D"}, {"đ", "d"},
	{"Þ", "TH"}, {"þ", "th"},
	{"Ħ", "H"}, {"ħ", "h"},
	{"Ł", "L"}, {"ł", "l"},
	{"Ŧ", "T"}, {"ŧ", "t"},
	{"ı", "i"},

	// Russian
	{"А", "A"}, {"а", "a"},
	{"Б", "B"}, {"б", "b"},
	{"В", "V"}, {"в", "v"},
	{"Г", "G"}, {"г", "g"},
	{"Д", "D"}, {"д", "d"},
	{"Е", "E"}, {"е", "e"},
	{"Ё", "Yo"}, {"ё", "yo"},
	{"Ж", "Zh"}, {"ж", "zh"},
	{"З", "Z"}, {"з", "z"},
	{"И", "I"}, {"и", "i"},
	{"Й", "Y"}, {"й", "y"},
	{"К", "K"}, {"к", "k"},
	{"Л", "L"}, {"л", "l"},
	{"М", "M"}, {"м", "m"},
	{"Н", "N"}, {"н", "n"},
	{"О", "O"}, {"о", "o"},
	{"П", "P"}, {"п", "p"},
	{"Р", "R"}, {"р", "r"},
	{"С", "S"}, {"с", "s"},
	{"Т", "T"}, {"т", "t"},
	{"У", "U"}, {"у", "u"},
	{"Ф", "F"}, {"ф", "f"},
	{"Х", "Kh"}, {"х", "kh"},
	{"Ц", "Ts"}, {"ц", "ts"},
	{"Ч", "Ch"}, {"ч", "ch"},
	{"Ш", "Sh"}, {"ш", "sh"},
	{"Щ", "Shch"}, {"щ", "shch"},
	{"Ъ", ""}, {"ъ", ""},
	{"Ы", "Y"}, {"ы", "y"},
	{"Ь", ""}, {"ь", ""},
	{"Э", "E"}, {"э", "e"},
	{"Ю", "Yu"}, {"ю", "yu"},
	{"Я", "Ya"}, {"я", "ya"},

	// Ukrainian and Belarusian
	{"Є", "Ye"}, {"є", "ye"},
	{"І", "I"}, {"і", "i"},
	{"Ї", "Yi"}, {"ї", "yi"},
	{"Ґ", "G"}, {"ґ", "g"},
	{"Ў", "U"}, {"ў", "u"},

	// Greek
	{"Α", "A"}, {"α", "a"}, {"Ά", "A"}, {"ά", "a"},
	{"Β", "V"}, {"β", "v"},
	{"Γ", "G"}, {"γ", "g"},
	{"Δ", "D"}, {"δ", "d"},
	{"Ε", "E"}, {"ε", "e"}, {"Έ", "E"}, {"έ", "e"},
	{"Ζ", "Z"}, {"ζ", "z"},
	{"Η", "I"}, {"η", "i"}, {"Ή", "I"}, {"ή", "i"},
	{"Θ", "Th"}, {"θ", "th"},
	{"Ι", "I"}, {"ι", "i"}, {"Ί", "I"}, {"ί", "i"},
	{"Ϊ", "I"}, {"ϊ", "i"}, {"ΐ", "i"},
	{"Κ", "K"}, {"κ", "k"},
	{"Λ", "L"}, {"λ", "l"},
	{"Μ", "M"}, {"μ", "m"},
	{"Ν", "N"}, {"ν", "n"},
	{"Ξ", "X"}, {"ξ", "x"},
	{"Ο", "O"}, {"ο", "o"}, {"Ό", "O"}, {"ό", "o"},
	{"Π", "P"}, {"π", "p"},
	{"Ρ", "R"}, {"ρ", "r"},
	{"Σ", "S"}, {"σ", "s"}, {"ς", "s"},
	{"Τ", "T"}, {"τ", "t"},
	{"Υ", "Y"}, {"υ", "y"}, {"Ύ", "Y"}, {"ύ", "y"},
	{"Ϋ", "Y"}, {"ϋ", "y"}, {"ΰ", "y"},
	{"Φ", "F"}, {"φ", "f"},
	{"Χ", "Ch"}, {"χ", "ch"},
	{"Ψ", "Ps"}, {"ψ", "ps"},
	{"Ω", "O"}, {"ω", "o"}, {"Ώ", "O"}, {"ώ", "o"},
}
