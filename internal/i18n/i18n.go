package i18n

// Language is a supported UI language code.
type Language string

const (
	LangEnglish    Language = "en"
	LangBengali    Language = "bn"
	LangSpanish    Language = "es"
	LangIndonesian Language = "id"
)

// Fallback is the baseline language used for unset or unrecognized codes.
const Fallback = LangEnglish

// Resolve maps a stored language code to a supported language, falling back
// deterministically to the baseline.
func Resolve(code string) Language {
	switch Language(code) {
	case LangEnglish, LangBengali, LangSpanish, LangIndonesian:
		return Language(code)
	default:
		return Fallback
	}
}

// Option is a language choice offered on the selection keyboard.
type Option struct {
	Code  Language
	Label string
}

// Options lists the selectable languages in display order.
func Options() []Option {
	return []Option{
		{Code: LangEnglish, Label: "English 🇬🇧"},
		{Code: LangBengali, Label: "বাংলা 🇧🇩"},
		{Code: LangSpanish, Label: "Español 🇪🇸"},
		{Code: LangIndonesian, Label: "Bahasa Indonesia 🇮🇩"},
	}
}

// ForLanguage returns the message bundle for lang, falling back to the
// baseline bundle for anything unknown.
func ForLanguage(lang Language) *Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[Fallback]
}
