package models

// The set of supported content languages. Closed by design: every endpoint
// rejects codes outside this list before touching the database.
const (
	LangEN = "en"
	LangES = "es"
	LangFR = "fr"
)

// SupportedLangs lists the closed language set in display order.
var SupportedLangs = []string{LangEN, LangES, LangFR}

// placeholder course titles used when a course is created without one
var placeholderTitles = map[string]string{
	LangEN: "Untitled course",
	LangES: "Curso sin título",
	LangFR: "Cours sans titre",
}

// IsSupportedLang reports whether code is one of the supported languages.
func IsSupportedLang(code string) bool {
	for _, l := range SupportedLangs {
		if l == code {
			return true
		}
	}
	return false
}

// PlaceholderTitle returns the default course title for a language.
func PlaceholderTitle(lang string) string {
	if t, ok := placeholderTitles[lang]; ok {
		return t
	}
	return placeholderTitles[LangEN]
}
