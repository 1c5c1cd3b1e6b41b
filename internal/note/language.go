package note

// Language is a recognition locale offered by the recorder.
type Language struct {
	Code string
	Name string
	Flag string
}

// Languages lists the supported recognition locales.
var Languages = []Language{
	{Code: "en-US", Name: "English (US)", Flag: "🇺🇸"},
	{Code: "en-GB", Name: "English (UK)", Flag: "🇬🇧"},
	{Code: "hi-IN", Name: "हिन्दी (Hindi)", Flag: "🇮🇳"},
	{Code: "es-ES", Name: "Español (Spanish)", Flag: "🇪🇸"},
	{Code: "fr-FR", Name: "Français (French)", Flag: "🇫🇷"},
	{Code: "de-DE", Name: "Deutsch (German)", Flag: "🇩🇪"},
	{Code: "ja-JP", Name: "日本語 (Japanese)", Flag: "🇯🇵"},
	{Code: "ko-KR", Name: "한국어 (Korean)", Flag: "🇰🇷"},
	{Code: "zh-CN", Name: "中文 (Chinese)", Flag: "🇨🇳"},
	{Code: "ar-SA", Name: "العربية (Arabic)", Flag: "🇸🇦"},
	{Code: "pt-BR", Name: "Português (Portuguese)", Flag: "🇧🇷"},
	{Code: "ru-RU", Name: "Русский (Russian)", Flag: "🇷🇺"},
	{Code: "it-IT", Name: "Italiano (Italian)", Flag: "🇮🇹"},
	{Code: "nl-NL", Name: "Nederlands (Dutch)", Flag: "🇳🇱"},
	{Code: "sv-SE", Name: "Svenska (Swedish)", Flag: "🇸🇪"},
}

// LanguageName returns the display name for a locale code, or "" if the
// code is not in the supported list.
func LanguageName(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return ""
}

// LanguageFlag returns the flag for a locale code, or "" if unknown.
func LanguageFlag(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Flag
		}
	}
	return ""
}
