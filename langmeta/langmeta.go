// Package langmeta provides a shared language metadata registry
// (English prompt names, native names, emoji flags) used by the
// translation directive and the CLI UI.
package langmeta

import "strings"

// Meta describes language display metadata.
type Meta struct {
	// English is the English language name used inside provider prompts.
	English string
	// Native is the self-referential display name.
	Native string
	Flag   string
}

// Registry contains canonical language metadata.
// Locale variants are resolved in Resolve() via normalization and base fallback.
var Registry = map[string]Meta{
	"ar":    {English: "Arabic", Native: "العربية", Flag: "🇸🇦"},
	"cs":    {English: "Czech", Native: "Čeština", Flag: "🇨🇿"},
	"de":    {English: "German", Native: "Deutsch", Flag: "🇩🇪"},
	"en":    {English: "English", Native: "English", Flag: "🇺🇸"},
	"es":    {English: "Spanish", Native: "Español", Flag: "🇪🇸"},
	"fr":    {English: "French", Native: "Français", Flag: "🇫🇷"},
	"hi":    {English: "Hindi", Native: "हिन्दी", Flag: "🇮🇳"},
	"id":    {English: "Indonesian", Native: "Bahasa Indonesia", Flag: "🇮🇩"},
	"it":    {English: "Italian", Native: "Italiano", Flag: "🇮🇹"},
	"ja":    {English: "Japanese", Native: "日本語", Flag: "🇯🇵"},
	"ko":    {English: "Korean", Native: "한국어", Flag: "🇰🇷"},
	"ms":    {English: "Malay", Native: "Bahasa Melayu", Flag: "🇲🇾"},
	"nl":    {English: "Dutch", Native: "Nederlands", Flag: "🇳🇱"},
	"pl":    {English: "Polish", Native: "Polski", Flag: "🇵🇱"},
	"pt":    {English: "Portuguese", Native: "Português", Flag: "🇵🇹"},
	"pt-BR": {English: "Brazilian Portuguese", Native: "Português (Brasil)", Flag: "🇧🇷"},
	"ru":    {English: "Russian", Native: "Русский", Flag: "🇷🇺"},
	"th":    {English: "Thai", Native: "ไทย", Flag: "🇹🇭"},
	"tr":    {English: "Turkish", Native: "Türkçe", Flag: "🇹🇷"},
	"uk":    {English: "Ukrainian", Native: "Українська", Flag: "🇺🇦"},
	"vi":    {English: "Vietnamese", Native: "Tiếng Việt", Flag: "🇻🇳"},
	"zh":    {English: "Chinese", Native: "中文", Flag: "🇨🇳"},
	"zh-CN": {English: "Simplified Chinese", Native: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {English: "Traditional Chinese", Native: "繁體中文", Flag: "🇹🇼"},
}

func canonicalize(lang string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) > 1 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns best-effort metadata for a language code, supporting
// variants like pt_BR, pt-BR, and base-language fallbacks. Unknown codes
// resolve to a Meta whose names equal the code itself.
func Resolve(lang string) Meta {
	canonical := canonicalize(lang)
	if canonical == "" {
		return Meta{English: lang, Native: lang}
	}
	if m, ok := Registry[canonical]; ok {
		return m
	}
	base := strings.SplitN(canonical, "-", 2)[0]
	if m, ok := Registry[base]; ok {
		return m
	}
	return Meta{English: lang, Native: lang}
}

// PromptName returns the English name used inside provider prompts.
func PromptName(lang string) string {
	return Resolve(lang).English
}
