package domain

// supportedLanguages are the language codes the service accepts for
// analysis responses and translation targets. English is the source
// language of every analysis.
var supportedLanguages = map[string]struct{}{
	"en": {}, "hi": {}, "bn": {}, "te": {}, "mr": {}, "ta": {}, "ur": {},
	"gu": {}, "kn": {}, "ml": {}, "or": {}, "pa": {}, "as": {}, "mai": {},
	"sat": {}, "ks": {}, "ne": {}, "sd": {}, "kok": {}, "doi": {},
	"mni": {}, "sa": {}, "bo": {},
}

func SupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}
