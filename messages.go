package main

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// User-facing outcome messages are localized. The teams this tool was built
// for run pipelines in Brazilian Portuguese environments, so the catalog
// carries pt-BR alongside the English defaults.
var supportedLanguages = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.BrazilianPortuguese,
}

func init() {
	for _, s := range []struct{ key, ptBR string }{
		{"File downloaded successfully: %s", "Arquivo baixado com sucesso: %s"},
		{"File not found.", "Arquivo não encontrado."},
		{"Folder not found.", "Pasta não encontrada."},
	} {
		_ = message.SetString(language.English, s.key, s.key)
		_ = message.SetString(language.BrazilianPortuguese, s.key, s.ptBR)
	}
}

// newPrinter returns a message printer for the user's locale.
func newPrinter() *message.Printer {
	return message.NewPrinter(matchLanguage(localePreferences()))
}

// localePreferences reads the locale from the environment, most specific
// variable first. SPFETCH_LANG allows overriding just this tool.
func localePreferences() []string {
	var prefs []string

	for _, env := range []string{"SPFETCH_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			prefs = append(prefs, normalizeLocale(v))
		}
	}

	return prefs
}

// normalizeLocale converts a POSIX locale like "pt_BR.UTF-8" into a BCP 47
// tag like "pt-BR".
func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	return strings.ReplaceAll(locale, "_", "-")
}

// matchLanguage picks the best supported language for the preferences,
// falling back to English. The returned tag is always one of the catalog's
// own tags — MatchStrings may synthesize a more specific one, so we index
// into supportedLanguages instead of using the matched tag directly.
func matchLanguage(prefs []string) language.Tag {
	matcher := language.NewMatcher(supportedLanguages)
	_, index := language.MatchStrings(matcher, prefs...)

	return supportedLanguages[index]
}
