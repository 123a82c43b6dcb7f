package platform

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Environment variables consulted for the system locale, in priority order
var LocaleEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// SystemLocale returns the first locale found in the environment as a BCP 47
// tag, or language.Und when none is set.
func SystemLocale() language.Tag {
	return localeFromEnv(os.Getenv)
}

func localeFromEnv(getenv func(string) string) language.Tag {
	for _, key := range LocaleEnvVars {
		value := getenv(key)
		if value == "" {
			continue
		}
		// LANGUAGE may hold a colon separated list
		value = strings.Split(value, ":")[0]
		if tag, ok := parsePOSIXLocale(value); ok {
			return tag
		}
	}
	return language.Und
}

// parsePOSIXLocale turns "pt_BR.UTF-8@euro" into pt-BR
func parsePOSIXLocale(s string) (language.Tag, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// MatchLanguage picks the supported language code closest to preferred.
// supported[0] is the fallback when nothing matches.
func MatchLanguage(preferred language.Tag, supported []string) string {
	if len(supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, len(supported))
	for i, code := range supported {
		tags[i] = language.Make(code)
	}
	matcher := language.NewMatcher(tags)

	_, idx, conf := matcher.Match(preferred)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// DetectLanguage matches the system locale against supported codes
func DetectLanguage(supported []string) string {
	return MatchLanguage(SystemLocale(), supported)
}
