package platform

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParsePOSIXLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"ru_RU.UTF-8", "ru-RU", true},
		{"pt_BR", "pt-BR", true},
		{"en_US.UTF-8@euro", "en-US", true},
		{"de", "de", true},
		{"C", "und", false},
		{"POSIX", "und", false},
		{"", "und", false},
		{"!!", "und", false},
	}

	for _, test := range tests {
		tag, ok := parsePOSIXLocale(test.input)
		if ok != test.ok || tag.String() != test.expected {
			t.Errorf("parsePOSIXLocale(%q) = %s, %v, expected %s, %v", test.input, tag, ok, test.expected, test.ok)
		}
	}
}

func TestLocaleFromEnv(t *testing.T) {
	env := map[string]string{
		"LANG":     "pt_BR.UTF-8",
		"LANGUAGE": "ru:en",
	}
	tag := localeFromEnv(func(k string) string { return env[k] })
	if tag.String() != "pt-BR" {
		t.Errorf("Expected LANG to win over LANGUAGE, got %s", tag)
	}

	env = map[string]string{"LC_ALL": "C", "LANGUAGE": "ru:en"}
	tag = localeFromEnv(func(k string) string { return env[k] })
	if tag.String() != "ru" {
		t.Errorf("Expected first LANGUAGE entry, got %s", tag)
	}

	tag = localeFromEnv(func(string) string { return "" })
	if tag != language.Und {
		t.Errorf("Expected und for empty environment, got %s", tag)
	}
}

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "ru", "pt"}

	tests := []struct {
		preferred language.Tag
		expected  string
	}{
		{language.MustParse("ru-RU"), "ru"},
		{language.MustParse("pt-BR"), "pt"},
		{language.MustParse("en-GB"), "en"},
		{language.MustParse("ja"), "en"},
		{language.Und, "en"},
	}

	for _, test := range tests {
		if result := MatchLanguage(test.preferred, supported); result != test.expected {
			t.Errorf("MatchLanguage(%s) = %s, expected %s", test.preferred, result, test.expected)
		}
	}

	if MatchLanguage(language.English, nil) != "" {
		t.Error("Expected empty result without supported languages")
	}
}
