package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale is used when the request carries no known locale.
const DefaultLocale = "uz"

// defaultLocales are the locales every translated entity must cover.
var defaultLocales = []string{"uz", "ru", "en"}

var availableLocales = defaultLocales

// Configure replaces the available locale set. Empty input keeps defaults.
func Configure(locales []string) {
	cleaned := make([]string, 0, len(locales))
	for _, locale := range locales {
		locale = Normalize(locale)
		if locale != "" {
			cleaned = append(cleaned, locale)
		}
	}
	if len(cleaned) == 0 {
		availableLocales = defaultLocales
		return
	}
	availableLocales = cleaned
}

// Locales returns the configured locale set.
func Locales() []string {
	out := make([]string, len(availableLocales))
	copy(out, availableLocales)
	return out
}

// IsSupported reports whether the locale is in the configured set.
func IsSupported(locale string) bool {
	locale = Normalize(locale)
	for _, candidate := range availableLocales {
		if candidate == locale {
			return true
		}
	}
	return false
}

// Normalize lowercases a locale tag and strips region/quality suffixes
// ("uz-UZ;q=0.9" -> "uz").
func Normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(locale, ";,"); idx >= 0 {
		locale = locale[:idx]
	}
	if idx := strings.IndexAny(locale, "-_"); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.TrimSpace(locale)
}

// ResolveLocale picks the request locale from the Accept-Language header,
// falling back to DefaultLocale for unknown or missing values.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		locale := Normalize(part)
		if locale == "" {
			continue
		}
		if IsSupported(locale) {
			return locale
		}
	}
	return DefaultLocale
}

// T returns the message for key in the given locale. Missing translations
// fall back to the default locale, then to the key itself.
func T(locale, key string) string {
	locale = Normalize(locale)
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a parameterized message for the locale.
func Sprintf(locale, key string, args ...interface{}) string {
	msg := T(locale, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
