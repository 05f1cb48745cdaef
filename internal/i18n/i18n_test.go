package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLocaleContext(t *testing.T, acceptLanguage string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocaleDefaultsToUz(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "uz"},
		{"unsupported locale", "fr", "uz"},
		{"supported locale", "ru", "ru"},
		{"region suffix", "en-US", "en"},
		{"quality list picks first supported", "fr-FR;q=0.9, ru;q=0.8", "ru"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newLocaleContext(t, tc.header)
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("ResolveLocale(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	if got := T("fr", "error.not_found"); got != messages[DefaultLocale]["error.not_found"] {
		t.Fatalf("unexpected fallback message: %q", got)
	}
	if got := T("ru", "error.not_found"); got != messages["ru"]["error.not_found"] {
		t.Fatalf("unexpected ru message: %q", got)
	}
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key should echo the key, got %q", got)
	}
}

func TestConfigureRestrictsSupportedSet(t *testing.T) {
	t.Cleanup(func() { Configure(nil) })

	Configure([]string{"uz", "ru"})
	if IsSupported("en") {
		t.Fatalf("en should not be supported after Configure")
	}
	if !IsSupported("RU") {
		t.Fatalf("locale match should be case-insensitive")
	}
}
