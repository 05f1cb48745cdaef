package models

import "testing"

func TestLocalizedNameFallsBackToRawColumn(t *testing.T) {
	group := AttributeGroup{
		Name: "Appearance",
		Translations: []AttributeGroupTranslation{
			{Locale: "uz", Name: "Ko'rinish"},
			{Locale: "ru", Name: "Внешний вид"},
		},
	}

	if got := group.LocalizedName("ru"); got != "Внешний вид" {
		t.Fatalf("ru want translated name got %q", got)
	}
	// No row for the locale: the raw column wins, never an error.
	if got := group.LocalizedName("fr"); got != "Appearance" {
		t.Fatalf("unknown locale want raw name got %q", got)
	}
	if group.TranslationFor("fr") != nil {
		t.Fatalf("missing locale must resolve to nil translation")
	}
}

func TestLocalizedNameSkipsEmptyTranslation(t *testing.T) {
	group := AttributeGroup{
		Name: "Dimensions",
		Translations: []AttributeGroupTranslation{
			{Locale: "en", Name: ""},
		},
	}
	if got := group.LocalizedName("en"); got != "Dimensions" {
		t.Fatalf("empty translation want raw name got %q", got)
	}
}
