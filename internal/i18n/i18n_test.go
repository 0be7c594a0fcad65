package i18n

import (
	"reflect"
	"testing"
)

func TestLoadAndLookup(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := b.T("en", "nav.dashboard"); got != "Dashboard" {
		t.Errorf("T(en, nav.dashboard) = %q", got)
	}
	if got := b.T("el", "nav.dashboard"); got != "Πίνακας ελέγχου" {
		t.Errorf("T(el, nav.dashboard) = %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Unknown locale falls back to English.
	if got := b.T("fr", "form.save"); got != "Save" {
		t.Errorf("T(fr, form.save) = %q, want English fallback", got)
	}
	// Unknown key falls back to the key itself.
	if got := b.T("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("T(en, no.such.key) = %q, want the key", got)
	}
}

func TestLocales(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := b.Locales()
	want := []string{"el", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Locales() = %v, want %v", got, want)
	}
	// Sorted output keeps the selector order stable across renders.
	if again := b.Locales(); !reflect.DeepEqual(again, got) {
		t.Errorf("Locales() unstable: %v then %v", got, again)
	}
}
