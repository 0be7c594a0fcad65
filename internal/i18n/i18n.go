// Package i18n serves UI strings from embedded YAML catalogs. It is
// deliberately thin: flat key lookup with an English fallback, nothing
// more.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

const fallbackLocale = "en"

// Bundle holds every loaded catalog.
type Bundle struct {
	catalogs map[string]map[string]string
}

// Load parses all embedded catalogs. The filename (minus extension) is
// the locale code.
func Load() (*Bundle, error) {
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	b := &Bundle{catalogs: make(map[string]map[string]string)}
	for _, entry := range entries {
		name := entry.Name()
		locale := strings.TrimSuffix(name, path.Ext(name))
		raw, err := localesFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		catalog := make(map[string]string)
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		b.catalogs[locale] = catalog
	}

	if _, ok := b.catalogs[fallbackLocale]; !ok {
		return nil, fmt.Errorf("fallback catalog %q missing", fallbackLocale)
	}
	return b, nil
}

// Locales lists the available locale codes in sorted order, so UI
// selectors render them the same way on every pass.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.catalogs))
	for locale := range b.catalogs {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// T looks up key in the given locale, falling back to English and
// finally to the key itself so a missing string never blanks the UI.
func (b *Bundle) T(locale, key string) string {
	if catalog, ok := b.catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := b.catalogs[fallbackLocale][key]; ok {
		return msg
	}
	return key
}
