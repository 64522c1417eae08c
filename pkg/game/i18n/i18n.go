// Package i18n loads the embedded message catalogs into gotext.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested language has no catalog
const DefaultLanguage = "en"

const domain = "default"

//go:embed locale/*.po
var catalogs embed.FS

// Languages lists the embedded catalogs
func Languages() []string {
	entries, _ := fs.Glob(catalogs, "locale/*.po")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(e, "locale/"), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Normalize reduces a locale name such as "de_DE.UTF-8" to its language
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_.-@"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

// Load parses the catalog for lang, falling back to DefaultLanguage
func Load(lang string) (*gotext.Po, string, error) {
	lang = Normalize(lang)
	data, err := catalogs.ReadFile("locale/" + lang + ".po")
	if err != nil {
		lang = DefaultLanguage
		data, err = catalogs.ReadFile("locale/" + lang + ".po")
		if err != nil {
			return nil, "", fmt.Errorf("read catalog %s: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	return po, lang, nil
}

// Init installs the catalog for lang as gotext's global storage and returns
// the language actually loaded
func Init(lang string) (string, error) {
	po, loaded, err := Load(lang)
	if err != nil {
		return "", err
	}

	// The domain goes on the locale itself: gotext.SetDomain would reload
	// the package locales from disk and drop this one.
	locale := gotext.NewLocale("", loaded)
	locale.AddTranslator(domain, po)
	locale.SetDomain(domain)
	gotext.SetStorage(locale)
	return loaded, nil
}
