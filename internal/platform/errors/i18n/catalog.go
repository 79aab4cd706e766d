// Package i18n renders error messages from the "errors" namespace of the
// embedded message catalogs.
package i18n

import (
	"bytes"
	"sync"
	"text/template"

	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
	i18ncatalog "github.com/louisbranch/materials/internal/platform/i18n/catalog"
)

const namespace = "errors"

// Catalog holds the parsed error templates of one locale.
type Catalog struct {
	locale    string
	texts     map[string]string
	templates map[string]*template.Template
}

var (
	loadOnce sync.Once
	catalogs map[string]*Catalog
)

// GetCatalog returns the catalog serving locale. "RU" and "ru-RU" reach the
// ru catalog; unsupported or blank locales get the base locale.
func GetCatalog(locale string) *Catalog {
	loadOnce.Do(loadCatalogs)
	return catalogs[i18ncatalog.Default().Resolve(locale)]
}

// Locale returns the locale the catalog's texts come from.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the template for code with metadata as its fields. Unknown
// codes render as the code itself. A template that fails to parse or execute
// renders as its raw text. Fields absent from metadata render empty.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	text, ok := c.texts[code]
	if !ok {
		return code
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return text
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return text
	}
	return buf.String()
}

func loadCatalogs() {
	bundle := i18ncatalog.Default()
	catalogs = make(map[string]*Catalog, platformi18n.Count())
	for _, tag := range platformi18n.SupportedTags() {
		locale := bundle.Resolve(tag.String())
		if _, ok := catalogs[locale]; ok {
			continue
		}
		catalogs[locale] = newCatalog(locale, bundle.NamespaceMessages(locale, namespace))
	}
}

func newCatalog(locale string, texts map[string]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		texts:     make(map[string]string, len(texts)),
		templates: make(map[string]*template.Template, len(texts)),
	}
	for code, text := range texts {
		c.texts[code] = text
		tmpl, err := template.New(code).Option("missingkey=zero").Parse(text)
		if err != nil {
			continue
		}
		c.templates[code] = tmpl
	}
	return c
}
