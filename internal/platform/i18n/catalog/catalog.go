// Package catalog loads the embedded message catalogs used for localized
// error text and report headings.
//
// Catalogs live at locales/<locale>/<namespace>.yaml. Every locale must be a
// supported language, and English is the base every lookup falls back to.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

const catalogGlob = "locales/*/*.yaml"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoad(embeddedFS)

// catalogFile is one decoded locales/<locale>/<namespace>.yaml document.
type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// localeMessages holds one locale's messages, flat and by namespace. Keys are
// unique across the namespaces of a locale.
type localeMessages struct {
	flat        map[string]string
	byNamespace map[string]map[string]string
}

// Bundle is a validated, read-only set of locale catalogs.
type Bundle struct {
	locales map[string]*localeMessages
}

// Default returns the bundle compiled into the binary.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded decodes the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS decodes every locales/<locale>/<namespace>.yaml in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalogs match %s", catalogGlob)
	}

	b := &Bundle{locales: make(map[string]*localeMessages)}
	for _, name := range paths {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		file, err := decodeCatalog(name, data)
		if err != nil {
			return nil, err
		}
		if err := b.add(name, file); err != nil {
			return nil, err
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	return b, nil
}

// HasLocale reports whether the bundle has a catalog for exactly locale.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[locale]
	return ok
}

// Resolve maps a requested locale to the bundle locale that serves it.
// Case and regional variants reach their supported language ("RU", "ru-RU"
// give "ru"); anything unsupported or blank gives BaseLocale.
func (b *Bundle) Resolve(locale string) string {
	tag, ok := platformi18n.ParseTag(locale)
	if !ok || !b.HasLocale(tag.String()) {
		return BaseLocale
	}
	return tag.String()
}

// Message returns the text for key in locale, or in BaseLocale when the
// locale has no such key.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if text, ok := b.locales[b.Resolve(locale)].flat[key]; ok {
		return text, true
	}
	text, ok := b.locales[BaseLocale].flat[key]
	return text, ok
}

// NamespaceMessages returns a copy of the namespace's messages for locale,
// with any key the locale lacks taken from BaseLocale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := make(map[string]string)
	if b == nil {
		return out
	}
	namespace = strings.TrimSpace(namespace)
	for key, text := range b.locales[BaseLocale].byNamespace[namespace] {
		out[key] = text
	}
	resolved := b.Resolve(locale)
	if resolved == BaseLocale {
		return out
	}
	for key, text := range b.locales[resolved].byNamespace[namespace] {
		out[key] = text
	}
	return out
}

func (b *Bundle) add(name string, file catalogFile) error {
	messages, ok := b.locales[file.Locale]
	if !ok {
		messages = &localeMessages{
			flat:        make(map[string]string),
			byNamespace: make(map[string]map[string]string),
		}
		b.locales[file.Locale] = messages
	}

	namespace := make(map[string]string, len(file.Messages))
	for rawKey, text := range file.Messages {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", name)
		}
		if _, dup := messages.flat[key]; dup {
			return fmt.Errorf("catalog %s: key %q already defined for %s", name, key, file.Locale)
		}
		messages.flat[key] = text
		namespace[key] = text
	}
	messages.byNamespace[file.Namespace] = namespace
	return nil
}

// decodeCatalog parses one catalog file and checks it against its path.
func decodeCatalog(name string, data []byte) (catalogFile, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return catalogFile{}, fmt.Errorf("catalog %s: decode yaml: %w", name, err)
	}
	file.Locale = strings.TrimSpace(file.Locale)
	file.Namespace = strings.TrimSpace(file.Namespace)

	dir, base := path.Split(name)
	wantLocale := path.Base(dir)
	wantNamespace := strings.TrimSuffix(base, path.Ext(base))
	switch {
	case file.Locale != wantLocale:
		return catalogFile{}, fmt.Errorf("catalog %s: locale %q does not match directory %q", name, file.Locale, wantLocale)
	case file.Namespace != wantNamespace:
		return catalogFile{}, fmt.Errorf("catalog %s: namespace %q does not match file name %q", name, file.Namespace, wantNamespace)
	case len(file.Messages) == 0:
		return catalogFile{}, fmt.Errorf("catalog %s: no messages", name)
	}
	if tag, ok := platformi18n.ParseTag(file.Locale); !ok || tag.String() != file.Locale {
		return catalogFile{}, fmt.Errorf("catalog %s: %q is not a supported language", name, file.Locale)
	}
	return file, nil
}

func mustLoad(fsys fs.FS) *Bundle {
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		panic(err)
	}
	return bundle
}
