// Package i18nstatus renders translator-friendly material name status
// artifacts and fails the build when a translation is missing.
package i18nstatus

import (
	"errors"
	"flag"
	"strings"

	"github.com/louisbranch/materials/internal/platform/cmd"
)

const (
	defaultMarkdownOut = "docs/reference/i18n-status.md"
	defaultJSONOut     = "docs/reference/i18n-status.json"
	defaultLang        = "en"
)

// Config holds configuration for the status tool.
type Config struct {
	MarkdownOut string `env:"MATERIALS_I18N_STATUS_OUT" envDefault:"docs/reference/i18n-status.md"`
	JSONOut     string `env:"MATERIALS_I18N_STATUS_JSON_OUT" envDefault:"docs/reference/i18n-status.json"`
	Strict      bool   `env:"MATERIALS_I18N_STATUS_STRICT"`
	Lang        string `env:"MATERIALS_I18N_STATUS_LANG" envDefault:"en"`
}

// ParseConfig reads env defaults and then CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	cfg := Config{}
	fs.StringVar(&cfg.MarkdownOut, "out", defaultMarkdownOut, "markdown output path")
	fs.StringVar(&cfg.JSONOut, "json-out", defaultJSONOut, "json output path")
	fs.BoolVar(&cfg.Strict, "strict", false, "fail when any material name is untranslated")
	fs.StringVar(&cfg.Lang, "lang", defaultLang, "language for report headings and numbers")
	if err := cmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.MarkdownOut) == "" {
		return Config{}, errors.New("out is required")
	}
	if strings.TrimSpace(cfg.JSONOut) == "" {
		return Config{}, errors.New("json-out is required")
	}
	return cfg, nil
}
