// Package audit checks that every material has a display name in every
// supported language.
package audit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/louisbranch/materials/internal/material"
	apperrors "github.com/louisbranch/materials/internal/platform/errors"
	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
)

const (
	markComplete   = "✔"
	markIncomplete = "🔥"
)

// Report is the result of one audit pass.
type Report struct {
	Languages []string         `json:"languages"`
	Total     int              `json:"total_languages"`
	Missing   int              `json:"missing"`
	Materials []MaterialStatus `json:"materials"`
	Locales   []LocaleStatus   `json:"locales"`
}

// MaterialStatus is the translation state of one material.
type MaterialStatus struct {
	Key      string          `json:"key"`
	Names    []LocalizedName `json:"names"`
	Progress int             `json:"progress"`
	Total    int             `json:"total"`
	Missing  int             `json:"missing"`
	Complete bool            `json:"complete"`
}

// Mark returns ✔ for a fully translated material and 🔥 otherwise.
func (s MaterialStatus) Mark() string {
	if s.Complete {
		return markComplete
	}
	return markIncomplete
}

// LocalizedName is one language column of a material row. Name is blank
// when untranslated.
type LocalizedName struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// LocaleStatus summarizes one language across all materials.
type LocaleStatus struct {
	Locale      string   `json:"locale"`
	Materials   int      `json:"materials"`
	Translated  int      `json:"translated"`
	Missing     int      `json:"missing"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
}

// Run audits materials in the order given. It only reads the materials.
func Run(materials []*material.Material) Report {
	tags := platformi18n.SupportedTags()
	total := len(tags)

	rep := Report{
		Languages: make([]string, 0, total),
		Total:     total,
		Materials: make([]MaterialStatus, 0, len(materials)),
		Locales:   make([]LocaleStatus, 0, total),
	}
	for _, tag := range tags {
		rep.Languages = append(rep.Languages, tag.String())
		rep.Locales = append(rep.Locales, LocaleStatus{
			Locale:      tag.String(),
			Materials:   len(materials),
			MissingKeys: []string{},
		})
	}

	for _, m := range materials {
		status := MaterialStatus{
			Key:      m.Key(),
			Names:    make([]LocalizedName, 0, total),
			Progress: m.TranslationProgress(),
			Total:    total,
		}
		for i, tag := range tags {
			name := m.Name(tag)
			status.Names = append(status.Names, LocalizedName{Language: tag.String(), Name: name})
			if name == "" {
				rep.Locales[i].MissingKeys = append(rep.Locales[i].MissingKeys, m.Key())
			} else {
				rep.Locales[i].Translated++
			}
		}
		if status.Progress < total {
			status.Missing = total - status.Progress
			rep.Missing += status.Missing
		}
		status.Complete = status.Missing == 0
		rep.Materials = append(rep.Materials, status)
	}

	for i := range rep.Locales {
		locale := &rep.Locales[i]
		locale.Missing = len(locale.MissingKeys)
		locale.Completion = percent(locale.Translated, locale.Materials)
	}
	return rep
}

// OK reports whether every material is fully translated.
func (r Report) OK() bool {
	return r.Missing == 0
}

// Deficient returns the keys of materials missing at least one translation.
func (r Report) Deficient() []string {
	out := make([]string, 0)
	for _, status := range r.Materials {
		if !status.Complete {
			out = append(out, status.Key)
		}
	}
	return out
}

// Err returns nil when the audit passed, and a TRANSLATION_MISSING error
// carrying the deficit and the deficient materials otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	keys := strings.Join(r.Deficient(), ", ")
	return apperrors.WithMetadata(
		apperrors.CodeTranslationMissing,
		fmt.Sprintf("need %d translation(s) for: %s", r.Missing, keys),
		map[string]string{
			"Missing":   strconv.Itoa(r.Missing),
			"Materials": keys,
		},
	)
}

// Lines renders one line per material:
//
//	RU:Базальт, EN:Basalt, progress: 2/2 ✔
func (r Report) Lines() []string {
	out := make([]string, 0, len(r.Materials))
	for _, status := range r.Materials {
		var b strings.Builder
		for _, name := range status.Names {
			b.WriteString(languageCode(name.Language))
			b.WriteString(":")
			b.WriteString(name.Name)
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "progress: %d/%d %s", status.Progress, status.Total, status.Mark())
		out = append(out, b.String())
	}
	return out
}

func languageCode(locale string) string {
	if tag, ok := platformi18n.ParseTag(locale); ok {
		return platformi18n.Code(tag)
	}
	return strings.ToUpper(locale)
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
