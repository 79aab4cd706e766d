package i18nstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/louisbranch/materials/internal/material"
	"github.com/louisbranch/materials/internal/material/audit"
	apperrors "github.com/louisbranch/materials/internal/platform/errors"
	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
	i18ncatalog "github.com/louisbranch/materials/internal/platform/i18n/catalog"
)

const tracerName = "github.com/louisbranch/materials/internal/tools/i18nstatus"

// Run audits the material table and writes the JSON and Markdown reports.
// In strict mode a positive deficit is returned as a TRANSLATION_MISSING error
// after both reports are written.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	return run(ctx, cfg, material.All(), out, logger)
}

func run(ctx context.Context, cfg Config, materials []*material.Material, out io.Writer, logger *zap.Logger) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tag, err := resolveLanguage(cfg.Lang)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "i18nstatus.audit",
		trace.WithAttributes(attribute.String("report.lang", tag.String())),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		span.End()
	}()

	rep := audit.Run(materials)
	span.SetAttributes(
		attribute.Int("materials.count", len(rep.Materials)),
		attribute.Int("translations.missing", rep.Missing),
	)

	for _, line := range rep.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := writeJSON(cfg.JSONOut, rep); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	if err := writeMarkdown(cfg.MarkdownOut, rep, tag); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	logger.Info("wrote i18n status",
		zap.String("markdown", cfg.MarkdownOut),
		zap.String("json", cfg.JSONOut),
		zap.Int("materials", len(rep.Materials)),
		zap.Int("missing", rep.Missing),
	)
	if _, err := fmt.Fprintf(out, "wrote %s and %s\n", cfg.MarkdownOut, cfg.JSONOut); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if rep.OK() {
		return nil
	}
	logger.Warn("untranslated materials", zap.Strings("materials", rep.Deficient()))
	if cfg.Strict {
		return rep.Err()
	}
	return nil
}

func resolveLanguage(value string) (language.Tag, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return platformi18n.DefaultTag(), nil
	}
	tag, ok := platformi18n.ParseTag(value)
	if !ok {
		return language.Und, apperrors.WithMetadata(
			apperrors.CodeUnsupportedLanguage,
			fmt.Sprintf("unsupported language %q", value),
			map[string]string{"Language": value},
		)
	}
	return tag, nil
}

func writeJSON(path string, rep audit.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeMarkdown(path string, rep audit.Report, tag language.Tag) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(renderMarkdown(rep, tag)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderMarkdown(rep audit.Report, tag language.Tag) string {
	h := headings{bundle: i18ncatalog.Default(), locale: tag.String()}
	p := platformi18n.Printer(tag)

	var b strings.Builder
	b.WriteString("# " + h.text("report.title") + "\n\n")
	b.WriteString(h.text("report.generated") + "\n\n")

	languages := make([]string, 0, len(rep.Languages))
	for _, locale := range rep.Languages {
		languages = append(languages, "`"+locale+"`")
	}
	b.WriteString(h.text("report.languages") + ": " + strings.Join(languages, ", ") + ".\n\n")
	b.WriteString(h.text("report.missing_total") + ": " + p.Sprintf("%d", rep.Missing) + ".\n\n")

	b.WriteString("## " + h.text("report.language_summary") + "\n\n")
	b.WriteString(tableRow(
		h.text("report.col_language"),
		h.text("report.col_materials"),
		h.text("report.col_translated"),
		h.text("report.col_missing"),
		h.text("report.col_completion"),
	))
	b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		b.WriteString(tableRow(
			"`"+locale.Locale+"`",
			p.Sprintf("%d", locale.Materials),
			p.Sprintf("%d", locale.Translated),
			p.Sprintf("%d", locale.Missing),
			p.Sprintf("%.1f", locale.Completion)+"%",
		))
	}

	b.WriteString("\n## " + h.text("report.material_status") + "\n\n")
	header := []string{h.text("report.col_material")}
	align := []string{"---"}
	for _, locale := range rep.Languages {
		header = append(header, languageLabel(locale))
		align = append(align, "---")
	}
	header = append(header, h.text("report.col_progress"))
	align = append(align, ":---:")
	b.WriteString(tableRow(header...))
	b.WriteString(tableRow(align...))
	for _, status := range rep.Materials {
		row := []string{"`" + status.Key + "`"}
		for _, name := range status.Names {
			row = append(row, escapeCell(name.Name))
		}
		row = append(row, fmt.Sprintf("%d/%d %s", status.Progress, status.Total, status.Mark()))
		b.WriteString(tableRow(row...))
	}

	if rep.Missing > 0 {
		b.WriteString("\n## " + h.text("report.untranslated") + "\n")
		for _, locale := range rep.Locales {
			if len(locale.MissingKeys) == 0 {
				continue
			}
			b.WriteString("\n### `" + locale.Locale + "`\n\n")
			for _, key := range locale.MissingKeys {
				b.WriteString("- `" + key + "`\n")
			}
		}
	}
	return b.String()
}

// headings looks up report text in the "report" catalog namespace.
type headings struct {
	bundle *i18ncatalog.Bundle
	locale string
}

// text returns the heading for key, falling back to the key itself.
func (h headings) text(key string) string {
	if text, ok := h.bundle.Message(h.locale, key); ok {
		return text
	}
	return key
}

func languageLabel(locale string) string {
	if tag, ok := platformi18n.ParseTag(locale); ok {
		return platformi18n.Code(tag)
	}
	return strings.ToUpper(locale)
}

func tableRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
