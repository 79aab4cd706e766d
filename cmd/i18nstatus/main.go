// Command i18nstatus writes the material name translation status reports.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/louisbranch/materials/internal/platform/cmd"
	"github.com/louisbranch/materials/internal/platform/config"
	apperrors "github.com/louisbranch/materials/internal/platform/errors"
	platformi18n "github.com/louisbranch/materials/internal/platform/i18n"
	"github.com/louisbranch/materials/internal/tools/i18nstatus"
)

func main() {
	cfg, err := i18nstatus.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		config.Exitf("Error: init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	err = cmd.RunWithTelemetryAndOptions(context.Background(), cmd.ServiceI18nStatus, cmd.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return i18nstatus.Run(ctx, cfg, os.Stdout, logger)
	})
	if err != nil {
		_ = logger.Sync()
		var domainErr *apperrors.Error
		if errors.As(err, &domainErr) {
			locale := cfg.Lang
			if tag, ok := platformi18n.ParseTag(cfg.Lang); ok {
				locale = tag.String()
			}
			config.Exitf("Error: %s", domainErr.Localized(locale))
		}
		config.Exitf("Error: %v", err)
	}
}
