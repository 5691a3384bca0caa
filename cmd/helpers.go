package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/export"
	"github.com/marketscout/compete-cli/internal/model"
	"github.com/marketscout/compete-cli/internal/registry"
)

// openRegistry constructs the configured registry driver and runs its
// migration. Callers own Close.
func openRegistry(ctx context.Context) (registry.Registry, error) {
	var (
		reg registry.Registry
		err error
	)
	switch cfg.Registry.Driver {
	case "", "file":
		reg = registry.NewFile(cfg.Registry.Path)
	case "sqlite":
		reg, err = registry.NewSQLite(cfg.Registry.Path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, eris.Errorf("unknown registry driver %q (want file or sqlite)", cfg.Registry.Driver)
	}

	if err := reg.Migrate(ctx); err != nil {
		reg.Close()
		return nil, err
	}
	return reg, nil
}

func exportResult(result *model.AnalysisResult, path, format string) error {
	switch format {
	case "json":
		return export.WriteJSON(result, path)
	case "csv":
		return export.WriteCSV(result, path)
	}
	return eris.Errorf("unknown output format %q (want json or csv)", format)
}
