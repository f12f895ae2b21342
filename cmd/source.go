package cmd

import (
	"log/slog"

	"horas/config"
	"horas/importer"
)

func importOptions(cfg *config.Config, logger *slog.Logger) importer.Options {
	return importer.Options{
		Format:      cfg.Data.Format,
		Delimiter:   cfg.Data.DelimiterRune(),
		SQLiteTable: cfg.Data.SQLiteTable,
		Logger:      logger,
	}
}
