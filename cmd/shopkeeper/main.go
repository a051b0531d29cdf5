package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/cmd/shopkeeper/cli"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/app"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/inventory"
	"github.com/Sadikshya-Karki/Beauty-and-Skin-Care-Software/internal/invoice"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env", slog.Any("error", err))
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg, os.Stderr)

	store := inventory.NewFileStore(cfg.CatalogPath)
	session := cli.NewSession(cli.Options{
		Catalog:     inventory.NewCatalog(store, logger),
		CatalogPath: store.Path(),
		Invoices:    invoice.NewWriter(cfg.InvoiceDir, logger),
		Logger:      logger,
	})
	os.Exit(session.Run(context.Background()))
}
