// Command migrate applies migrations/ to the configured database with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lifepass-admin/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(*dir, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(dir string, dryRun bool, logger *slog.Logger) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: dir,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied", "file", f.Name, "version", f.Version)
	}
	logger.Info("migrations up to date", "current", res.Current, "target", res.Target, "dry_run", dryRun)
	return nil
}
