package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"olive-mill/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	_ "github.com/joho/godotenv/autoload"
)

// migrate brings the database in line with migrations/schema.sql using the
// atlas CLI in declarative mode.
func main() {
	schemaFile := flag.String("schema", "file://migrations/schema.sql", "desired schema")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "dev database used by atlas to compute the diff")
	dryRun := flag.Bool("dry-run", false, "print planned changes without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          *schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
