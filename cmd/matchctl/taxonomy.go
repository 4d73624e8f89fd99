package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/storage/db"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/shared/util"
)

func newTaxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect and distribute the skill taxonomy",
	}
	cmd.AddCommand(newTaxonomyExportCmd(), newTaxonomyPublishCmd(), newTaxonomySeedCmd())
	return cmd
}

func newTaxonomyExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active taxonomy as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			data, err := app.Taxonomy.EncodeYAML()
			if err != nil {
				return fmt.Errorf("failed to encode taxonomy: %w", err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to stdout)")
	return cmd
}

func newTaxonomyPublishCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Validate a YAML taxonomy and upload it to the object store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			tax, err := taxonomy.ParseYAML(data)
			if err != nil {
				return err
			}

			cfg := config.Load()
			key, err := util.CleanKey(cfg.TaxonomyKey)
			if err != nil {
				return fmt.Errorf("TAXONOMY_KEY: %w", err)
			}
			store, err := bootstrap.BuildStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if _, err := store.SaveWithKey(cmd.Context(), key, "application/yaml", bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to upload taxonomy: %w", err)
			}
			telemetry.Info("taxonomy.published", map[string]any{
				"key":      key,
				"checksum": tax.Checksum(),
				"terms":    tax.Len(),
			})
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the YAML taxonomy (required)")
	mustMarkRequired(cmd, "file")
	return cmd
}

func newTaxonomySeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the Postgres taxonomy tables with the active taxonomy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			err = db.With(cmd.Context(), app.Config.DatabaseURL, db.DefaultOptions(), func(ctx context.Context, sqlDB *sql.DB) error {
				if err := db.RunMigrations(ctx, sqlDB); err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
				return taxonomy.SeedPG(ctx, sqlDB, app.Taxonomy)
			})
			if err != nil {
				return err
			}
			telemetry.Info("taxonomy.seeded", map[string]any{
				"source":   app.TaxonomySource,
				"checksum": app.Taxonomy.Checksum(),
				"terms":    app.Taxonomy.Len(),
			})
			return nil
		},
	}
}
