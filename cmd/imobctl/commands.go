package main

import (
	"fmt"
	"time"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/config"
	"imobiliaria-backend/internal/database"
	"imobiliaria-backend/internal/logger"
	"imobiliaria-backend/internal/seed"
	"imobiliaria-backend/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// connect opens the configured database without migrating it
func connect(cfg *config.Config) (*gorm.DB, error) {
	return database.Connect(database.OptionsFromConfig(cfg), &database.Options{
		LogLevel:    gormlogger.Silent,
		SkipMigrate: true,
	})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)
	return cfg, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data from YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			files, err := seed.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("failed to read seed files: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}

			stats, err := seed.NewLoader(db, service.NewValidator()).Load(cmd.Context(), files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range []struct {
				name   string
				counts seed.Counts
			}{
				{"companies", stats.Companies},
				{"landlords", stats.Landlords},
				{"tenants", stats.Tenants},
				{"properties", stats.Properties},
				{"contracts", stats.Contracts},
				{"settlements", stats.Settlements},
			} {
				fmt.Fprintf(out, "%-12s %4d created %4d skipped\n", row.name, row.counts.Created, row.counts.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().String("dir", "data/seed", "Directory with seed YAML files")

	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetUint("user-id")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			companyID, _ := cmd.Flags().GetUint("company-id")
			allCompanies, _ := cmd.Flags().GetBool("all-companies")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			identity := auth.Identity{
				UserID:          userID,
				Email:           email,
				Name:            name,
				SeeAllCompanies: allCompanies,
			}
			if cmd.Flags().Changed("company-id") {
				identity.CompanyID = &companyID
			}

			token, err := auth.NewAuthService(cfg.JWTSecret, cfg.DefaultCompanyID).GenerateJWT(identity, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Uint("user-id", 1, "User id (sub claim)")
	cmd.Flags().String("email", "", "User email")
	cmd.Flags().String("name", "", "User display name")
	cmd.Flags().Uint("company-id", 0, "Company the caller belongs to; the default company when omitted")
	cmd.Flags().Bool("all-companies", false, "Grant read access to every company")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")

	return cmd
}
