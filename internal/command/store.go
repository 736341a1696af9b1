package command

import (
	"context"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"lingualink/internal/bootstrap"
)

func newInitDBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Initialize the database",
		Long:  `Create any missing tables. Existing data is left untouched, so it is safe to run repeatedly.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWithStore(cmd, func(ctx context.Context, db *gorm.DB) error {
				a.success(cmd, "DatabaseInitialized", nil)
				return nil
			})
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample data",
		Long: `Insert three users, two glossaries, one collaborative session and two
translations. Fails without writing anything if the sample users exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				if err := c.Seeder.Run(ctx); err != nil {
					return err
				}
				a.success(cmd, "DatabaseSeeded", nil)
				return nil
			})
		},
	}
}
