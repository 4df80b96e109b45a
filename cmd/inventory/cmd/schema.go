package cmd

import (
	"context"
	"fmt"

	"github.com/JustinArce/MicroservicioAlmacen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Database schema commands",
}

var schemaInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the products table if it does not exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if err := initializeSchema(cmd.Context(), cfg.DatabaseURL); err != nil {
			return err
		}
		fmt.Println("Schema initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaInitCmd)
}

func initializeSchema(ctx context.Context, databaseURL string) error {
	store, closeStore, err := openStore(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
