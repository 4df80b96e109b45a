package cmd

import (
	"fmt"
	"os"

	"github.com/JustinArce/MicroservicioAlmacen/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "inventory",
	Short:         "Product inventory HTTP service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.SetDefaults(viper.GetViper())
	viper.AutomaticEnv()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
