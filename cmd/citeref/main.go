// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citeref CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/citeref/internal/logging"
	"github.com/pdiddy/citeref/internal/metadata"
	"github.com/pdiddy/citeref/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE from the verbose setting.
var logger = zap.NewNop()

// rootCmd is the base command for the citeref CLI.
var rootCmd = &cobra.Command{
	Use:   "citeref",
	Short: "Resolve [id] citation markers and append a References section",
	Long: `citeref reads a manuscript containing inline citation markers such as [knuth74],
resolves each marker against a JSON citation catalog, and appends a
References section listing every cited entry once.

Book entries that carry only an ISBN and webpage entries that carry only a
URL are completed through the metadata service before rendering.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citeref.yaml or ~/.config/citeref/citeref.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log metadata lookups and other debug output to stderr")
	rootCmd.PersistentFlags().String("endpoint", "", "metadata service base URL (default "+metadata.DefaultEndpoint+")")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("metadata.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))

	viper.SetDefault("metadata.endpoint", metadata.DefaultEndpoint)
	viper.SetDefault("metadata.timeout", metadata.DefaultTimeout)
	viper.SetDefault("metadata.user_agent", "citeref/"+version)
	viper.SetDefault("metadata.rate_limit", 0)
}

func initConfig() {
	// A .env file may carry CITEREF_* overrides.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citeref")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citeref"))
		}
	}

	viper.SetEnvPrefix("CITEREF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, &configError{err: fmt.Errorf("decoding configuration: %w", err)}
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
