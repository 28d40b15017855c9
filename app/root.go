// Package app implements the main application commands.
package app

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
)

var (
	configPath string // directory of main.toml
	envFile    string // optional dotenv file

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "madrasa-site",
		Short: "madrasa-site serves the content API of the madrasa website",
		Long: `madrasa-site serves the public content of the madrasa website
(hero, about, branding, notices, gallery and hero slides) and the admin API to edit it.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory of "+config.FileName)
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config, missing is fine")
}

// loadConfig reads the dotenv file and the configuration into cfg.
func loadConfig() error {
	if envFile != "" {
		// variables that are already set win over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var err error

	cfg, err = config.ReadConfig(configPath)

	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
