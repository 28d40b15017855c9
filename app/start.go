package app

import (
	"github.com/spf13/cobra"

	"github.com/mohozompur-madrasa/madrasa-site/internal/daemon"
	"github.com/mohozompur-madrasa/madrasa-site/internal/logger"
	"github.com/mohozompur-madrasa/madrasa-site/internal/web"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")
	startCmd.Flags().BoolVar(
		&fastShutdown,
		"fast-shutdown",
		false,
		"Stop at once on SIGTERM instead of failing /checkalive for webserver.shutdowntime seconds",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	fastShutdown bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the madrasa-site web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if err := loadConfig(); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg, web.WithFastShutdown(fastShutdown))
			if err != nil {
				return err
			}

			go func() {
				_ = d.Start() // listen failures are fatal inside Start
			}()

			d.WaitShutdown()

			return nil
		},
	}
)
