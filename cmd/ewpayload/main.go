package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jRubio4/EW-Payload-Plotter/internal/config"
	"github.com/jRubio4/EW-Payload-Plotter/internal/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ewpayload",
		Short: "Decode EW telemetry uplinks",
		Long: "ewpayload decodes WaterRat, Analog, SDI-12 and People Counter uplink frames, " +
			"extracts plot series from gateway logs and serves the decoder over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				c.Logging.Level = logLevel
			}
			cfg = c
			log = logging.New(cfg.Logging)
			return nil
		},
	}

	configPath string
	logLevel   string

	cfg *config.Config
	log = logrus.New()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./ewpayload.yaml or ./configs/ewpayload.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.AddCommand(newDecodeCmd(), newBatchCmd(), newServeCmd())
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
