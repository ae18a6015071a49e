package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jRubio4/EW-Payload-Plotter/pkg/ewpayload"
)

func newBatchCmd() *cobra.Command {
	var flags decodeFlags
	cmd := &cobra.Command{
		Use:   "batch <logfile>",
		Short: "Decode every uplink in a gateway log",
		Long: "batch scans a gateway log for \"Byte string (hex):\" lines, decodes each " +
			"uplink and prints the extracted series.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, opts, err := resolveProduct(flags.product, flags.subtype)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer f.Close()

			batch, err := ewpayload.DecodeLog(cmd.Context(), f, product, opts)
			if err != nil {
				return err
			}
			for _, failure := range batch.Failures {
				log.WithField("line", failure.Line).Warn(failure.Error)
			}
			log.WithFields(logrus.Fields{
				"decoded": len(batch.Entries),
				"failed":  len(batch.Failures),
				"skipped": batch.Skipped,
			}).Info("log decoded")
			return writeBatch(cmd.OutOrStdout(), batch, flags.output)
		},
	}
	cmd.Flags().StringVarP(&flags.product, "product", "p", "", "waterrat, analog, sdi12 or peoplecounter (default decode.product)")
	cmd.Flags().StringVar(&flags.subtype, "subtype", "", "analog subtype: EFS, WLM or RG (default decode.analogSubtype)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "json", "output format: json, yaml or csv")
	return cmd
}
