package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jRubio4/EW-Payload-Plotter/pkg/ewpayload"
)

type decodeFlags struct {
	product string
	subtype string
	output  string
}

func newDecodeCmd() *cobra.Command {
	var flags decodeFlags
	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode a single uplink frame",
		Long: "decode prints the fields of one hex-encoded uplink. Without an argument it " +
			"reads frames from stdin, one per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, opts, err := resolveProduct(flags.product, flags.subtype)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runInteractive(cmd.Context(), cmd.OutOrStdout(), product, opts, flags.output)
			}
			return runDecode(cmd.Context(), cmd.OutOrStdout(), product, opts, flags.output, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.product, "product", "p", "", "waterrat, analog, sdi12 or peoplecounter (default decode.product)")
	cmd.Flags().StringVar(&flags.subtype, "subtype", "", "analog subtype: EFS, WLM or RG (default decode.analogSubtype)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

// resolveProduct falls back to the configured defaults for empty flags.
func resolveProduct(product, subtype string) (ewpayload.Product, ewpayload.DecodeOptions, error) {
	if product == "" {
		product = cfg.Decode.Product
	}
	if subtype == "" {
		subtype = cfg.Decode.AnalogSubtype
	}
	p, err := ewpayload.ParseProduct(product)
	if err != nil {
		return "", ewpayload.DecodeOptions{}, err
	}
	return p, ewpayload.DecodeOptions{AnalogSubtype: subtype}, nil
}

func runInteractive(ctx context.Context, w io.Writer, p ewpayload.Product, opts ewpayload.DecodeOptions, output string) error {
	scanner := bufio.NewScanner(os.Stdin)
	log.Infof("ewpayload %s decode mode. Paste a hex frame and press Enter (Ctrl+D to exit).", p)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, w, p, opts, output, line); err != nil {
			log.WithError(err).Error("failed to decode frame")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, w io.Writer, p ewpayload.Product, opts ewpayload.DecodeOptions, output, hex string) error {
	result, err := ewpayload.Decode(ctx, hex, p, opts)
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		log.WithField("product", p).Warn(warning)
	}
	return writeResult(w, result, output)
}
