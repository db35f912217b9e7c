package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/qrcode"
)

var Version = "dev"

type options struct {
	key    string
	amount string
	name   string
	city   string
	png    string
	size   int
	crc    bool
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("pixgen failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pixgen",
		Short: "Generate a static PIX BR Code (Pix Copia e Cola)",
		Long: `Generate a static PIX BR Code payload for a PIX key.

Examples:
  pixgen --key fulano@example.com --amount 150.00 --name "João da Silva" --city "São Paulo"
  pixgen --key 11144477735 --png cobranca.png --size 512`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "PIX key (e-mail, CPF, CNPJ, phone or random key)")
	cmd.Flags().StringVarP(&opts.amount, "amount", "a", "", "amount in reais, e.g. 150.00; omit to let the payer choose")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "merchant name")
	cmd.Flags().StringVarP(&opts.city, "city", "c", "", "merchant city")
	cmd.Flags().StringVar(&opts.png, "png", "", "also write the QR code to this PNG file")
	cmd.Flags().IntVar(&opts.size, "size", qrcode.DefaultSize, "QR code size in pixels")
	cmd.Flags().BoolVar(&opts.crc, "crc", false, "print the key kind and CRC after the payload")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	p, err := brcode.NewGenerator("", "").Build(brcode.Request{
		Key:          opts.key,
		Amount:       opts.amount,
		MerchantName: opts.name,
		MerchantCity: opts.city,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, p.Text)
	if opts.crc {
		fmt.Fprintf(out, "key kind: %s\ncrc: %s\n", p.Key.Kind, p.CRC)
	}

	if opts.png != "" {
		img, err := qrcode.NewRenderer(opts.size).PNG(p.Text, 0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.png, img, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.png, err)
		}
	}
	return nil
}
