// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/facturante/secrets/cmd/app/commands"
	"github.com/facturante/secrets/internal/app"
	"github.com/facturante/secrets/internal/config"
)

func main() {
	container := app.NewContainer(config.Load())
	logger := container.Logger()

	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Secret-protection toolbox: opaque ids, credential vault, CBU validation",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "encode-id",
				Usage: "Encode a {type, agency, local-id} triple into an opaque public id",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   "",
						Usage:   "Resource type (booking, quote, receipt, invoice, credit_note, resource, file)",
					},
					&cli.IntFlag{
						Name:    "agency-id",
						Aliases: []string{"a"},
						Value:   0,
						Usage:   "Agency identifier",
					},
					&cli.IntFlag{
						Name:    "local-id",
						Aliases: []string{"i"},
						Value:   0,
						Usage:   "Local resource identifier",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					codec, err := container.PublicIDCodec()
					if err != nil {
						return err
					}
					return commands.RunEncodePublicID(
						codec,
						logger,
						cmd.String("type"),
						int64(cmd.Int("agency-id")),
						int64(cmd.Int("local-id")),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:      "decode-id",
				Usage:     "Decode an opaque public id back into its triple",
				ArgsUsage: "<token>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					codec, err := container.PublicIDCodec()
					if err != nil {
						return err
					}
					return commands.RunDecodePublicID(
						codec,
						logger,
						cmd.Args().First(),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:      "encrypt",
				Usage:     "Encrypt a credential for at-rest storage",
				ArgsUsage: "<plaintext>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "domain",
						Aliases: []string{"d"},
						Value:   "billing-secret",
						Usage:   "Key domain (billing-secret or tax-authority-secret)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					vault, err := container.SecretVault()
					if err != nil {
						return err
					}
					return commands.RunEncrypt(
						ctx,
						vault,
						logger,
						cmd.String("domain"),
						cmd.Args().First(),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:      "decrypt",
				Usage:     "Decrypt a stored credential token",
				ArgsUsage: "<token>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "domain",
						Aliases: []string{"d"},
						Value:   "billing-secret",
						Usage:   "Key domain (billing-secret or tax-authority-secret)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					vault, err := container.SecretVault()
					if err != nil {
						return err
					}
					return commands.RunDecrypt(
						ctx,
						vault,
						logger,
						cmd.String("domain"),
						cmd.Args().First(),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:      "digest",
				Usage:     "Print the deterministic SHA-256 fingerprint of a value",
				ArgsUsage: "<value>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDigest(
						container.HashService(),
						cmd.Args().First(),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:      "validate-cbu",
				Usage:     "Validate a 22-digit CBU bank account code",
				ArgsUsage: "<code>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidateCBU(cmd.Args().First(), commands.DefaultIO())
				},
			},
			{
				Name:  "generate-cbu",
				Usage: "Generate a random checksum-valid CBU fixture",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateCBU(commands.DefaultIO())
				},
			},
			{
				Name:  "metrics-server",
				Usage: "Serve the Prometheus /metrics endpoint",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					provider, err := container.MetricsProvider()
					if err != nil {
						return err
					}
					return commands.RunMetricsServer(
						ctx,
						provider,
						logger,
						container.Config().MetricsPort,
					)
				},
			},
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if shutdownErr := container.Shutdown(context.Background()); shutdownErr != nil {
		logger.Error("failed to shutdown container", slog.Any("error", shutdownErr))
	}
	if err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
