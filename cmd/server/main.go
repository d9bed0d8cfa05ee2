package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/cards"
	"github.com/youruser/ygodeck/internal/catalog"
	"github.com/youruser/ygodeck/internal/config"
	"github.com/youruser/ygodeck/internal/deck"
	"github.com/youruser/ygodeck/internal/logging"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Yu-Gi-Oh! deck builder service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	defaultPath := "config.yml"
	if env := os.Getenv("CONFIG_FILE_PATH"); env != "" {
		defaultPath = env
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultPath, "path to the YAML config file")

	root.AddCommand(newSearchCmd(), newFormatCmd())
	return root
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newCatalog(cfg *config.Config, logger *zap.Logger) *catalog.Client {
	return catalog.New(catalog.Config{
		BaseURL:  cfg.Catalog.BaseURL,
		Language: cfg.Catalog.Language,
		Timeout:  cfg.Catalog.Timeout,
		MinQuery: cfg.Catalog.MinQuery,
	}, logger.Named("catalog"))
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Look cards up in the catalog and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			found, err := newCatalog(cfg, logger).Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cards.Rank(args[0], found) {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", c.ID, deck.Classify(c.Type), c.Name, c.ImageURL())
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Split a card description read from stdin into pendulum and monster effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			d := cards.FormatDescription(string(b))
			out := cmd.OutOrStdout()
			if cards.HasPendulum(string(b)) {
				fmt.Fprintf(out, "Pendulum Effect:\n%s\n\n", d.Pendulum)
			}
			fmt.Fprintf(out, "Monster Effect:\n%s\n", d.Monster)
			return nil
		},
	}
}
