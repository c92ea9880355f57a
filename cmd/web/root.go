package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harinagireddy-katta/DeKart/internal/config"
)

// app is shared by the sub-commands once PersistentPreRunE has run.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "dekart",
		Short:         "DeKart marketplace web front-end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("listing-endpoint", "", "product listing endpoint URL")
	root.PersistentFlags().Bool("strict-status", false, "treat non-2xx listing responses as failures")
	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("listing.endpoint", root.PersistentFlags().Lookup("listing-endpoint"))
	_ = a.v.BindPFlag("listing.strict_status", root.PersistentFlags().Lookup("strict-status"))

	serve := newServeCommand(a)
	root.AddCommand(serve, newProductsCommand(a))
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	return nil
}
