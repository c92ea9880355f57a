package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harinagireddy-katta/DeKart/internal/modules/listing"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
	"github.com/harinagireddy-katta/DeKart/pkg/view"
)

func newProductsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Load the listing once and print its cards as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := products.NewClient(a.cfg.Listing.ClientConfig(), products.WithLogger(a.logger))
			return printCards(cmd, client, cmd.OutOrStdout(), a.logger)
		},
	}
}

func printCards(cmd *cobra.Command, loader products.Loader, out io.Writer, l *slog.Logger) error {
	lv := listing.New(loader, nil, listing.WithLogger(l))
	lv.Mount(cmd.Context())
	defer lv.Unmount()

	if res := lv.Wait(cmd.Context()); !res.OK() {
		return res.Err
	}

	cards := lv.Cards()
	display := make([]view.Card, 0, len(cards))
	for _, c := range cards {
		display = append(display, c.Card)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(display)
}
