package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/harinagireddy-katta/DeKart/internal/http"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
	"github.com/harinagireddy-katta/DeKart/internal/observability/metrics"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = a.v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	lm, err := metrics.NewListingMetrics(registry)
	if err != nil {
		return err
	}

	client := products.NewClient(a.cfg.Listing.ClientConfig(),
		products.WithLogger(a.logger),
		products.WithObserver(lm),
	)

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           apphttp.NewRouter(a.logger, apphttp.Deps{Loader: client, Gatherer: registry}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http_listen",
			slog.String("addr", a.cfg.Addr),
			slog.String("listing_endpoint", a.cfg.Listing.Endpoint),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("http_shutdown")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("http_server_failed", slog.Any("err", err))
		return err
	}
	return nil
}
