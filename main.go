package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/handlers"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Namespace = "returns.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	server := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: mainRouter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting returns.api service")

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		err := server.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Error(err)
	}

	log.Trace("Exiting returns.api service")
}
