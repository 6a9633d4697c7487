package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uniconv/internal/assist"
	assisthttp "uniconv/internal/assist/interfaces/http"
	calchttp "uniconv/internal/calc/interfaces/http"
	"uniconv/internal/catalog/application"
	catalog "uniconv/internal/catalog/domain"
	cataloghttp "uniconv/internal/catalog/interfaces/http"
	"uniconv/internal/config"
	exporthttp "uniconv/internal/export/interfaces/http"
	formathttp "uniconv/internal/format/interfaces/http"
	"uniconv/internal/observability/metrics"
	"uniconv/internal/web"
)

func main() {
	logger := log.New(os.Stdout, "uniconvd ", log.LstdFlags)

	if err := godotenv.Load(); err != nil {
		logger.Printf("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	metrics.Register()

	cat := catalog.DefaultCatalog()
	service, err := application.NewConversionService(cat)
	if err != nil {
		logger.Fatalf("conversion service: %v", err)
	}

	conversionHandler, err := cataloghttp.NewConversionHandler(service)
	if err != nil {
		logger.Fatalf("conversion handler: %v", err)
	}
	referenceHandler, err := exporthttp.NewReferenceHandler(cat, logger)
	if err != nil {
		logger.Fatalf("reference handler: %v", err)
	}

	var assistClient *assist.Client
	if cfg.Assist.APIKey != "" {
		assistClient, err = assist.NewClient(cfg.Assist.BaseURL, cfg.Assist.APIKey,
			assist.WithImageModel(cfg.Assist.ImageModel))
		if err != nil {
			logger.Fatalf("assist client: %v", err)
		}
	} else {
		logger.Printf("assist disabled: no api key configured")
	}
	assistHandler, err := assisthttp.NewAssistHandler(assistClient, service, logger)
	if err != nil {
		logger.Fatalf("assist handler: %v", err)
	}

	mw := web.NewMiddleware(logger)
	mux := http.NewServeMux()
	mux.Handle("/api/v1/categories", mw.Wrap("categories", conversionHandler))
	mux.Handle("/api/v1/convert", mw.Wrap("convert", conversionHandler))
	mux.Handle("/api/v1/calc/", mw.Wrap("calc", calchttp.NewCalcHandler()))
	mux.Handle("/api/v1/format/", mw.Wrap("format", formathttp.NewFormatHandler()))
	mux.Handle("/api/v1/color/", mw.Wrap("color", formathttp.NewFormatHandler()))
	mux.Handle("/api/v1/assist/", mw.Wrap("assist", assistHandler))
	mux.Handle("/api/v1/reference.xlsx", mw.Wrap("reference", referenceHandler))
	mux.Handle("/api/v1/reference.pdf", mw.Wrap("reference", referenceHandler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Printf("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("serve: %v", err)
	}
	<-done
}
