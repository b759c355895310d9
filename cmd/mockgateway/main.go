package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	citypay "github.com/hugochinchilla79/citypay_sdk"
	"github.com/hugochinchilla79/citypay_sdk/internal/mockgateway"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := citypay.LoadConfigFromDotEnv()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid config")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	addr := os.Getenv("MOCK_GATEWAY_ADDR")
	if addr == "" {
		addr = "localhost:8080"
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	mockgateway.New(cfg.MerchantID, cfg.LicenceKey, 0, logger).AppendRoutes(router)

	logger.WithField("addr", addr).Info("mock gateway listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.WithError(err).Fatal("mock gateway stopped")
	}
}
