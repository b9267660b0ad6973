package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/giftcards-tracker/internal/auth"
	"github.com/joseph-ayodele/giftcards-tracker/internal/common"
	"github.com/joseph-ayodele/giftcards-tracker/internal/export"
	"github.com/joseph-ayodele/giftcards-tracker/internal/extract"
	"github.com/joseph-ayodele/giftcards-tracker/internal/harvest"
	"github.com/joseph-ayodele/giftcards-tracker/internal/mailbox"
	"github.com/joseph-ayodele/giftcards-tracker/internal/repository"
	"github.com/joseph-ayodele/giftcards-tracker/internal/server"
	"github.com/joseph-ayodele/giftcards-tracker/internal/vendorcfg"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	profile, err := vendorcfg.Load(cfg.Vendor.ProfilePath)
	if err != nil {
		logger.Error("loading vendor profile failed", "path", cfg.Vendor.ProfilePath, "error", err)
		os.Exit(1)
	}
	logger.Info("vendor profile loaded", "sender", profile.Sender, "currency", profile.CurrencyCode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	cards := repository.NewGiftCardRepository(entc, logger)
	messages := repository.NewMessageRepository(entc, logger)

	extractor := extract.New(extract.Options{
		CodeMarker:    profile.CodeMarker,
		CurrencyGlyph: profile.CurrencyGlyph,
		CurrencyCode:  profile.CurrencyCode,
	}, logger)

	supabase := auth.NewSupabaseValidator(cfg.Auth, logger)
	google := auth.NewGoogleValidator(logger)

	openMailbox := func(ctx context.Context, accessToken string) (harvest.Mailbox, error) {
		return mailbox.NewClient(ctx, accessToken, profile, logger)
	}

	harvester := harvest.NewService(google, openMailbox, extractor, cards, messages, profile, logger)
	exporter := export.NewService(cards, logger)

	srv := server.New(supabase, harvester, cards, exporter, func(ctx context.Context) error {
		return repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger)
	}, logger)

	httpSrv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(cfg.Server.AllowedOrigins),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
