// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-broker/internal/config"
	"github.com/MKhiriev/go-vault-broker/internal/connlog"
	"github.com/MKhiriev/go-vault-broker/internal/crypto"
	"github.com/MKhiriev/go-vault-broker/internal/gateway"
	"github.com/MKhiriev/go-vault-broker/internal/handler"
	"github.com/MKhiriev/go-vault-broker/internal/keyring"
	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/proxy"
	"github.com/MKhiriev/go-vault-broker/internal/server"
	"github.com/MKhiriev/go-vault-broker/internal/service"
	"github.com/MKhiriev/go-vault-broker/internal/session"
	"github.com/MKhiriev/go-vault-broker/internal/store"
	"github.com/MKhiriev/go-vault-broker/internal/utils"
	"github.com/MKhiriev/go-vault-broker/internal/vault"
	"github.com/MKhiriev/go-vault-broker/internal/workers"
	"github.com/MKhiriev/go-vault-broker/models"
	"golang.org/x/sync/errgroup"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("vault-broker", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("server shut down gracefully")
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	vaultKeys := keyring.New(keyring.Source{
		Name:       "vault",
		Configured: cfg.Vault.MasterKey,
		Secret:     cfg.App.Secret,
		Suffix:     keyring.VaultSuffix,
		Strict:     cfg.App.RequireStableKeys,
	}, log)
	gatewayKeys := keyring.New(keyring.Source{
		Name:       "gateway",
		Configured: cfg.Gateway.Key,
		Secret:     cfg.App.Secret,
		Suffix:     keyring.GatewaySuffix,
		Strict:     cfg.App.RequireStableKeys,
	}, log)

	// resolve now so a strict deployment without keys fails before serving
	for _, ring := range []*keyring.KeyRing{vaultKeys, gatewayKeys} {
		if _, err := ring.Key(); err != nil {
			return fmt.Errorf("resolving key material: %w", err)
		}
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to storage: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	gate := session.NewGate(cfg.Vault.IdleTimeout, log)
	defer gate.Close()

	services := service.NewServices(store.NewRepositories(db, log), service.Dependencies{
		Gate:      gate,
		Cipher:    vault.NewFieldCipher(vaultKeys),
		Connector: proxy.NewConnector(log),
		Tokens:    gateway.NewTokenService(gatewayKeys, log),
		Hasher:    crypto.NewPasswordHasher(),
		IDs:       utils.NewUUIDGenerator(),
		ConnLog:   connlog.New(log),
		KeyRings: map[string]service.KeyTierReporter{
			"vault":   vaultKeys,
			"gateway": gatewayKeys,
		},
	}, *cfg, log)

	handlers, err := handler.NewHandlers(services, gate, buildInfo, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background := []workers.Worker{
		workers.NewSessionSweeper(gate, cfg.Workers.SweepInterval, log),
		workers.NewBackendWatchdog(db, gate, cfg.Workers.HealthCheckInterval, log),
	}
	if cfg.Workers.MetricsInterval > 0 {
		background = append(background, workers.NewMetricsReporter(services.MetricsService, cfg.Workers.MetricsInterval, log))
	}
	if cfg.Workers.MigrateOnStart {
		background = append(background, workers.NewFieldMigrator(services.MigrationService, log))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return workers.NewWorkers(log, background...).Run(ctx) })

	return g.Wait()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
