// cmd/settingsd/main.go
//
// settingsd – validated system-settings service entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Load and validate configuration (yaml + env overlays).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Resolve the database password, via Vault when the config holds a
//     `vault:` reference.
//
//  5. Open the settings DB and log the persisted-row count.
//
//  6. Build the rule registry; a duplicate key in the table aborts boot.
//
//  7. Wire the write-gated store and mount the JSON API plus the
//     Prometheus /metrics endpoint on a hardened http.Server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/settingsd/internal/api"
	"github.com/yanizio/settingsd/internal/config"
	"github.com/yanizio/settingsd/internal/database"
	"github.com/yanizio/settingsd/internal/logger"
	"github.com/yanizio/settingsd/internal/rules"
	"github.com/yanizio/settingsd/internal/server"
	"github.com/yanizio/settingsd/internal/store"
	"github.com/yanizio/settingsd/internal/vault"
)

const serverEnvPath = "/usr/local/etc/settingsd/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Resolve the DB secret and connect ──────────────────────────
	//
	password := cfg.Database.Password
	if vault.IsRef(password) {
		cli, err := vault.New(ctx, logOut.Infof)
		if err != nil {
			logOut.Fatalw("vault client", "err", err)
		}
		password, err = cli.Resolve(ctx, cfg.Database.Password)
		if err != nil {
			logOut.Fatalw("vault resolve db password", "err", err)
		}
	}

	logOut.Infow("connecting to settings DB")
	db, err := database.Open(fmt.Sprintf(cfg.Database.DSN, password))
	if err != nil {
		logOut.Fatalw("connect settings DB", "err", err)
	}
	defer db.Close()

	// Log row count as an early sanity check.
	var persisted int
	_ = db.Get(&persisted, `SELECT COUNT(*) FROM system_setting`)
	logOut.Infow("settings DB online", "persisted", persisted)

	//
	// ── 2.  Rule registry (fails fast on a broken table) ───────────────
	//
	reg, err := rules.Build()
	if err != nil {
		logOut.Fatalw("build rule registry", "err", err)
	}
	logOut.Infow("registry built", "keys", reg.Len())

	//
	// ── 3.  Store and policy ───────────────────────────────────────────
	//
	policy, err := store.ParsePolicy(cfg.Store.UnknownKeyPolicy)
	if err != nil {
		logOut.Fatalw("store policy", "err", err)
	}
	st := store.New(db, reg, policy, cfg.Store.CacheSize)

	//
	// ── 4.  Router: JSON API + metrics endpoint ────────────────────────
	//
	root := chi.NewRouter()
	root.Handle("/metrics", promhttp.Handler())
	root.Mount("/", api.Routes(st, logOut))

	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.New(cfg.HTTP.ListenAddr, root).ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		logOut.Fatalw("http server", "err", err)
	}
}
