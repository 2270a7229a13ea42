// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `conf/.env` — dotenv values for local development.
  2. Optional `conf/settingsd.yaml`.
  3. Environment variables prefixed `SETTINGSD_`, where `__` maps to “.”
     (e.g., `SETTINGSD_HTTP__LISTEN_ADDR → http.listen_addr`).

Built-in defaults fill anything the layers leave unset, so a bare
environment with only `SETTINGSD_DATABASE__DSN` and `__PASSWORD` boots.
After merging, the tree is unmarshalled into strongly-typed structs,
validated, enriched with the runtime root path, and cached in an
`atomic.Pointer` for lock-free reads.  `Reload()` calls `Load()` again and
swaps the pointer.

Logs use the global *sugared* logger (`zap.S()`) so early boot issues
surface even before the file logger is installed.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves SETTINGSD_ROOT or climbs directories until a conf/
// directory is found.  Falls back to the executable heuristic for the
// production layout (<root>/bin/settingsd).
func rootDir() string {
	if r := os.Getenv("SETTINGSD_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if fi, err := os.Stat(filepath.Join(dir, "conf")); err == nil && fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, and env overrides, validates, and caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "settingsd.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// Env overrides: SETTINGSD_HTTP__LISTEN_ADDR → http.listen_addr.
	// env.Provider hands the callback the full variable name; the prefix
	// must be trimmed here or the key lands under a settingsd_* node that
	// matches nothing.
	if err := k.Load(env.Provider("SETTINGSD_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SETTINGSD_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	applyDefaults(&cfg)

	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"unknown_key_policy", cfg.Store.UnknownKeyPolicy,
		"cache_size", cfg.Store.CacheSize,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

// applyDefaults fills fields no overlay layer set.
func applyDefaults(cfg *Config) {
	if cfg.HTTP.ListenAddr == "" {
		cfg.HTTP.ListenAddr = ":8080"
	}
	if cfg.Store.UnknownKeyPolicy == "" {
		cfg.Store.UnknownKeyPolicy = "reject"
	}
	if cfg.Store.CacheSize == 0 {
		cfg.Store.CacheSize = 256
	}
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config  { return current.Load() }
func Reload() error { _, err := Load(); return err }
