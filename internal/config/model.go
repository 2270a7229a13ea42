// internal/config/model.go
//
// Typed configuration model for settingsd.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                        – dotenv values,
//   • optional `conf/settingsd.yaml`              – static file,
//   • `SETTINGSD_`-prefixed environment overrides – highest precedence.
//
// `Database.Password` may hold a `vault:<path>#<key>` reference; cmd boot
// resolves it through the Vault client before the DSN template is filled
// in, so secrets never live in flat files or git history.
//
// Validation happens immediately after unmarshal; the service fails fast
// if required fields are missing or malformed.
//
// Struct tags use `koanf:"…"`, not `yaml:"…"` — Koanf ignores yaml tags
// unless configured otherwise.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Database section
//

// Database holds the DSN template and its secret.  The template keeps one
// %s verb where the password goes; the password itself arrives from env or
// a Vault reference.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required,dsntemplate"`
	Password string `koanf:"password" validate:"required"`
}

//
// Store section
//

// Store holds the write-gate policy and read-cache sizing.
type Store struct {
	UnknownKeyPolicy string `koanf:"unknown_key_policy" validate:"oneof=reject accept"`
	CacheSize        int    `koanf:"cache_size"         validate:"gte=1"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers Root (repo root or SETTINGSD_ROOT override) so later code can
// build absolute file paths, e.g. the log directory.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the process lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Store    Store    `koanf:"store"`
	Paths    Paths    `koanf:"-"`
}
