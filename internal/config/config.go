package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the rules server.
type Server struct {
	LogLevel string `yaml:"log_level" json:"log_level"` // debug|info|warn|error

	// World
	Seed         int64         `yaml:"seed" json:"seed"`
	Difficulty   string        `yaml:"difficulty" json:"difficulty"`
	TickInterval time.Duration `yaml:"tick_interval" json:"tick_interval"` // default: 50ms (20 ticks/s)
	ViewRadius   int           `yaml:"view_radius" json:"view_radius"`     // chunks generated around origin

	// Database
	Database DatabaseConfig `yaml:"database" json:"database"`

	// Observer cue stream
	Observer ObserverConfig `yaml:"observer" json:"observer"`

	// Snapshots
	Snapshot SnapshotConfig `yaml:"snapshot" json:"snapshot"`

	// Gameplay rules
	Rules Rules `yaml:"rules" json:"rules"`
}

// Rules are the tunable gameplay thresholds and flags. Loaded once, read-only after.
type Rules struct {
	// HerobrineAlwaysSpawns lets hostile kinds spawn even when the persisted
	// world-boss flag is off.
	HerobrineAlwaysSpawns bool `yaml:"herobrine_always_spawns" json:"herobrine_always_spawns"`

	// StatueSpawnWeight is the per-chunk placement chance out of 1,000,000.
	StatueSpawnWeight int `yaml:"statue_spawn_weight" json:"statue_spawn_weight"`
	// StatueAttempts is the number of placement tries once the chance passes.
	StatueAttempts int `yaml:"statue_attempts" json:"statue_attempts"`

	// SpawnEveryTicks is the natural-spawn cadence; SpawnAttempts the tries per round.
	SpawnEveryTicks int `yaml:"spawn_every_ticks" json:"spawn_every_ticks"`
	SpawnAttempts   int `yaml:"spawn_attempts" json:"spawn_attempts"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
	DBName   string `yaml:"dbname" json:"dbname"`
	SSLMode  string `yaml:"sslmode" json:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// ObserverConfig holds the websocket cue stream listener.
type ObserverConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	BindAddress string `yaml:"bind_address" json:"bind_address"`
	Port        int    `yaml:"port" json:"port"`
}

// Addr returns host:port.
func (o ObserverConfig) Addr() string {
	return fmt.Sprintf("%s:%d", o.BindAddress, o.Port)
}

// SnapshotConfig holds periodic snapshot settings.
type SnapshotConfig struct {
	Dir        string `yaml:"dir" json:"dir"`
	IndexPath  string `yaml:"index_path" json:"index_path"`
	EveryTicks int    `yaml:"every_ticks" json:"every_ticks"` // 0 disables snapshots
}

// DefaultRules returns the stock gameplay rules.
func DefaultRules() Rules {
	return Rules{
		HerobrineAlwaysSpawns: false,
		StatueSpawnWeight:     10000,
		StatueAttempts:        1,
		SpawnEveryTicks:       400,
		SpawnAttempts:         4,
	}
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel:     "info",
		Seed:         1337,
		Difficulty:   "normal",
		TickInterval: 50 * time.Millisecond,
		ViewRadius:   4,
		Database: DatabaseConfig{
			Enabled:  true,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "herobrine",
			Password: "herobrine",
			DBName:   "herobrine",
			SSLMode:  "disable",
		},
		Observer: ObserverConfig{
			Enabled:     true,
			BindAddress: "127.0.0.1",
			Port:        8090,
		},
		Snapshot: SnapshotConfig{
			Dir:        "data/snapshots",
			IndexPath:  "data/index.sqlite",
			EveryTicks: 6000,
		},
		Rules: DefaultRules(),
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
