package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlagHerobrineSpawn is the world flag gating every herobrine-family actor.
const FlagHerobrineSpawn = "herobrine_spawn"

// FlagRepository stores boolean world flags.
type FlagRepository struct {
	pool *pgxpool.Pool
}

// NewFlagRepository creates a new FlagRepository.
func NewFlagRepository(pool *pgxpool.Pool) *FlagRepository {
	return &FlagRepository{pool: pool}
}

// Get returns the flag value. A missing flag reads as false.
func (r *FlagRepository) Get(ctx context.Context, key string) (bool, error) {
	var v bool
	err := r.pool.QueryRow(ctx, `SELECT value FROM world_flags WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query world flag %q: %w", key, err)
	}
	return v, nil
}

// Set upserts the flag value.
func (r *FlagRepository) Set(ctx context.Context, key string, value bool) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO world_flags (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert world flag %q: %w", key, err)
	}
	return nil
}

// WorldBossEnabled reports whether the herobrine spawn flag is set.
func (r *FlagRepository) WorldBossEnabled(ctx context.Context) (bool, error) {
	return r.Get(ctx, FlagHerobrineSpawn)
}

// SetWorldBossEnabled stores the herobrine spawn flag.
func (r *FlagRepository) SetWorldBossEnabled(ctx context.Context, enabled bool) error {
	return r.Set(ctx, FlagHerobrineSpawn, enabled)
}
