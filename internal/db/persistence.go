package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/herobrine/internal/model"
)

// WorldState is the persisted part of a world: the herobrine spawn flag and its actors.
type WorldState struct {
	WorldBossEnabled bool
	Actors           []model.ActorRecord
}

// WorldPersistenceService saves and loads WorldState.
type WorldPersistenceService struct {
	pool      *pgxpool.Pool
	flagRepo  *FlagRepository
	actorRepo *ActorStateRepository
}

// NewWorldPersistenceService creates a new service.
func NewWorldPersistenceService(pool *pgxpool.Pool, flagRepo *FlagRepository, actorRepo *ActorStateRepository) *WorldPersistenceService {
	return &WorldPersistenceService{
		pool:      pool,
		flagRepo:  flagRepo,
		actorRepo: actorRepo,
	}
}

// SaveWorld saves the flag and all actors in a single transaction.
func (s *WorldPersistenceService) SaveWorld(ctx context.Context, state WorldState) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin world save transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO world_flags (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		FlagHerobrineSpawn, state.WorldBossEnabled); err != nil {
		return fmt.Errorf("saving world flag: %w", err)
	}

	if err := s.actorRepo.SaveAllTx(ctx, tx, state.Actors); err != nil {
		return fmt.Errorf("saving actors: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit world save transaction: %w", err)
	}

	slog.Info("world state saved",
		"worldBoss", state.WorldBossEnabled,
		"actors", len(state.Actors))
	return nil
}

// LoadWorld loads the flag and all stored actors.
func (s *WorldPersistenceService) LoadWorld(ctx context.Context) (WorldState, error) {
	enabled, err := s.flagRepo.WorldBossEnabled(ctx)
	if err != nil {
		return WorldState{}, fmt.Errorf("loading world flag: %w", err)
	}

	actors, err := s.actorRepo.LoadAll(ctx)
	if err != nil {
		return WorldState{}, fmt.Errorf("loading actors: %w", err)
	}

	return WorldState{WorldBossEnabled: enabled, Actors: actors}, nil
}
