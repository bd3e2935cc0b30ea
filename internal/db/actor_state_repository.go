package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/herobrine/internal/model"
)

const actorStateColumns = `object_id, kind, x, y, z, yaw, health, custom_name, name_visible,
	ai_disabled, persistent, invulnerable, growing_age, variant,
	illusion_casting_interval, weaken_casting_interval, warp_casting_interval`

// ActorStateRepository persists actor records.
type ActorStateRepository struct {
	pool *pgxpool.Pool
}

// NewActorStateRepository creates a new ActorStateRepository.
func NewActorStateRepository(pool *pgxpool.Pool) *ActorStateRepository {
	return &ActorStateRepository{pool: pool}
}

// LoadAll loads every stored actor ordered by object id.
func (r *ActorStateRepository) LoadAll(ctx context.Context) ([]model.ActorRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+actorStateColumns+` FROM actor_state ORDER BY object_id`)
	if err != nil {
		return nil, fmt.Errorf("query actor_state: %w", err)
	}
	defer rows.Close()

	var result []model.ActorRecord
	for rows.Next() {
		var (
			rec model.ActorRecord
			id  int64
		)
		if err := rows.Scan(&id, &rec.Kind, &rec.Pos.X, &rec.Pos.Y, &rec.Pos.Z, &rec.Yaw, &rec.Health,
			&rec.CustomName, &rec.NameVisible, &rec.AIDisabled, &rec.Persistent, &rec.Invulnerable,
			&rec.GrowingAge, &rec.Variant,
			&rec.IllusionCastingInterval, &rec.WeakenCastingInterval, &rec.WarpCastingInterval); err != nil {
			return nil, fmt.Errorf("scan actor_state: %w", err)
		}
		rec.ObjectID = uint32(id)
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actor_state: %w", err)
	}
	return result, nil
}

// SaveAllTx replaces the stored actors with records inside tx.
func (r *ActorStateRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, records []model.ActorRecord) error {
	if _, err := tx.Exec(ctx, `DELETE FROM actor_state`); err != nil {
		return fmt.Errorf("clear actor_state: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`INSERT INTO actor_state (`+actorStateColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			int64(rec.ObjectID), rec.Kind, rec.Pos.X, rec.Pos.Y, rec.Pos.Z, rec.Yaw, rec.Health,
			rec.CustomName, rec.NameVisible, rec.AIDisabled, rec.Persistent, rec.Invulnerable,
			rec.GrowingAge, rec.Variant,
			rec.IllusionCastingInterval, rec.WeakenCastingInterval, rec.WarpCastingInterval)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range records {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert actor %d: %w", records[i].ObjectID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close actor_state batch: %w", err)
	}
	return nil
}

// Delete removes one stored actor. Deleting a missing id is a no-op.
func (r *ActorStateRepository) Delete(ctx context.Context, objectID uint32) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM actor_state WHERE object_id = $1`, int64(objectID)); err != nil {
		return fmt.Errorf("delete actor %d: %w", objectID, err)
	}
	return nil
}
