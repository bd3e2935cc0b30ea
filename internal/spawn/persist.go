package spawn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/herobrine/internal/ai"
	"github.com/udisondev/herobrine/internal/model"
)

// Capture returns the persisted records of every living non-player actor in the world,
// cast timers included for casters.
func (m *Manager) Capture() []model.ActorRecord {
	var records []model.ActorRecord
	for _, a := range m.world.Actors() {
		if a.Kind() == model.KindPlayer || !a.Flags().Has(model.FlagLiving) || !a.IsAlive() {
			continue
		}
		rec := model.RecordOf(a)
		if c, ok := m.Caster(a.ID()); ok {
			t := c.Timers()
			rec.IllusionCastingInterval = t.Illusion
			rec.WeakenCastingInterval = t.Debuff
			rec.WarpCastingInterval = t.Teleport
		}
		records = append(records, rec)
	}
	return records
}

// RestoreRecords places persisted actors back in the world.
// Records that cannot be restored are skipped; their errors are joined.
func (m *Manager) RestoreRecords(records []model.ActorRecord) (int, error) {
	var (
		restored int
		errs     []error
	)
	for _, rec := range records {
		a, err := model.NewActorFromRecord(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		timers := ai.CastTimers{
			Illusion: rec.IllusionCastingInterval,
			Debuff:   rec.WeakenCastingInterval,
			Teleport: rec.WarpCastingInterval,
		}
		if err := m.Restore(a, timers); err != nil {
			errs = append(errs, fmt.Errorf("restoring actor %d: %w", rec.ObjectID, err))
			continue
		}
		restored++
	}

	slog.Info("actors restored", "count", restored, "failed", len(errs))
	return restored, errors.Join(errs...)
}
