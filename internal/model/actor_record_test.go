package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorRecord_RoundTrip(t *testing.T) {
	a := NewActor(0x20000005, KindInfectedMooshroom, NewLocation(1, 70, -3, 45))
	a.SetHealth(6)
	a.SetCustomName("Bessie")
	a.SetCustomNameVisible(true)
	a.EnablePersistence()
	a.SetGrowingAge(-100)
	a.SetVariantTag("brown")

	rec := RecordOf(a)
	assert.Equal(t, "infected_mooshroom", rec.Kind)

	b, err := NewActorFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, a.Kind(), b.Kind())
	assert.Equal(t, a.Location(), b.Location())
	assert.Equal(t, float32(6), b.Health())
	assert.Equal(t, "Bessie", b.CustomName())
	assert.True(t, b.IsCustomNameVisible())
	assert.True(t, b.IsPersistent())
	assert.Equal(t, int32(-100), b.GrowingAge())
	assert.Equal(t, "brown", b.VariantTag())
}

func TestNewActorFromRecord_UnknownKind(t *testing.T) {
	_, err := NewActorFromRecord(ActorRecord{ObjectID: 1, Kind: "creeper"})
	assert.Error(t, err)

	_, err = NewActorFromRecord(ActorRecord{ObjectID: 1, Kind: "unknown"})
	assert.Error(t, err)
}
