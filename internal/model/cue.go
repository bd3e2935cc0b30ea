package model

// CueKind identifies a presentation cue (sound, particles, entity status).
type CueKind string

const (
	CueCastSpell     CueKind = "cast_spell"
	CueSpellParticle CueKind = "spell_particles"
	CueExplosion     CueKind = "explosion"
	CueShear         CueKind = "mooshroom_shear"
	CueConvert       CueKind = "mooshroom_convert"
	CueCured         CueKind = "zombie_cured" // entity status 16
	CueStatuePlaced  CueKind = "statue_placed"
)

// Cue is a presentation-only command. Dropping cues never changes simulation outcomes;
// a headless host may ignore them.
type Cue struct {
	Kind    CueKind    `json:"kind"`
	ActorID uint32     `json:"actor_id,omitempty"`
	Pos     Coordinate `json:"pos"`
	Volume  float32    `json:"volume,omitempty"`
	Pitch   float32    `json:"pitch,omitempty"`
	Count   int        `json:"count,omitempty"`
}

// CueSink receives presentation cues.
type CueSink interface {
	Emit(cue Cue)
}

// CueSinkFunc adapts a function to CueSink.
type CueSinkFunc func(Cue)

// Emit calls f(cue).
func (f CueSinkFunc) Emit(cue Cue) { f(cue) }

// Item identifies an item type.
type Item string

const (
	ItemShears        Item = "shears"
	ItemRedMushroom   Item = "red_mushroom"
	ItemBrownMushroom Item = "brown_mushroom"
	ItemCursedDust    Item = "cursed_dust"
)

// ItemDrop is a stack of items lying in the world.
type ItemDrop struct {
	ID    uint32     `json:"id"`
	Item  Item       `json:"item"`
	Count int32      `json:"count"`
	Pos   Coordinate `json:"pos"`
}
