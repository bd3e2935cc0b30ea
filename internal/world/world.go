package world

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/udisondev/herobrine/internal/model"
)

// World is the in-memory voxel world: chunk storage, light, biomes, weather and
// the actor arena. It implements Surface for the rule gates and the host
// mutation calls used by the state machines.
type World struct {
	mu         sync.RWMutex
	chunks     map[ChunkPos]*Chunk
	emitters   map[model.Coordinate]int32 // light sources → emission
	difficulty model.Difficulty
	weather    model.Weather
	structures []model.StructurePlacement
	sink       model.CueSink

	remote    bool
	bossFlag  atomic.Bool // persisted "world boss enabled" flag, synced from the store
	tickCount atomic.Uint64

	actors     sync.Map // objectID → *model.Actor
	actorCount atomic.Int32
	items      sync.Map // map[uint32]model.ItemDrop

	ids *ObjectIDGenerator
}

// Option configures a World.
type Option func(*World)

// WithDifficulty sets the initial difficulty.
func WithDifficulty(d model.Difficulty) Option {
	return func(w *World) { w.difficulty = d }
}

// WithWeather sets the initial weather.
func WithWeather(wt model.Weather) Option {
	return func(w *World) { w.weather = wt }
}

// AsObserverView makes the world an observer-local view: IsRemote() is true.
func AsObserverView() Option {
	return func(w *World) { w.remote = true }
}

// WithCueSink routes presentation cues to sink.
func WithCueSink(sink model.CueSink) Option {
	return func(w *World) { w.sink = sink }
}

// New creates an empty world.
func New(opts ...Option) *World {
	w := &World{
		chunks:     make(map[ChunkPos]*Chunk),
		emitters:   make(map[model.Coordinate]int32),
		difficulty: model.DifficultyNormal,
		weather:    model.WeatherClear,
		ids:        NewObjectIDGenerator(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// LoadChunk installs a chunk, replacing any chunk at the same position.
func (w *World) LoadChunk(ch *Chunk) {
	w.mu.Lock()
	defer w.mu.Unlock()

	origin := ch.pos.Origin()
	for y := int32(0); y < Height; y++ {
		for lz := int32(0); lz < ChunkSize; lz++ {
			for lx := int32(0); lx < ChunkSize; lx++ {
				if e := ch.Block(lx, y, lz).LightEmission(); e > 0 {
					w.emitters[origin.Offset(lx, y, lz)] = e
				}
			}
		}
	}
	w.chunks[ch.pos] = ch
}

// UnloadChunk removes a chunk and its light sources.
func (w *World) UnloadChunk(pos ChunkPos) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.chunks, pos)
	for c := range w.emitters {
		if ChunkPosOf(c) == pos {
			delete(w.emitters, c)
		}
	}
}

// IsLoaded reports whether the chunk containing c is loaded.
func (w *World) IsLoaded(c model.Coordinate) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.chunks[ChunkPosOf(c)]
	return ok
}

// ChunkCount returns number of loaded chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Chunks returns loaded chunk positions ordered by X, then Z.
func (w *World) Chunks() []ChunkPos {
	w.mu.RLock()
	out := make([]ChunkPos, 0, len(w.chunks))
	for pos := range w.chunks {
		out = append(out, pos)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Z < out[j].Z
	})
	return out
}

// SurfaceY returns the highest non-air y of column (x, z).
func (w *World) SurfaceY(x, z int32) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	c := model.NewCoordinate(x, 0, z)
	ch, err := w.chunkLocked(c)
	if err != nil {
		return 0, err
	}
	y := ch.TopSolid(floorMod(x, ChunkSize), floorMod(z, ChunkSize))
	if y < 0 {
		return 0, fmt.Errorf("column %d,%d: %w", x, z, ErrOutOfBounds)
	}
	return y, nil
}

// SetBlock changes the block at c.
func (w *World) SetBlock(c model.Coordinate, b model.Block) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch, err := w.chunkLocked(c)
	if err != nil {
		return err
	}
	ch.SetBlock(floorMod(c.X, ChunkSize), c.Y, floorMod(c.Z, ChunkSize), b)
	if e := b.LightEmission(); e > 0 {
		w.emitters[c] = e
	} else {
		delete(w.emitters, c)
	}
	return nil
}

// SetBiome changes the biome of the column containing c.
func (w *World) SetBiome(c model.Coordinate, b model.Biome) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch, err := w.chunkLocked(c)
	if err != nil {
		return err
	}
	ch.SetBiome(floorMod(c.X, ChunkSize), floorMod(c.Z, ChunkSize), b)
	return nil
}

// SetDifficulty changes the difficulty.
func (w *World) SetDifficulty(d model.Difficulty) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.difficulty = d
}

// SetWeather changes the weather.
func (w *World) SetWeather(wt model.Weather) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.weather = wt
}

// SetCueSink replaces the cue sink. nil drops cues.
func (w *World) SetCueSink(sink model.CueSink) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sink = sink
}

// WorldBossEnabled returns the persisted "world boss enabled" flag.
func (w *World) WorldBossEnabled() bool {
	return w.bossFlag.Load()
}

// SetWorldBossEnabled updates the in-memory copy of the persisted flag.
func (w *World) SetWorldBossEnabled(v bool) {
	w.bossFlag.Store(v)
}

// AdvanceTick increments the world clock and returns the new tick.
func (w *World) AdvanceTick() uint64 {
	return w.tickCount.Add(1)
}

// CurrentTick returns the world clock.
func (w *World) CurrentTick() uint64 {
	return w.tickCount.Load()
}

// --- Surface ---

// Difficulty returns the difficulty setting.
func (w *World) Difficulty() model.Difficulty {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.difficulty
}

// Weather returns the current weather.
func (w *World) Weather() model.Weather {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.weather
}

// IsRemote reports whether this is an observer-local view.
func (w *World) IsRemote() bool {
	return w.remote
}

// Block returns the block at c.
func (w *World) Block(c model.Coordinate) (model.Block, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.blockLocked(c)
}

// Biome returns the biome tags at c.
func (w *World) Biome(c model.Coordinate) (model.BiomeTags, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ch, err := w.chunkLocked(c)
	if err != nil {
		return 0, err
	}
	return ch.Biome(floorMod(c.X, ChunkSize), floorMod(c.Z, ChunkSize)).Tags(), nil
}

// CanSeeSky reports whether no opaque block is above c.
func (w *World) CanSeeSky(c model.Coordinate) (bool, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.canSeeSkyLocked(c)
}

// SkyLight returns 15 under open sky and 0 otherwise.
func (w *World) SkyLight(c model.Coordinate) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.skyLightLocked(c)
}

// BlockLight returns the light from the nearest emitters, falling off by one per cell.
func (w *World) BlockLight(c model.Coordinate) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.blockLightLocked(c)
}

// StormLight returns max(sky-subtract, block) at c. Partial blocks read the
// brightest of their upper and horizontal neighbours instead.
func (w *World) StormLight(c model.Coordinate, subtract int32) (int32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	b, err := w.blockLocked(c)
	if err != nil {
		return 0, err
	}
	if !b.UsesNeighborLight() {
		return w.combinedLightLocked(c, subtract)
	}

	best := int32(0)
	for _, n := range []model.Coordinate{c.Up(1), c.Offset(1, 0, 0), c.Offset(-1, 0, 0), c.Offset(0, 0, 1), c.Offset(0, 0, -1)} {
		l, err := w.combinedLightLocked(n, subtract)
		if err != nil {
			continue
		}
		best = max(best, l)
	}
	return best, nil
}

func (w *World) combinedLightLocked(c model.Coordinate, subtract int32) (int32, error) {
	sky, err := w.skyLightLocked(c)
	if err != nil {
		return 0, err
	}
	blk, err := w.blockLightLocked(c)
	if err != nil {
		return 0, err
	}
	return max(sky-subtract, blk, 0), nil
}

func (w *World) chunkLocked(c model.Coordinate) (*Chunk, error) {
	if c.Y < 0 || c.Y > MaxY {
		return nil, fmt.Errorf("%v: %w", c, ErrOutOfBounds)
	}
	ch, ok := w.chunks[ChunkPosOf(c)]
	if !ok {
		return nil, fmt.Errorf("%v: %w", c, ErrUnloaded)
	}
	return ch, nil
}

func (w *World) blockLocked(c model.Coordinate) (model.Block, error) {
	ch, err := w.chunkLocked(c)
	if err != nil {
		return model.BlockAir, err
	}
	return ch.Block(floorMod(c.X, ChunkSize), c.Y, floorMod(c.Z, ChunkSize)), nil
}

func (w *World) canSeeSkyLocked(c model.Coordinate) (bool, error) {
	ch, err := w.chunkLocked(c)
	if err != nil {
		return false, err
	}
	lx, lz := floorMod(c.X, ChunkSize), floorMod(c.Z, ChunkSize)
	for y := c.Y + 1; y <= MaxY; y++ {
		if ch.Block(lx, y, lz).IsOpaque() {
			return false, nil
		}
	}
	return true, nil
}

func (w *World) skyLightLocked(c model.Coordinate) (int32, error) {
	open, err := w.canSeeSkyLocked(c)
	if err != nil {
		return 0, err
	}
	if open {
		return MaxLight, nil
	}
	return 0, nil
}

func (w *World) blockLightLocked(c model.Coordinate) (int32, error) {
	if _, err := w.chunkLocked(c); err != nil {
		return 0, err
	}
	best := int32(0)
	for pos, emission := range w.emitters {
		if l := emission - pos.ManhattanDistance(c); l > best {
			best = l
		}
	}
	return best, nil
}

// --- Actor arena ---

// AddActor assigns an id (if the actor has none) and puts the actor in the world.
func (w *World) AddActor(a *model.Actor) (uint32, error) {
	if !w.IsLoaded(a.Pos()) {
		return 0, fmt.Errorf("adding %s at %v: %w", a.Kind(), a.Pos(), ErrUnloaded)
	}
	if a.ID() == 0 {
		a.SetID(w.ids.NextActorID())
	} else {
		w.ids.Restore(a.ID())
	}
	if _, loaded := w.actors.LoadOrStore(a.ID(), a); loaded {
		return 0, fmt.Errorf("actor %d already in world", a.ID())
	}
	w.actorCount.Add(1)

	slog.Debug("actor added",
		"objectID", a.ID(),
		"kind", a.Kind(),
		"pos", a.Pos())
	return a.ID(), nil
}

// AddPlayer puts a player-controlled actor in the world using the player id range.
func (w *World) AddPlayer(a *model.Actor) (uint32, error) {
	if a.ID() == 0 {
		a.SetID(w.ids.NextPlayerID())
	}
	return w.AddActor(a)
}

// RemoveActor removes an actor. Removing an unknown id is a no-op.
func (w *World) RemoveActor(id uint32) {
	value, ok := w.actors.LoadAndDelete(id)
	if !ok {
		return
	}
	w.actorCount.Add(-1)

	a := value.(*model.Actor)
	a.MarkRemoved()
	slog.Debug("actor removed", "objectID", id, "kind", a.Kind())
}

// Actor returns the actor with id.
func (w *World) Actor(id uint32) (*model.Actor, bool) {
	value, ok := w.actors.Load(id)
	if !ok {
		return nil, false
	}
	return value.(*model.Actor), true
}

// MoveActor relocates an actor keeping its facing.
func (w *World) MoveActor(id uint32, pos model.Coordinate) error {
	a, ok := w.Actor(id)
	if !ok {
		return fmt.Errorf("moving actor %d: %w", id, ErrActorNotFound)
	}
	a.SetLocation(a.Location().WithPos(pos))
	return nil
}

// Actors returns all actors ordered by id.
func (w *World) Actors() []*model.Actor {
	out := make([]*model.Actor, 0, w.actorCount.Load())
	w.actors.Range(func(_, value any) bool {
		out = append(out, value.(*model.Actor))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// ActorsOfKind returns actors of kind ordered by id.
func (w *World) ActorsOfKind(kind model.ActorKind) []*model.Actor {
	all := w.Actors()
	out := all[:0]
	for _, a := range all {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	return out
}

// TickEffects counts down the status effects of every actor.
func (w *World) TickEffects() {
	w.actors.Range(func(_, value any) bool {
		value.(*model.Actor).Effects().Tick()
		return true
	})
}

// ActorCount returns number of actors in the world (O(1) cached count).
func (w *World) ActorCount() int {
	return int(w.actorCount.Load())
}

// --- Items, structures, cues ---

// DropItems spawns count single-item stacks at pos.
func (w *World) DropItems(item model.Item, count int, pos model.Coordinate) {
	for range count {
		id := w.ids.NextItemID()
		w.items.Store(id, model.ItemDrop{ID: id, Item: item, Count: 1, Pos: pos})
	}
}

// Items returns dropped items ordered by id.
func (w *World) Items() []model.ItemDrop {
	var out []model.ItemDrop
	w.items.Range(func(_, value any) bool {
		out = append(out, value.(model.ItemDrop))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stamp records a structure template placement. Block-level stamping belongs to
// the template engine; the world only keeps the placement record.
func (w *World) Stamp(p model.StructurePlacement) {
	w.mu.Lock()
	w.structures = append(w.structures, p)
	w.mu.Unlock()

	slog.Info("structure placed",
		"template", p.Template,
		"origin", p.Origin,
		"rotation", p.Rotation,
		"mirror", p.Mirror)
}

// Structures returns all placement records.
func (w *World) Structures() []model.StructurePlacement {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.StructurePlacement, len(w.structures))
	copy(out, w.structures)
	return out
}

// Emit forwards a presentation cue to the sink, if any.
func (w *World) Emit(cue model.Cue) {
	w.mu.RLock()
	sink := w.sink
	w.mu.RUnlock()
	if sink != nil {
		sink.Emit(cue)
	}
}
