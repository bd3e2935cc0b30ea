package testutil

import (
	"testing"

	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/world"
)

// StubSurface: world.Surface с фиксированными ответами для unit тестов гейтов.
type StubSurface struct {
	Sky        int32
	BlockLt    int32
	Storm      int32
	Blocks     map[model.Coordinate]model.Block
	Default    model.Block
	Tags       model.BiomeTags
	SkyVisible bool
	Diff       model.Difficulty
	Wthr       model.Weather
	Remote     bool

	// Err возвращается всеми координатными запросами, если не nil.
	Err error

	StormCalls int
	BlockCalls int
	// StormSubtract: аргумент subtract последнего вызова StormLight.
	StormSubtract int32
}

var _ world.Surface = (*StubSurface)(nil)

func (s *StubSurface) SkyLight(model.Coordinate) (int32, error)   { return s.Sky, s.Err }
func (s *StubSurface) BlockLight(model.Coordinate) (int32, error) { return s.BlockLt, s.Err }

func (s *StubSurface) StormLight(_ model.Coordinate, subtract int32) (int32, error) {
	s.StormCalls++
	s.StormSubtract = subtract
	return s.Storm, s.Err
}

func (s *StubSurface) Block(c model.Coordinate) (model.Block, error) {
	s.BlockCalls++
	if s.Err != nil {
		return model.BlockAir, s.Err
	}
	if b, ok := s.Blocks[c]; ok {
		return b, nil
	}
	return s.Default, nil
}

func (s *StubSurface) Biome(model.Coordinate) (model.BiomeTags, error) { return s.Tags, s.Err }
func (s *StubSurface) CanSeeSky(model.Coordinate) (bool, error)        { return s.SkyVisible, s.Err }
func (s *StubSurface) Difficulty() model.Difficulty                    { return s.Diff }
func (s *StubSurface) Weather() model.Weather                          { return s.Wthr }
func (s *StubSurface) IsRemote() bool                                  { return s.Remote }

// FlatWorld создаёт мир с одним загруженным чанком (0,0): камень до y=63, воздух выше.
// Биом колонки: plains.
func FlatWorld(t testing.TB, opts ...world.Option) *world.World {
	t.Helper()

	w := world.New(opts...)
	ch := world.NewChunk(world.ChunkPos{})
	for lz := int32(0); lz < world.ChunkSize; lz++ {
		for lx := int32(0); lx < world.ChunkSize; lx++ {
			for y := int32(0); y <= 63; y++ {
				ch.SetBlock(lx, y, lz, model.BlockStone)
			}
		}
	}
	w.LoadChunk(ch)
	return w
}

// CueRecorder собирает все cue для проверок в тестах.
type CueRecorder struct {
	Cues []model.Cue
}

// Emit реализует model.CueSink.
func (r *CueRecorder) Emit(c model.Cue) {
	r.Cues = append(r.Cues, c)
}

// Count возвращает число cue указанного вида.
func (r *CueRecorder) Count(kind model.CueKind) int {
	n := 0
	for _, c := range r.Cues {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
