package world

import "github.com/udisondev/herobrine/internal/model"

const (
	// ChunkSize is the horizontal edge of a chunk in cells.
	ChunkSize = 16
	// Height is the number of vertical cells.
	Height = 256
	// MaxY is the world ceiling.
	MaxY = Height - 1
	// MaxLight is the brightest light level.
	MaxLight = 15
)

// ChunkPos identifies a chunk column.
type ChunkPos struct {
	X int32
	Z int32
}

// ChunkPosOf returns the chunk containing c.
func ChunkPosOf(c model.Coordinate) ChunkPos {
	return ChunkPos{X: floorDiv(c.X, ChunkSize), Z: floorDiv(c.Z, ChunkSize)}
}

// Origin returns the block coordinate of the chunk's (0, 0, 0) corner.
func (p ChunkPos) Origin() model.Coordinate {
	return model.NewCoordinate(p.X*ChunkSize, 0, p.Z*ChunkSize)
}

// Chunk is a 16×256×16 column of blocks plus per-column biomes.
type Chunk struct {
	pos    ChunkPos
	blocks [ChunkSize * Height * ChunkSize]model.Block
	biomes [ChunkSize * ChunkSize]model.Biome
}

// NewChunk creates an all-air chunk with plains biome.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{pos: pos}
}

// Pos returns the chunk position.
func (c *Chunk) Pos() ChunkPos {
	return c.pos
}

// Block returns the block at local coordinates.
func (c *Chunk) Block(lx, y, lz int32) model.Block {
	return c.blocks[blockIndex(lx, y, lz)]
}

// SetBlock sets the block at local coordinates.
func (c *Chunk) SetBlock(lx, y, lz int32, b model.Block) {
	c.blocks[blockIndex(lx, y, lz)] = b
}

// Biome returns the biome of the local column.
func (c *Chunk) Biome(lx, lz int32) model.Biome {
	return c.biomes[lz*ChunkSize+lx]
}

// SetBiome sets the biome of the local column.
func (c *Chunk) SetBiome(lx, lz int32, b model.Biome) {
	c.biomes[lz*ChunkSize+lx] = b
}

// TopSolid returns the highest y whose block is not air, or -1.
func (c *Chunk) TopSolid(lx, lz int32) int32 {
	for y := int32(MaxY); y >= 0; y-- {
		if !c.Block(lx, y, lz).IsAir() {
			return y
		}
	}
	return -1
}

func blockIndex(lx, y, lz int32) int {
	return int((y*ChunkSize+lz)*ChunkSize + lx)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
