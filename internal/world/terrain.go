package world

import "github.com/udisondev/herobrine/internal/model"

// SeaLevel is the water surface height for generated terrain.
const SeaLevel = 62

// Generator produces deterministic terrain chunks from a seed.
// Biomes are laid out in square regions; heights are per-column hash noise.
type Generator struct {
	Seed       int64
	RegionSize int32
}

// NewGenerator creates a generator with 64-cell biome regions.
func NewGenerator(seed int64) *Generator {
	return &Generator{Seed: seed, RegionSize: 64}
}

// BiomeAt returns the biome of the column (x, z).
func (g *Generator) BiomeAt(x, z int32) model.Biome {
	size := g.RegionSize
	if size <= 0 {
		size = 1
	}
	h := hash2(g.Seed, floorDiv(x, size), floorDiv(z, size))
	return model.Biome(h % uint64(model.BiomeCount))
}

// Generate builds the chunk at pos.
func (g *Generator) Generate(pos ChunkPos) *Chunk {
	ch := NewChunk(pos)
	origin := pos.Origin()

	for lz := int32(0); lz < ChunkSize; lz++ {
		for lx := int32(0); lx < ChunkSize; lx++ {
			wx, wz := origin.X+lx, origin.Z+lz
			biome := g.BiomeAt(wx, wz)
			noise := hash2(g.Seed^0x5f3759df, wx, wz)
			top := surfaceHeight(biome, noise)

			ch.SetBiome(lx, lz, biome)
			ch.SetBlock(lx, 0, lz, model.BlockBedrock)
			for y := int32(1); y <= top; y++ {
				ch.SetBlock(lx, y, lz, fillBlock(biome, noise, y, top))
			}
			for y := top + 1; y <= SeaLevel; y++ {
				ch.SetBlock(lx, y, lz, model.BlockWater)
			}
		}
	}
	return ch
}

func surfaceHeight(b model.Biome, noise uint64) int32 {
	n := int32(noise >> 33)
	switch b {
	case model.BiomeMountains:
		return 90 + n%40
	case model.BiomeGravellyMountains:
		return 95 + n%30
	case model.BiomeWoodedHills:
		return 75 + n%15
	case model.BiomeOcean:
		return 45 + n%10
	case model.BiomeForest:
		return 65 + n%5
	case model.BiomeSnowyTaiga:
		return 66 + n%6
	default:
		return 63 + n%4
	}
}

func fillBlock(b model.Biome, noise uint64, y, top int32) model.Block {
	if y < top-3 {
		return model.BlockStone
	}
	if y < top {
		if b == model.BiomeDesert {
			return model.BlockSand
		}
		if b == model.BiomeMountains || b == model.BiomeGravellyMountains {
			return model.BlockStone
		}
		return model.BlockDirt
	}
	switch b {
	case model.BiomeDesert:
		return model.BlockSand
	case model.BiomeMountains:
		return model.BlockStone
	case model.BiomeGravellyMountains:
		if noise&1 == 0 {
			return model.BlockGravel
		}
		return model.BlockStone
	case model.BiomeOcean:
		return model.BlockGravel
	default:
		return model.BlockGrass
	}
}

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func hash2(seed int64, x, z int32) uint64 {
	ux := uint64(uint32(x))
	uz := uint64(uint32(z))
	return mix64(uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uz * 0xbf58476d1ce4e5b9))
}
