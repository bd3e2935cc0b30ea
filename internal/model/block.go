package model

// Block is the material occupying one grid cell.
type Block uint8

const (
	BlockAir Block = iota
	BlockCaveAir
	BlockStone
	BlockGravel
	BlockDirt
	BlockGrass
	BlockSand
	BlockWater
	BlockLava
	BlockLog
	BlockLeaves
	BlockGlass
	BlockTorch
	BlockGlowstone
	BlockSlab
	BlockFarmland
	BlockRedMushroom
	BlockBrownMushroom
	BlockBedrock
)

var blockNames = [...]string{
	BlockAir:           "air",
	BlockCaveAir:       "cave_air",
	BlockStone:         "stone",
	BlockGravel:        "gravel",
	BlockDirt:          "dirt",
	BlockGrass:         "grass_block",
	BlockSand:          "sand",
	BlockWater:         "water",
	BlockLava:          "lava",
	BlockLog:           "log",
	BlockLeaves:        "leaves",
	BlockGlass:         "glass",
	BlockTorch:         "torch",
	BlockGlowstone:     "glowstone",
	BlockSlab:          "slab",
	BlockFarmland:      "farmland",
	BlockRedMushroom:   "red_mushroom",
	BlockBrownMushroom: "brown_mushroom",
	BlockBedrock:       "bedrock",
}

// String returns the block id.
func (b Block) String() string {
	if int(b) < len(blockNames) {
		return blockNames[b]
	}
	return "unknown"
}

// IsAir reports whether the cell is empty (either air kind).
func (b Block) IsAir() bool {
	return b == BlockAir || b == BlockCaveAir
}

// IsOpen reports whether an actor can occupy the cell after a relocation.
// Only the two air kinds count, in any combination.
func (b Block) IsOpen() bool {
	return b.IsAir()
}

// BlocksMovement reports whether the material is solid for standing and collision.
func (b Block) BlocksMovement() bool {
	switch b {
	case BlockAir, BlockCaveAir, BlockWater, BlockLava, BlockTorch, BlockRedMushroom, BlockBrownMushroom:
		return false
	default:
		return true
	}
}

// IsOpaque reports whether the block stops sky light.
func (b Block) IsOpaque() bool {
	switch b {
	case BlockAir, BlockCaveAir, BlockGlass, BlockTorch, BlockLeaves,
		BlockRedMushroom, BlockBrownMushroom, BlockWater, BlockSlab:
		return false
	default:
		return true
	}
}

// LightEmission returns the block light level emitted by the block.
func (b Block) LightEmission() int32 {
	switch b {
	case BlockGlowstone, BlockLava:
		return 15
	case BlockTorch:
		return 14
	case BlockBrownMushroom:
		return 1
	default:
		return 0
	}
}

// UsesNeighborLight reports whether light at this block is read from its neighbours
// (partial blocks like slabs and farmland).
func (b Block) UsesNeighborLight() bool {
	return b == BlockSlab || b == BlockFarmland
}
