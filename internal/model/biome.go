package model

// BiomeTag is a classification bit carried by a biome.
type BiomeTag uint16

const (
	TagPlains BiomeTag = 1 << iota
	TagForest
	TagMountain
	TagHills
	TagSandy
	TagCold
	TagWater
	TagMushroom
	TagDry
)

// BiomeTags is a set of classification tags.
type BiomeTags uint16

// Has reports whether the set contains tag.
func (t BiomeTags) Has(tag BiomeTag) bool {
	return uint16(t)&uint16(tag) != 0
}

// HasAny reports whether the set contains at least one of tags.
func (t BiomeTags) HasAny(tags ...BiomeTag) bool {
	for _, tag := range tags {
		if t.Has(tag) {
			return true
		}
	}
	return false
}

// Tags builds a tag set.
func Tags(tags ...BiomeTag) BiomeTags {
	var t BiomeTags
	for _, tag := range tags {
		t |= BiomeTags(tag)
	}
	return t
}

// Biome identifies a biome kind.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeForest
	BiomeDesert
	BiomeMountains
	BiomeWoodedHills
	BiomeSnowyTaiga
	BiomeMushroomFields
	BiomeOcean
	BiomeGravellyMountains
)

var biomeInfo = [...]struct {
	name string
	tags BiomeTags
}{
	BiomePlains:            {"plains", Tags(TagPlains)},
	BiomeForest:            {"forest", Tags(TagForest)},
	BiomeDesert:            {"desert", Tags(TagSandy, TagDry)},
	BiomeMountains:         {"mountains", Tags(TagMountain)},
	BiomeWoodedHills:       {"wooded_hills", Tags(TagForest, TagHills)},
	BiomeSnowyTaiga:        {"snowy_taiga", Tags(TagForest, TagCold)},
	BiomeMushroomFields:    {"mushroom_fields", Tags(TagMushroom)},
	BiomeOcean:             {"ocean", Tags(TagWater)},
	BiomeGravellyMountains: {"gravelly_mountains", Tags(TagMountain, TagHills)},
}

// String returns the biome id.
func (b Biome) String() string {
	if int(b) < len(biomeInfo) {
		return biomeInfo[b].name
	}
	return "unknown"
}

// Tags returns the classification tags of the biome.
func (b Biome) Tags() BiomeTags {
	if int(b) < len(biomeInfo) {
		return biomeInfo[b].tags
	}
	return 0
}

// BiomeCount is the number of known biomes.
const BiomeCount = len(biomeInfo)
