package conversion

import "github.com/udisondev/herobrine/internal/model"

// Variant is the appearance of an infected mooshroom.
type Variant uint8

const (
	VariantRed Variant = iota
	VariantBrown
)

// Tag returns the persisted string tag.
func (v Variant) Tag() string {
	if v == VariantBrown {
		return "brown"
	}
	return "red"
}

func (v Variant) String() string {
	return v.Tag()
}

// Flip returns the other variant.
func (v Variant) Flip() Variant {
	if v == VariantBrown {
		return VariantRed
	}
	return VariantBrown
}

// Byproduct returns the mushroom dropped by a sheared mooshroom of this variant.
func (v Variant) Byproduct() model.Item {
	if v == VariantBrown {
		return model.ItemBrownMushroom
	}
	return model.ItemRedMushroom
}

// ParseVariant decodes a persisted tag. Unknown tags decode to red.
func ParseVariant(tag string) Variant {
	if tag == "brown" {
		return VariantBrown
	}
	return VariantRed
}
