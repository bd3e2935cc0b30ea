package conversion

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
)

func TestVariant(t *testing.T) {
	tests := []struct {
		tag       string
		want      Variant
		byproduct model.Item
	}{
		{"red", VariantRed, model.ItemRedMushroom},
		{"brown", VariantBrown, model.ItemBrownMushroom},
		{"", VariantRed, model.ItemRedMushroom},
		{"BROWN", VariantRed, model.ItemRedMushroom},
		{"purple", VariantRed, model.ItemRedMushroom},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			v := ParseVariant(tt.tag)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.byproduct, v.Byproduct())
		})
	}

	assert.Equal(t, VariantBrown, VariantRed.Flip())
	assert.Equal(t, VariantRed, VariantBrown.Flip())
	assert.Equal(t, "brown", VariantBrown.Tag())
}

func TestState_StrikeIdempotentPerToken(t *testing.T) {
	s := NewState(VariantRed)
	a := uuid.New()
	b := uuid.New()

	assert.True(t, s.Strike(a))
	assert.Equal(t, VariantBrown, s.Variant)
	assert.False(t, s.Strike(a), "same token")
	assert.Equal(t, VariantBrown, s.Variant)
	last, ok := s.LastStrike()
	assert.True(t, ok)
	assert.Equal(t, a, last)

	assert.True(t, s.Strike(b))
	assert.Equal(t, VariantRed, s.Variant)

	// a token seen before the last one flips again
	assert.True(t, s.Strike(a))
	assert.Equal(t, VariantBrown, s.Variant)
}

func TestState_FirstStrikeWithNilToken(t *testing.T) {
	s := NewState(VariantRed)
	_, ok := s.LastStrike()
	require.False(t, ok)

	assert.True(t, s.Strike(uuid.Nil), "no strike seen yet, any token flips")
	assert.Equal(t, VariantBrown, s.Variant)
	assert.False(t, s.Strike(uuid.Nil))
	assert.Equal(t, VariantBrown, s.Variant)
}
