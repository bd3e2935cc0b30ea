package model

// Rotation is a discrete structure rotation.
type Rotation uint8

const (
	RotationNone Rotation = iota
	RotationClockwise90
	RotationClockwise180
	RotationCounterclockwise90
)

// String returns the rotation id.
func (r Rotation) String() string {
	switch r {
	case RotationNone:
		return "none"
	case RotationClockwise90:
		return "clockwise_90"
	case RotationClockwise180:
		return "180"
	case RotationCounterclockwise90:
		return "counterclockwise_90"
	default:
		return "unknown"
	}
}

// Mirror is a discrete structure mirroring.
type Mirror uint8

const (
	MirrorNone Mirror = iota
	MirrorLeftRight
	MirrorFrontBack
)

// String returns the mirror id.
func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorLeftRight:
		return "left_right"
	case MirrorFrontBack:
		return "front_back"
	default:
		return "unknown"
	}
}

// StructurePlacement records one stamped template.
type StructurePlacement struct {
	Template string     `json:"template"`
	Origin   Coordinate `json:"origin"`
	Rotation Rotation   `json:"rotation"`
	Mirror   Mirror     `json:"mirror"`
}
