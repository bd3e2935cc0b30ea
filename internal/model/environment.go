package model

// Difficulty is the world difficulty setting.
type Difficulty uint8

const (
	// DifficultyPeaceful - no hostile actors may spawn
	DifficultyPeaceful Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

// String returns human-readable difficulty name
func (d Difficulty) String() string {
	switch d {
	case DifficultyPeaceful:
		return "peaceful"
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a config string to Difficulty. Unknown values map to Normal.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "peaceful":
		return DifficultyPeaceful
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// Weather is the current world weather.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherThunder
)

// String returns human-readable weather name
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherThunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// IsStorm reports whether the weather is a thunderstorm.
func (w Weather) IsStorm() bool {
	return w == WeatherThunder
}
