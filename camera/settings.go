package camera

// Settings configures one strategy instance. Distances and heights are
// meters; Smoothing is a 0..1 factor applied to the heading sequence (higher
// keeps more of the previous heading; 0 reproduces the raw per-leg heading at
// every point). A Settings value is resolved once per planning run and never
// mutated concurrently.
type Settings struct {
	FollowDistance    float64 `mapstructure:"followDistance" json:"followDistance"`
	FollowHeight      float64 `mapstructure:"followHeight" json:"followHeight"`
	LookAheadDistance float64 `mapstructure:"lookAheadDistance" json:"lookAheadDistance"`
	Smoothing         float64 `mapstructure:"smoothingFactor" json:"smoothingFactor"`
	EnableTilt        bool    `mapstructure:"enableTilt" json:"enableTilt"`
	EnableRotation    bool    `mapstructure:"enableRotation" json:"enableRotation"`
	MinHeight         float64 `mapstructure:"minHeight" json:"minHeight"`
	MaxHeight         float64 `mapstructure:"maxHeight" json:"maxHeight"`
}

// DefaultSettings returns the documented default table for a strategy.
// Unknown names fall back to the follow defaults.
func DefaultSettings(strategy string) Settings {
	switch strategy {
	case NameCinematic:
		return Settings{
			FollowDistance:    80,
			FollowHeight:      50,
			LookAheadDistance: 100,
			Smoothing:         0.9,
			EnableTilt:        true,
			EnableRotation:    true,
			MinHeight:         20,
			MaxHeight:         1000,
		}
	case NameBirdsEye:
		return Settings{
			Smoothing: 0.95,
			MinHeight: 500,
			MaxHeight: 5000,
		}
	case NameStatic:
		return Settings{
			FollowHeight: 200,
			Smoothing:    0.7,
			MinHeight:    50,
			MaxHeight:    2000,
		}
	default:
		return Settings{
			FollowDistance:    50,
			FollowHeight:      30,
			LookAheadDistance: 50,
			Smoothing:         0.85,
			EnableTilt:        true,
			EnableRotation:    true,
			MinHeight:         10,
			MaxHeight:         500,
		}
	}
}
