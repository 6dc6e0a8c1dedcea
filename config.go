package phys2d

// EngineConfig holds the tunable constants spec.md §6 names. Zero-value
// fields are filled with DefaultConfig's values by config.Load, mirroring
// the corpus's "defaults object plus file overrides" pattern.
type EngineConfig struct {
	Gravity               float64 `yaml:"gravity"`
	StepsPerSecond        int     `yaml:"steps_per_second"`
	VelocityIterations    int     `yaml:"velocity_iterations"`
	SleepLinearThreshold  float64 `yaml:"sleep_linear_threshold"`
	SleepAngularThreshold float64 `yaml:"sleep_angular_threshold"`
	SleepTimeThreshold    float64 `yaml:"sleep_time_threshold"`
}

func DefaultConfig() EngineConfig {
	return EngineConfig{
		Gravity:               981,
		StepsPerSecond:        500,
		VelocityIterations:    5,
		SleepLinearThreshold:  0.15,
		SleepAngularThreshold: 0.15,
		SleepTimeThreshold:    0.5,
	}
}

// ApplyDefaults fills any zero-valued field of cfg with DefaultConfig's
// value for it, used both by the config package's Load and by NewEngine
// for a caller-built config that only set a few fields.
func ApplyDefaults(cfg EngineConfig) EngineConfig {
	defaults := DefaultConfig()
	if cfg.Gravity == 0 {
		cfg.Gravity = defaults.Gravity
	}
	if cfg.StepsPerSecond == 0 {
		cfg.StepsPerSecond = defaults.StepsPerSecond
	}
	if cfg.VelocityIterations == 0 {
		cfg.VelocityIterations = defaults.VelocityIterations
	}
	if cfg.SleepLinearThreshold == 0 {
		cfg.SleepLinearThreshold = defaults.SleepLinearThreshold
	}
	if cfg.SleepAngularThreshold == 0 {
		cfg.SleepAngularThreshold = defaults.SleepAngularThreshold
	}
	if cfg.SleepTimeThreshold == 0 {
		cfg.SleepTimeThreshold = defaults.SleepTimeThreshold
	}
	return cfg
}
