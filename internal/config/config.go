package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDensity     = 1.225
	DefaultBladeLength = 50.0
	DefaultWindSpeed   = 10.0
	DefaultCp          = 0.4
	DefaultPanelArea   = 20.0
	DefaultIrradiance  = 1000.0
	DefaultEfficiency  = 0.18
	DefaultHours       = 1.0
	DefaultCapacity    = 75.0
	DefaultRate        = 0.18
	DefaultDistance    = 150.0
	DefaultSpeed       = 50.0
	DefaultAngle       = 45.0
	DefaultGravity     = 9.81
)

type Config struct {
	Model      string           `yaml:"model"`
	Wind       WindConfig       `yaml:"wind"`
	Solar      SolarConfig      `yaml:"solar"`
	Battery    BatteryConfig    `yaml:"battery"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

type WindConfig struct {
	Density float64 `yaml:"density"`
	Area    float64 `yaml:"area"`
	Speed   float64 `yaml:"speed"`
	Cp      float64 `yaml:"cp"`
}

type SolarConfig struct {
	Area       float64 `yaml:"area"`
	Irradiance float64 `yaml:"irradiance"`
	Efficiency float64 `yaml:"efficiency"`
	Hours      float64 `yaml:"hours"`
}

type BatteryConfig struct {
	Capacity float64 `yaml:"capacity"`
	Rate     float64 `yaml:"rate"`
	Distance float64 `yaml:"distance"`
}

type ProjectileConfig struct {
	Speed   float64 `yaml:"speed"`
	Angle   float64 `yaml:"angle"`
	Gravity float64 `yaml:"gravity"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: "wind",
		Wind: WindConfig{
			Density: DefaultDensity,
			Area:    7853.98, // 50 m blades
			Speed:   DefaultWindSpeed,
			Cp:      DefaultCp,
		},
		Solar: SolarConfig{
			Area:       DefaultPanelArea,
			Irradiance: DefaultIrradiance,
			Efficiency: DefaultEfficiency,
			Hours:      DefaultHours,
		},
		Battery: BatteryConfig{
			Capacity: DefaultCapacity,
			Rate:     DefaultRate,
			Distance: DefaultDistance,
		},
		Projectile: ProjectileConfig{
			Speed:   DefaultSpeed,
			Angle:   DefaultAngle,
			Gravity: DefaultGravity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Values returns the parameter map for one model, ready to feed SetParam.
func (c *Config) Values(model string) map[string]float64 {
	switch model {
	case "wind":
		return map[string]float64{
			"density": c.Wind.Density,
			"area":    c.Wind.Area,
			"speed":   c.Wind.Speed,
			"cp":      c.Wind.Cp,
		}
	case "solar":
		return map[string]float64{
			"area":       c.Solar.Area,
			"irradiance": c.Solar.Irradiance,
			"efficiency": c.Solar.Efficiency,
			"hours":      c.Solar.Hours,
		}
	case "battery":
		return map[string]float64{
			"capacity": c.Battery.Capacity,
			"rate":     c.Battery.Rate,
			"distance": c.Battery.Distance,
		}
	case "projectile":
		return map[string]float64{
			"speed":   c.Projectile.Speed,
			"angle":   c.Projectile.Angle,
			"gravity": c.Projectile.Gravity,
		}
	default:
		return nil
	}
}
