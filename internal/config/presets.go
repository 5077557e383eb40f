package config

var Presets = map[string]map[string]*Config{
	"wind": {
		"breeze": {
			Model: "wind",
			Wind:  WindConfig{Density: DefaultDensity, Area: 7853.98, Speed: 5.0, Cp: 0.4},
		},
		"rated": {
			Model: "wind",
			Wind:  WindConfig{Density: DefaultDensity, Area: 7853.98, Speed: 12.0, Cp: 0.45},
		},
		"storm": {
			Model: "wind",
			Wind:  WindConfig{Density: DefaultDensity, Area: 7853.98, Speed: 25.0, Cp: 0.3},
		},
	},
	"solar": {
		"rooftop": {
			Model: "solar",
			Solar: SolarConfig{Area: 20.0, Irradiance: 1000.0, Efficiency: 0.18, Hours: 5.0},
		},
		"desert": {
			Model: "solar",
			Solar: SolarConfig{Area: 100.0, Irradiance: 1200.0, Efficiency: 0.22, Hours: 8.0},
		},
		"overcast": {
			Model: "solar",
			Solar: SolarConfig{Area: 20.0, Irradiance: 300.0, Efficiency: 0.18, Hours: 4.0},
		},
	},
	"battery": {
		"city": {
			Model:   "battery",
			Battery: BatteryConfig{Capacity: 60.0, Rate: 0.15, Distance: 50.0},
		},
		"roadtrip": {
			Model:   "battery",
			Battery: BatteryConfig{Capacity: 75.0, Rate: 0.2, Distance: 350.0},
		},
		"depleted": {
			Model:   "battery",
			Battery: BatteryConfig{Capacity: 60.0, Rate: 0.2, Distance: 400.0},
		},
	},
	"projectile": {
		"flat": {
			Model:      "projectile",
			Projectile: ProjectileConfig{Speed: 50.0, Angle: 15.0, Gravity: DefaultGravity},
		},
		"optimal": {
			Model:      "projectile",
			Projectile: ProjectileConfig{Speed: 50.0, Angle: 45.0, Gravity: DefaultGravity},
		},
		"mortar": {
			Model:      "projectile",
			Projectile: ProjectileConfig{Speed: 30.0, Angle: 80.0, Gravity: DefaultGravity},
		},
		"lunar": {
			Model:      "projectile",
			Projectile: ProjectileConfig{Speed: 50.0, Angle: 45.0, Gravity: 1.62},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
