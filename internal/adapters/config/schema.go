package config

// Spritefile represents the structure of the spritekit.yaml configuration file.
type Spritefile struct {
	Version string      `yaml:"version"`
	Root    string      `yaml:"root"`
	Quant   *QuantDTO   `yaml:"quant"`
	Sprites *SpritesDTO `yaml:"sprites"`
}

// QuantDTO represents the quant section of the configuration.
type QuantDTO struct {
	Cache   string   `yaml:"cache"`
	Roots   []string `yaml:"roots"`
	Command []string `yaml:"command"`
}

// SpritesDTO represents the sprites section of the configuration.
type SpritesDTO struct {
	Command        []string   `yaml:"command"`
	EnumOutput     string     `yaml:"enumOutput"`
	ArrayOutput    string     `yaml:"arrayOutput"`
	CountConstants bool       `yaml:"countConstants"`
	Groups         []GroupDTO `yaml:"groups"`
}

// GroupDTO represents a sprite group definition.
type GroupDTO struct {
	Enum string `yaml:"enum"`
	Dir  string `yaml:"dir"`
}
