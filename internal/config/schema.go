package config

// LabConfig is the YAML configuration for the data structures lab
type LabConfig struct {
	LogLevel      string              `yaml:"log_level"`
	CircularQueue CircularQueueConfig `yaml:"circular_queue"`
	Display       DisplayConfig       `yaml:"display"`
}

// CircularQueueConfig sizes the ring buffer exercise
type CircularQueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// DisplayConfig controls how menus are rendered
type DisplayConfig struct {
	Styled *bool `yaml:"styled"`
}

// IsStyled reports whether menu headers should be styled. Unset means yes.
func (d DisplayConfig) IsStyled() bool {
	return d.Styled == nil || *d.Styled
}
