package config

// PlayerConfig holds settings for an interactive session.
type PlayerConfig struct {
	// White and Black are display names; blank means the default name.
	White string `validate:"max=32"`
	Black string `validate:"max=32"`

	// Layout is "standard" or "special".
	Layout string `validate:"oneof=standard special"`
}

// NewPlayerConfig creates a PlayerConfig with default values.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{Layout: "standard"}
}
