package config

// DisplayConfig holds settings for the text board diagram.
type DisplayConfig struct {
	// ShowCoordinates adds rank and file labels
	ShowCoordinates bool

	// EmptySquare is the character drawn for an empty square
	EmptySquare byte

	// ShowCaptured lists captured pieces under the board
	ShowCaptured bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCoordinates: true,
		EmptySquare:     '.',
		ShowCaptured:    true,
	}
}
