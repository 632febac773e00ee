package config

// Default configuration values
const (
	DefaultPasscode      = "4123"
	DefaultKeypadLength  = 4
	DefaultWallpaperName = "wallpaper.jpg"
	FileName             = "config.json"
)

// Validation limits
const (
	MinPasscodeLength = 4
	MaxPasscodeLength = 8
)
